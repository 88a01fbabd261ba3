package garden

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS sets ticks per second. Zero keeps Ebitengine's default.
	TPS int
	// Debug enables Scene debug mode.
	Debug bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene  *Scene
	width  int
	height int
}

func (g *game) Update() error              { return g.scene.Update() }
func (g *game) Draw(screen *ebiten.Image)  { g.scene.Draw(screen) }
func (g *game) Layout(_, _ int) (int, int) { return g.width, g.height }

// Run opens a window and drives scene until the window closes or the
// scene's update func returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	return ebiten.RunGame(&game{scene: scene, width: cfg.Width, height: cfg.Height})
}
