// Garden is a click-to-plant garden. Pick a decoration from the palette at
// the top, click an empty bed to plant it, click a planted decoration to lift
// it and click another bed to move it there. Moves onto an occupied bed or
// off the garden spring the decoration back where it came from.
//
// Spring presets are read from presets.yaml and reloaded whenever the file
// is saved.
package main

import (
	"errors"
	"flag"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/garden"
	"github.com/phanxgames/garden/internal/plot"
)

const (
	windowTitle = "Garden — Spring Demo"
	screenW     = 640
	screenH     = 480
	cellSize    = 56
	cols        = 8
	rows        = 5
	paletteY    = 48
)

// decoration is one kind of thing that can be planted.
type decoration struct {
	name  string
	color garden.Color
	w, h  float64
}

var palette = []decoration{
	{"rose", garden.Color{R: 0.9, G: 0.2, B: 0.3, A: 1}, 28, 28},
	{"tulip", garden.Color{R: 1.0, G: 0.7, B: 0.2, A: 1}, 24, 32},
	{"violet", garden.Color{R: 0.6, G: 0.4, B: 0.9, A: 1}, 26, 26},
	{"bush", garden.Color{R: 0.2, G: 0.6, B: 0.3, A: 1}, 44, 40},
}

type demo struct {
	scene   *garden.Scene
	presets *garden.Presets
	watcher *garden.PresetWatcher

	plot   *plot.Plot[*garden.Node]
	beds   *garden.Node
	plants *garden.Node

	swatches []*garden.Node
	selected int

	lifted     *garden.Node
	liftedFrom plot.Cell
	liftAnim   garden.AnimationID
}

func main() {
	presetsPath := flag.String("presets", "demos/garden/presets.yaml", "spring presets file")
	debug := flag.Bool("debug", false, "log per-frame animation stats")
	flag.Parse()

	presets, err := garden.LoadPresets(*presetsPath)
	if err != nil {
		log.Fatalf("failed to load presets: %v", err)
	}
	watcher, err := garden.NewPresetWatcher(*presetsPath)
	if err != nil {
		log.Printf("garden: presets will not hot reload: %v", err)
	}

	scene := garden.NewScene()
	scene.ClearColor = garden.Color{R: 0.55, G: 0.78, B: 0.45, A: 1}

	grid := plot.Grid{
		Cols:    cols,
		Rows:    rows,
		CellW:   cellSize,
		CellH:   cellSize,
		OriginX: (screenW - cols*cellSize) / 2,
		OriginY: 120,
	}

	d := &demo{
		scene:   scene,
		presets: presets,
		watcher: watcher,
		plot:    plot.New[*garden.Node](grid),
		beds:    garden.NewNode("beds"),
		plants:  garden.NewNode("plants"),

		selected: -1,
	}
	scene.Root().AddChild(d.beds)
	scene.Root().AddChild(d.plants)
	d.buildBeds()
	d.buildPalette()
	d.selectSwatch(0)

	scene.SetUpdateFunc(d.update)

	err = garden.Run(scene, garden.RunConfig{
		Title:  windowTitle,
		Width:  screenW,
		Height: screenH,
		Debug:  *debug,
	})
	if watcher != nil {
		_ = watcher.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func (d *demo) buildBeds() {
	g := d.plot.Grid
	for c := 0; c < g.Cols; c++ {
		for r := 0; r < g.Rows; r++ {
			x, y := g.CellCenter(plot.Cell{Col: c, Row: r})
			bed := garden.NewNode("bed")
			bed.Width, bed.Height = cellSize-4, cellSize-4
			bed.SetPivot(bed.Width/2, bed.Height/2)
			bed.SetPosition(x, y)
			shade := 0.32 + 0.04*float64((c+r)%2)
			bed.Color = garden.Color{R: shade + 0.1, G: shade, B: shade * 0.6, A: 1}
			d.beds.AddChild(bed)
		}
	}
}

func (d *demo) buildPalette() {
	spacing := 90.0
	startX := screenW/2 - spacing*float64(len(palette)-1)/2
	for i, dec := range palette {
		n := garden.NewNode("swatch-" + dec.name)
		n.Width, n.Height = dec.w, dec.h
		n.SetPivot(dec.w/2, dec.h/2)
		n.SetPosition(startX+float64(i)*spacing, paletteY)
		n.Color = dec.color
		d.scene.Root().AddChild(n)
		d.swatches = append(d.swatches, n)
	}
}

func (d *demo) settings(name string) garden.AnimationSettings {
	if s, ok := d.presets.Settings(name); ok {
		return s
	}
	log.Printf("garden: preset %q missing, using critically damped default", name)
	return garden.MustAnimationSettings(0.5, 1, 0)
}

func (d *demo) selectSwatch(i int) {
	if i == d.selected {
		return
	}
	if d.selected >= 0 {
		d.scene.Run(garden.ScaleTo(d.swatches[d.selected], 1, d.settings("settle")), "swatch-off")
	}
	d.selected = i
	d.scene.Run(garden.ScaleTo(d.swatches[i], 1.35, d.settings("pop")), "swatch-on")
}

func (d *demo) update() error {
	d.drainWatcher()

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	for i, sw := range d.swatches {
		if math.Abs(x-sw.X) <= sw.Width/2+8 && math.Abs(y-sw.Y) <= sw.Height/2+8 {
			d.selectSwatch(i)
			return nil
		}
	}

	cell, inside := d.plot.Grid.CellAt(x, y)
	if d.lifted != nil {
		d.drop(cell, inside)
		return nil
	}
	if !inside {
		return nil
	}
	if n, ok := d.plot.At(cell); ok {
		d.lift(n, cell)
		return nil
	}
	d.plant(cell)
	return nil
}

func (d *demo) drainWatcher() {
	if d.watcher == nil {
		return
	}
	for {
		select {
		case p, ok := <-d.watcher.Updates:
			if !ok {
				return
			}
			d.presets = p
			log.Printf("garden: reloaded %d presets", p.Len())
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("garden: presets: %v", err)
		default:
			return
		}
	}
}

func (d *demo) plant(cell plot.Cell) {
	dec := palette[d.selected]
	n := garden.NewNode(dec.name)
	n.Width, n.Height = dec.w, dec.h
	n.SetPivot(dec.w/2, dec.h)
	x, y := d.plot.Grid.CellCenter(cell)
	n.SetPosition(x, y+dec.h/2)
	n.Color = dec.color
	n.SetScale(0.01, 0.01)
	n.Alpha = 0
	n.SetZIndex(cell.Row)
	if err := d.plot.Place(cell, n); err != nil {
		log.Printf("garden: plant %s: %v", dec.name, err)
		return
	}
	d.plants.AddChild(n)

	pop := d.settings("pop")
	d.scene.Run(garden.Group(
		garden.ScaleTo(n, 1, pop),
		garden.FadeIn(n, d.settings("settle")),
	), "plant")
}

func (d *demo) lift(n *garden.Node, cell plot.Cell) {
	d.lifted = n
	d.liftedFrom = cell
	n.SetZIndex(1000)
	d.liftAnim = d.scene.Run(garden.Group(
		garden.ScaleBy(n, 1.2, d.settings("lift")),
		garden.MoveBy(n, 0, -10, d.settings("lift")),
	), "lift")
}

func (d *demo) drop(cell plot.Cell, inside bool) {
	n, from := d.lifted, d.liftedFrom
	d.lifted = nil
	d.scene.Cancel(d.liftAnim)

	to := from
	var err error
	if !inside {
		err = plot.ErrOutOfBounds
	} else {
		err = d.plot.Move(from, cell)
		if err == nil {
			to = cell
		}
	}

	name := "settle"
	if err != nil {
		name = "snap"
		if !errors.Is(err, plot.ErrOutOfBounds) {
			log.Printf("garden: move %s: %v", n.Name, err)
		}
		// Opposite rotations on different springs net to zero but wobble
		// on the way there.
		d.scene.Run(garden.RotateBy(n, 0.3, d.settings("snap")), "wiggle")
		d.scene.Run(garden.RotateBy(n, -0.3, d.settings("settle")), "wiggle")
	}

	s := d.settings(name)
	x, y := d.plot.Grid.CellCenter(to)
	n.SetZIndex(to.Row)
	d.scene.Run(garden.Group(
		garden.MoveTo(n, x, y+n.Height/2, s),
		garden.ScaleTo(n, 1, s),
	), "drop")
}
