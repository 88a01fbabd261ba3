// Package garden is a spring animation library for [Ebitengine].
//
// Garden animates scalar properties of scene nodes along closed-form
// damped-spring curves. Any number of animations may act on the same
// property at once: relative animations (Add, MultiplyBy) superpose and
// absolute ones (ChangeTo) land exactly on their target.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := garden.NewScene()
//	tile := garden.NewNode("tile")
//	tile.Width, tile.Height = 32, 32
//	scene.Root().AddChild(tile)
//
//	pop := garden.MustAnimationSettings(0.6, 0.45, 0)
//	scene.Run(garden.MoveTo(tile, 200, 120, pop), "move")
//
//	garden.Run(scene, garden.RunConfig{
//		Title: "My Garden", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Springs
//
// A spring is described by [SpringProperties]: a damping ratio and an
// initial velocity. Ratios below 1 overshoot and oscillate, 1 settles as
// fast as possible without overshoot, and above 1 creeps in slowly. The
// natural frequency is derived from the ratio so every spring visibly
// settles within the animation's duration. [SpringTiming] turns a spring
// into a curve over normalized time that is exactly 0 at the start and
// exactly 1 at the end.
//
// # Transformations
//
// A [Transformation] says what an animation does to its property:
//
//	garden.ChangeTo(100)  // end at 100
//	garden.Add(25)        // move by 25
//	garden.MultiplyBy(2)  // double
//
// # Animations
//
// [Animate] binds a transformation, an [Accessor] and [AnimationSettings]
// into an [Action]. The node helpers ([MoveBy], [ScaleTo], [FadeOut],
// [Colorize] and friends) do this for common [Node] properties. Hand
// actions to [Scene.Run], or advance them yourself with Update(dt).
//
// Node speed scales every animation on a node and its descendants:
// setting [Node.Speed] to 0 pauses a subtree, and [SpeedTo] animates it.
//
// # Presets
//
// Named spring settings can live in YAML and be reloaded while the game
// runs; see [LoadPresets] and [NewPresetWatcher].
//
// Animation lifecycle events can be forwarded into a [Donburi] world with
// the adapter in garden/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package garden
