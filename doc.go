// Package flick interprets pointer gestures and controls the motion of
// draggable objects on a bounded surface.
//
// Flick classifies raw pointer events into taps, double-taps, drags, and
// two-finger pinches, turns a released drag into a believable throw, and
// keeps every tracked object inside a rectangular region with damped
// rebounds. Rendering and full rigid-body simulation are deliberately
// outside it: flick talks to the physics layer only through the narrow
// [Body] contract and to the camera only through [Projector].
//
// # Quick start
//
// Create a [Surface] with a region and a projector, register objects, and
// feed it pointer events plus one [Surface.Step] per tick:
//
//	cfg := flick.DefaultConfig()
//	surface := flick.NewSurface(cfg, flick.Region{
//		HalfWidth: 1.2, HalfHeight: 0.8, Margin: cfg.BoundaryMargin,
//	}, projector)
//
//	body := flick.NewSimBody(mgl64.Vec3{0, 0, 0}, 1)
//	surface.Add(1, flick.KindFile, body, flick.HitCircle{Radius: 0.08})
//
//	surface.OnDoubleTap(func(id flick.ObjectID) { openFile(id) })
//
//	// each frame:
//	surface.HandlePointerEvent(ev) // for every raw event, in order
//	surface.Step(dt)               // after the physics engine's own step
//
// With Ebitengine, [EbitenPointerSource] does the event plumbing:
//
//	src := flick.NewEbitenPointerSource(surface)
//	// in ebiten.Game.Update:
//	src.Update()
//	surface.Step(1.0 / float64(ebiten.TPS()))
//
// # Gestures
//
// Each object gets its own [Gesture] machine. A press that moves less
// than the drag threshold and lifts quickly is a tap; two quick taps on
// the same object are a double-tap (which recalls the object to its home
// position). A press that moves past the threshold becomes a drag; a
// second finger always converts the gesture to a pinch before any drag
// decision completes. Gesture outputs are plain [Command] values, so the
// machine is testable without any rendering context.
//
// # One drag at a time
//
// A process-wide [ManipulationLock] guarantees at most one object is
// manipulated at once. While it is held, pointer-downs on other objects
// are swallowed. Acquisition returns a [Guard] released on every terminal
// path (release, cancel, or the pointer leaving the surface) so the
// lock can never be left dangling.
//
// # Throws and boundaries
//
// While dragging, the pointer is projected onto a horizontal plane fixed
// at the object's height, smoothed, clamped into the region, and fed to a
// recency-weighted [VelocityEstimator]. On release the estimate becomes a
// horizontal impulse, clamped between the minimum and maximum throw
// speeds. [Region.Enforce] then runs every step on every body, clamping
// positions to the region and rebounding velocities with energy loss.
package flick
