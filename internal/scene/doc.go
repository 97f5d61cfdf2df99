// Package scene drives the frame loop that renders layered effects onto a
// drawing surface.
//
// The package defines the loop abstraction and the layer stack:
//
//   - [Clock]: frame counter with derived animation time and rotation
//   - [Layer]: one effect drawn per frame (background, pattern, particles, ripples)
//   - [Loop]: owns the surface, clock and stop flag; renders frames on demand
//     or until a frame budget, [Loop.Stop] or context cancellation
//   - [Registry]: named layer stacks ("page", "interactive", ...)
//
// # Example
//
//	layers, _ := scene.NewRegistry().Build("page", 800, 600, 42)
//	loop := scene.New(surface.NewRaster(800, 600), layers...)
//	result, _ := loop.Run(ctx, scene.Config{Frames: 120})
//
// # Thread Safety
//
// Loop instances are NOT thread-safe, apart from [Loop.Stop]. Hosts call
// Step, Resize and PointerMove from the goroutine that owns the surface.
// Use [Ensemble] to render independent loops in parallel.
package scene
