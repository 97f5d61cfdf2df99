// Package surface defines the drawing surface every effect renders onto.
//
// A [Surface] is a mutable 2D raster target with canvas-style primitives:
//
//   - [Surface.FillGradient] and [Surface.Clear] repaint the whole target
//   - [Surface.StrokeLine], [Surface.StrokeCircle], [Surface.FillCircle] draw paths
//   - [Surface.Push], [Surface.Pop], [Surface.Translate], [Surface.Rotate]
//     manage the current affine transform
//
// Backends in this package:
//
//   - [Raster]: anti-aliased software raster backed by github.com/gogpu/gg
//   - [Recorder]: keeps every primitive as an [Op], used for tests and benchmarks
//   - [Counter]: wraps another surface and counts primitives per frame
//
// Other backends live next to their hosts (Braille terminal canvas in viz,
// SVG in export, raylib window in gui).
//
// # Thread Safety
//
// Surfaces are NOT thread-safe. They are driven from a single frame loop.
package surface
