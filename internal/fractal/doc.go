// Package fractal draws the recursive patterns of the animated background.
//
//   - [Tree]: symmetric branching tree whose branch angle sways with time
//   - [DrawPattern]: self-similar nested circles; [DrawInteractive] draws
//     them centred under a global rotation
//   - [Background]: gradient wash, seeded speckle noise and the tree
//
// Every routine is a plain recursive function over explicit
// (point, size, remaining-count) arguments and redraws from scratch each
// frame; the only inputs that change between frames are the animation time
// and the rotation angle, both passed in by the caller.
//
// # Example
//
//	s := surface.NewRaster(800, 600)
//	bg := fractal.NewBackground(42)
//	bg.Draw(s, 1.25)
//	fractal.DrawInteractive(s, 0.3)
package fractal
