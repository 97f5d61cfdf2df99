// Package viz renders scenes in the terminal.
//
// Frames are plotted onto a Braille [Canvas] through the [Braille] surface,
// which gives 2x4 dots per terminal cell. [Model] is a Bubble Tea program
// that steps a scene loop on every tick, spawns ripples on mouse motion and
// follows terminal resizes.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Rewind the clock and reset stateful layers
//	T     - Cycle color themes
//	S     - Save a snapshot of the canvas
//	G     - Toggle GIF recording
//	?     - Show help overlay
package viz
