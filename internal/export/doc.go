// Package export writes rendered scenes to files: SVG documents through the
// [SVG] surface, animated GIFs through the [GIFRecorder] loop observer, and
// SVG snapshots of terminal canvases.
package export
