// Package effects implements the lightweight animated overlays that run
// alongside the fractals: a wrapping particle field and pointer ripples.
package effects
