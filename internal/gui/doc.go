// Package gui runs scenes in a resizable raylib window. Mouse motion
// spawns ripples and window resizes are forwarded to the scene loop.
package gui
