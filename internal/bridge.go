// Package internal holds the state shared between altercam and its
// utils subpackage.
package internal

import "image"

// Top-left corner of the current camera area in world coordinates.
// Updated by altercam after every camera update; read by utils to
// convert world coordinates into canvas coordinates.
var BridgedCameraOrigin image.Point
