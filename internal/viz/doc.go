// Package viz holds the camera projection, hue cycling and terminal
// drawing primitives shared by every rendering surface.
//
//   - [Camera] / [Projector]: rotation about the vertical axis followed by
//     an orthographic drop to screen pixels
//   - [ScreenPoint.Pixel]: the fallible float-to-pixel conversion the
//     render loop uses to detect divergence
//   - [Hue]: per-frame color drift and HSV to RGB conversion
//   - [Canvas]: Braille-based dot canvas with clipped line drawing
//
// # Quirk
//
// The projector computes the perspective depth factor 1/(d - z) but does
// not apply it to x and y. The picture is therefore orthographic; Depth is
// exposed on [ScreenPoint] for callers that want it.
package viz
