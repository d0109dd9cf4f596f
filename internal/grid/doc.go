// Package grid renders composition grids and guide lines onto raster images.
//
// All operations are pure: the input image is treated as read-only and each
// call returns a freshly allocated output buffer, so concurrent renders on
// different images need no locking.
//
// # Geometry
//
// Five grid kinds are supported, selected via the Spec sum type:
//   - FixedSize: cells of a fixed pixel size, origin shifted by an Offset
//     that wraps modulo the cell size
//   - FixedCount: a fixed number of cells, boundaries at the nearest pixel
//     to each fractional division
//   - GoldenRatio: successive divisions at golden-ratio positions
//   - RuleOfThirds: exactly FixedCount{3, 3}
//   - CenterLines: one vertical and one horizontal center line
//
// Guide lines are independent of any grid and composite in list order after
// grid lines.
//
// # Compositing
//
// Lines are drawn opaquely onto an overlay copy of the image, which is then
// alpha-blended against the base: out = line*opacity + base*(1-opacity).
// Untouched pixels are identical in both copies and survive the blend
// unchanged. Dashed lines draw only their "on" runs onto the overlay.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left; X grows
// rightward and Y grows downward. Every drawn line position lies within
// [0, width) x [0, height); lines that fall fully outside the canvas after
// offsetting are skipped without error.
package grid
