// Package vis renders sparse 2D value maps as terminal mosaics.
//
// Many puzzles are easier to debug when their state can be eyeballed:
// rock formations, folded sheets, beacon fields. Plotter lays caller
// cells out on screen coordinates (x growing right, y growing down),
// pads the gaps with a blank mark and colors each distinct value through
// a lipgloss style palette. Annotated cells are listed under the mosaic.
//
// Errors
//
//	ErrNoCells - Render was called without any cells.
package vis
