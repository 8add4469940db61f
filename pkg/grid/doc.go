// Package grid lays out a fixed-shape matrix of text cells as a bordered,
// monospaced block of text.
//
// A Grid is populated through chainable Cell setters and rendered with
// Render (or String). Row heights and column widths are reconciled so every
// cell of a row has the same number of lines and every cell of a column the
// same width; interior seams share a single border. Sizing counts characters,
// not display columns.
//
// Vertical padding adds exactly N blank lines above and below the stretched
// content, whether or not the cell was stretched. A 1x1 grid holding "a"
// with vertical padding 1 therefore renders one blank line on each side.
// Renderers that append N newline characters to the content instead lose
// the bottom line of an unstretched cell.
//
// Rendering never mutates the grid, so concurrent renders of an unmodified
// grid are safe. Mutating a grid while it is rendered is not.
package grid
