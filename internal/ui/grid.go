package ui

// Button cell geometry, borders included. Mirrors the fixed-size grid of the
// original pad layout.
const (
	cellWidth  = 24
	cellHeight = 5
	gridTop    = 2 // tab bar + separator line
)

// columns returns how many buttons fit per row at the given terminal width.
func columns(width int) int {
	cols := width / cellWidth
	if cols < 1 {
		return 1
	}
	return cols
}

// cellAt maps a terminal coordinate to a button index within the active
// tab's song list, or -1 when the click lands outside the grid.
func cellAt(x, y, width, count int) int {
	if y < gridTop || count == 0 {
		return -1
	}
	cols := columns(width)
	col := x / cellWidth
	if col >= cols {
		return -1
	}
	row := (y - gridTop) / cellHeight
	idx := row*cols + col
	if idx >= count {
		return -1
	}
	return idx
}
