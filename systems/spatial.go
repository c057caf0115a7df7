package systems

// LinkGrid buckets particle indices into square cells so that proximity
// lines only test particles in neighbouring cells. With the cell size equal
// to the link distance, every pair closer than that distance lies in the
// same or an adjacent cell.
type LinkGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int // flat grid of particle indices
}

// NewLinkGrid creates a grid covering a width×height canvas.
func NewLinkGrid(width, height, cellSize float64) *LinkGrid {
	g := &LinkGrid{cellSize: cellSize}
	g.Resize(width, height)
	return g
}

// Resize rebuilds the cell layout for new canvas dimensions.
func (g *LinkGrid) Resize(width, height float64) {
	cols, rows := 1, 1
	if g.cellSize > 0 {
		if width > 0 {
			cols = int(width/g.cellSize) + 1
		}
		if height > 0 {
			rows = int(height/g.cellSize) + 1
		}
	}
	g.cols = cols
	g.rows = rows

	g.cells = make([][]int, cols*rows)
	for i := range g.cells {
		g.cells[i] = make([]int, 0, 8) // pre-allocate small capacity
	}
}

// Clear removes all indices from the grid.
func (g *LinkGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds particle index i at the given position.
func (g *LinkGrid) Insert(i int, x, y float64) {
	idx := g.cellIndex(x, y)
	g.cells[idx] = append(g.cells[idx], i)
}

// ForEachLater calls fn for every indexed particle j > i in the 3×3 block of
// cells around (x, y). Each unordered pair is therefore visited once.
func (g *LinkGrid) ForEachLater(i int, x, y float64, fn func(j int)) {
	col, row := g.cellCoords(x, y)

	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			for _, j := range g.cells[r*g.cols+c] {
				if j > i {
					fn(j)
				}
			}
		}
	}
}

// cellCoords returns the clamped column and row for a position.
func (g *LinkGrid) cellCoords(x, y float64) (int, int) {
	col, row := 0, 0
	if g.cellSize > 0 {
		col = int(x / g.cellSize)
		row = int(y / g.cellSize)
	}

	// Clamp to valid range
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

// cellIndex returns the flat index for a position.
func (g *LinkGrid) cellIndex(x, y float64) int {
	col, row := g.cellCoords(x, y)
	return row*g.cols + col
}
