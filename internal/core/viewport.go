package core

// Viewport projects the game's logical surface onto the terminal cell grid.
// Games simulate in logical units (e.g. 1200x800) and only the viewport
// knows how many cells the terminal currently has.
type Viewport struct {
	LogicalW, LogicalH int // Logical surface size
	Cols, Rows         int // Cell grid size
}

// NewViewport creates a viewport for the given logical and cell sizes.
// Zero or negative sizes are raised to 1 to keep projections defined.
func NewViewport(logicalW, logicalH, cols, rows int) Viewport {
	return Viewport{
		LogicalW: Max(logicalW, 1),
		LogicalH: Max(logicalH, 1),
		Cols:     Max(cols, 1),
		Rows:     Max(rows, 1),
	}
}

// CellX returns the column containing logical x.
func (v Viewport) CellX(x int) int {
	return floorDiv(x*v.Cols, v.LogicalW)
}

// CellY returns the row containing logical y.
func (v Viewport) CellY(y int) int {
	return floorDiv(y*v.Rows, v.LogicalH)
}

// LogicalX returns the logical x at the horizontal center of a column.
func (v Viewport) LogicalX(col int) int {
	return floorDiv((2*col+1)*v.LogicalW, 2*v.Cols)
}

// LogicalY returns the logical y at the vertical center of a row.
func (v Viewport) LogicalY(row int) int {
	return floorDiv((2*row+1)*v.LogicalH, 2*v.Rows)
}

// Project converts a logical rectangle to the cells it covers.
// Any non-empty rectangle covers at least one cell.
func (v Viewport) Project(r Rect) Rect {
	x0 := v.CellX(r.X)
	y0 := v.CellY(r.Y)
	x1 := ceilDiv(r.Right()*v.Cols, v.LogicalW)
	y1 := ceilDiv(r.Bottom()*v.Rows, v.LogicalH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Sample reports the cell for a logical point and whether the point lies
// within radius logical units of that cell's center on both axes.
// Sampling keeps sparse point sets sparse when many logical units share a cell.
func (v Viewport) Sample(x, y, radius int) (col, row int, ok bool) {
	col = v.CellX(x)
	row = v.CellY(y)
	if col < 0 || col >= v.Cols || row < 0 || row >= v.Rows {
		return col, row, false
	}
	dx := Abs(x - v.LogicalX(col))
	dy := Abs(y - v.LogicalY(row))
	return col, row, dx <= radius && dy <= radius
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ceilDiv divides rounding toward positive infinity.
func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
