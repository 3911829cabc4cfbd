package core

import "testing"

func TestViewportProject(t *testing.T) {
	vp := NewViewport(1200, 800, 80, 24)

	tests := []struct {
		name     string
		in       Rect
		expected Rect
	}{
		{"block sized rect", NewRect(100, 100, 20, 15), NewRect(6, 3, 2, 1)},
		{"tiny rect covers one cell", NewRect(0, 0, 1, 1), NewRect(0, 0, 1, 1)},
		{"full surface", NewRect(0, 0, 1200, 800), NewRect(0, 0, 80, 24)},
		{"partially above top", NewRect(30, -40, 15, 50), NewRect(2, -2, 1, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := vp.Project(tc.in)
			if got != tc.expected {
				t.Errorf("Project(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	sizes := [][2]int{{80, 24}, {120, 40}, {213, 57}}
	for _, sz := range sizes {
		vp := NewViewport(1200, 800, sz[0], sz[1])
		for col := 0; col < vp.Cols; col++ {
			if got := vp.CellX(vp.LogicalX(col)); got != col {
				t.Fatalf("%dx%d: CellX(LogicalX(%d)) = %d", sz[0], sz[1], col, got)
			}
		}
		for row := 0; row < vp.Rows; row++ {
			if got := vp.CellY(vp.LogicalY(row)); got != row {
				t.Fatalf("%dx%d: CellY(LogicalY(%d)) = %d", sz[0], sz[1], row, got)
			}
		}
	}
}

func TestViewportSample(t *testing.T) {
	vp := NewViewport(1200, 800, 80, 24)

	tests := []struct {
		name   string
		x, y   int
		col    int
		row    int
		inside bool
	}{
		{"cell center", 7, 16, 0, 0, true},
		{"within radius", 8, 15, 0, 0, true},
		{"off center", 12, 16, 0, 0, false},
		{"left of surface", -5, 16, -1, 0, false},
		{"below surface", 600, 820, 40, 24, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row, ok := vp.Sample(tc.x, tc.y, 1)
			if ok != tc.inside {
				t.Errorf("Sample(%d, %d) ok = %v, expected %v", tc.x, tc.y, ok, tc.inside)
			}
			if col != tc.col || row != tc.row {
				t.Errorf("Sample(%d, %d) cell = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
			}
		})
	}
}

func TestNewViewportGuardsZeroSizes(t *testing.T) {
	vp := NewViewport(0, -3, 0, 0)
	if vp.LogicalW != 1 || vp.LogicalH != 1 || vp.Cols != 1 || vp.Rows != 1 {
		t.Errorf("NewViewport should raise sizes to 1, got %+v", vp)
	}
	// Must not panic
	_ = vp.Project(NewRect(0, 0, 5, 5))
}
