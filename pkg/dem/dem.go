// Package dem provides elevation sources for the route engine: the Source
// interface consumed by route paths, an in-memory raster Grid, an ESRI
// ASCII grid loader, and a deterministic synthetic terrain generator.
package dem

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds reports a sample outside the raster's width/height.
	ErrOutOfBounds = errors.New("dem: coordinates out of bounds")
	// ErrNoData reports a sample at a cell carrying the raster's nodata value.
	ErrNoData = errors.New("dem: no data at cell")
)

// Source is the narrow elevation-lookup capability the route engine consumes.
// Coordinates are raster cell indices; callers truncate floats before sampling.
type Source interface {
	// Sample returns the elevation at cell (x, y), or ErrOutOfBounds /
	// ErrNoData when the lookup fails.
	Sample(x, y int) (float64, error)
	// Bounds returns the raster's declared width and height in cells.
	Bounds() (width, height int)
}

// Grid is an in-memory elevation raster stored row-major, row 0 at the top.
type Grid struct {
	width, height int
	data          []float64

	nodata    float64
	hasNodata bool
}

// NewGrid returns a zero-filled raster of the given dimensions.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
}

// NewUniform returns a raster with every cell set to elev.
func NewUniform(width, height int, elev float64) *Grid {
	g := NewGrid(width, height)
	for i := range g.data {
		g.data[i] = elev
	}
	return g
}

// Bounds returns the raster dimensions.
func (g *Grid) Bounds() (width, height int) {
	return g.width, g.height
}

// Set writes the elevation at cell (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, elev float64) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.data[y*g.width+x] = elev
}

// At returns the raw value at cell (x, y) without nodata interpretation.
// Out-of-bounds reads return 0.
func (g *Grid) At(x, y int) float64 {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.data[y*g.width+x]
}

// SetNodata declares the value that marks cells without data.
func (g *Grid) SetNodata(v float64) {
	g.nodata = v
	g.hasNodata = true
}

// Sample returns the elevation at cell (x, y).
func (g *Grid) Sample(x, y int) (float64, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	v := g.data[y*g.width+x]
	if g.hasNodata && v == g.nodata {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrNoData, x, y)
	}
	return v, nil
}

// Window returns the cells in the half-open rectangle [x0,x1)x[y0,y1),
// clamped to the raster. Returns nil when the clamped window is empty.
// Rows are returned top-down, matching the raster's storage order.
func (g *Grid) Window(x0, y0, x1, y1 int) [][]float64 {
	x0 = clamp(x0, 0, g.width)
	x1 = clamp(x1, 0, g.width)
	y0 = clamp(y0, 0, g.height)
	y1 = clamp(y1, 0, g.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	rows := make([][]float64, 0, y1-y0)
	for y := y0; y < y1; y++ {
		row := make([]float64, x1-x0)
		copy(row, g.data[y*g.width+x0:y*g.width+x1])
		rows = append(rows, row)
	}
	return rows
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
