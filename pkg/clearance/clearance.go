// Package clearance reports route points that stray inside obstacle
// rectangles. The index is advisory: it never feeds back into the search,
// it only scores a finished route against known no-go areas.
package clearance

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

// Obstacle is an axis-aligned no-go rectangle in raster coordinates.
type Obstacle struct {
	Name string
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Violation pairs a route point with the obstacle it falls inside.
type Violation struct {
	PointIndex int
	Obstacle   string
}

// entry wraps an obstacle for R-tree storage.
type entry struct {
	obstacle Obstacle
	bbox     rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.bbox }

// Index answers point-in-obstacle queries for a fixed obstacle set.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an R-tree over the obstacles. Degenerate rectangles with
// zero or negative extent cannot be indexed and are skipped.
func NewIndex(obstacles []Obstacle) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	for _, ob := range obstacles {
		bbox, err := rtreego.NewRect(
			rtreego.Point{ob.MinX, ob.MinY},
			[]float64{ob.MaxX - ob.MinX, ob.MaxY - ob.MinY},
		)
		if err != nil {
			continue
		}
		tree.Insert(&entry{obstacle: ob, bbox: bbox})
	}
	return &Index{tree: tree}
}

// Size returns the number of indexed obstacles.
func (ix *Index) Size() int { return ix.tree.Size() }

// Check reports every route point lying strictly inside an obstacle grown
// by buffer on each side. Violations are ordered by point index, then by
// obstacle name. A negative buffer is treated as zero.
func (ix *Index) Check(p *route.Path, buffer float64) []Violation {
	if p == nil {
		return nil
	}
	if buffer < 0 {
		buffer = 0
	}

	var violations []Violation
	for i, pt := range p.Points {
		probe := rtreego.Point{pt.X, pt.Y}.ToRect(buffer)
		hits := ix.tree.SearchIntersect(probe)
		if len(hits) == 0 {
			continue
		}
		names := make([]string, 0, len(hits))
		for _, hit := range hits {
			names = append(names, hit.(*entry).obstacle.Name)
		}
		sort.Strings(names)
		for _, name := range names {
			violations = append(violations, Violation{PointIndex: i, Obstacle: name})
		}
	}
	return violations
}
