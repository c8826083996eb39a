package clearance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nine-gs/ScrambleOpt/pkg/clearance"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

func pathThrough(coords ...[2]float64) *route.Path {
	p := route.New(nil)
	for _, c := range coords {
		p.AddPointZ(c[0], c[1], 0)
	}
	return p
}

// TestIndexSkipsDegenerateObstacles verifies zero-extent rectangles are
// dropped rather than poisoning the tree.
func TestIndexSkipsDegenerateObstacles(t *testing.T) {
	ix := clearance.NewIndex([]clearance.Obstacle{
		{Name: "lake", MinX: 10, MinY: 10, MaxX: 20, MaxY: 20},
		{Name: "fence line", MinX: 30, MinY: 5, MaxX: 30, MaxY: 50},
		{Name: "scree field", MinX: 40, MinY: 40, MaxX: 60, MaxY: 55},
	})
	assert.Equal(t, 2, ix.Size(), "the zero-width obstacle cannot be indexed")
}

// TestCheckFlagsInteriorPoint covers the basic hit/miss split.
func TestCheckFlagsInteriorPoint(t *testing.T) {
	ix := clearance.NewIndex([]clearance.Obstacle{
		{Name: "lake", MinX: 10, MinY: 10, MaxX: 20, MaxY: 20},
	})
	p := pathThrough([2]float64{5, 5}, [2]float64{15, 15}, [2]float64{30, 30})

	violations := ix.Check(p, 0)
	require.Len(t, violations, 1, "only the interior point violates")
	assert.Equal(t, 1, violations[0].PointIndex)
	assert.Equal(t, "lake", violations[0].Obstacle)
}

// TestCheckBufferGrowsObstacles verifies that the buffer extends each
// obstacle's reach.
func TestCheckBufferGrowsObstacles(t *testing.T) {
	ix := clearance.NewIndex([]clearance.Obstacle{
		{Name: "lake", MinX: 10, MinY: 10, MaxX: 20, MaxY: 20},
	})
	p := pathThrough([2]float64{22, 15})

	assert.Empty(t, ix.Check(p, 0), "two units outside is clear without a buffer")
	assert.Len(t, ix.Check(p, 3), 1, "a 3-unit buffer reaches the point")
}

// TestCheckSortsOverlappingObstacles verifies deterministic name order when
// one point sits inside several obstacles.
func TestCheckSortsOverlappingObstacles(t *testing.T) {
	ix := clearance.NewIndex([]clearance.Obstacle{
		{Name: "west basin", MinX: 0, MinY: 0, MaxX: 30, MaxY: 30},
		{Name: "east basin", MinX: 10, MinY: 10, MaxX: 40, MaxY: 40},
	})
	p := pathThrough([2]float64{15, 15})

	violations := ix.Check(p, 0)
	require.Len(t, violations, 2, "the point sits inside both basins")
	assert.Equal(t, "east basin", violations[0].Obstacle)
	assert.Equal(t, "west basin", violations[1].Obstacle)
}

// TestCheckOrdersByPointIndex verifies violations follow route order.
func TestCheckOrdersByPointIndex(t *testing.T) {
	ix := clearance.NewIndex([]clearance.Obstacle{
		{Name: "lake", MinX: 10, MinY: 10, MaxX: 20, MaxY: 20},
		{Name: "marsh", MinX: 50, MinY: 50, MaxX: 60, MaxY: 60},
	})
	p := pathThrough([2]float64{55, 55}, [2]float64{15, 15})

	violations := ix.Check(p, 0)
	require.Len(t, violations, 2)
	assert.Equal(t, 0, violations[0].PointIndex)
	assert.Equal(t, "marsh", violations[0].Obstacle)
	assert.Equal(t, 1, violations[1].PointIndex)
	assert.Equal(t, "lake", violations[1].Obstacle)
}

// TestCheckEmptyIndexAndNilPath covers the degenerate inputs.
func TestCheckEmptyIndexAndNilPath(t *testing.T) {
	ix := clearance.NewIndex(nil)
	assert.Empty(t, ix.Check(pathThrough([2]float64{1, 1}), 5), "no obstacles, no violations")
	assert.Empty(t, ix.Check(nil, 0), "nil path, no violations")
}

// TestCheckNegativeBufferClamped verifies a negative buffer behaves like
// zero instead of inverting the probe rectangle.
func TestCheckNegativeBufferClamped(t *testing.T) {
	ix := clearance.NewIndex([]clearance.Obstacle{
		{Name: "lake", MinX: 10, MinY: 10, MaxX: 20, MaxY: 20},
	})
	p := pathThrough([2]float64{15, 15})
	assert.Len(t, ix.Check(p, -4), 1, "negative buffer clamps to zero")
}
