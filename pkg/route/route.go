// Package route implements the ordered, mutable 3-D path at the heart of the
// engine: point mutation with endpoint locking, derived segment geometry, and
// the resegmenting/simplification transforms that keep point density
// well-formed across optimization steps.
package route

import (
	"errors"
	"fmt"

	"github.com/nine-gs/ScrambleOpt/pkg/dem"
	"github.com/nine-gs/ScrambleOpt/pkg/geo"
)

var (
	// ErrPointRange reports an index outside the path's current bounds.
	ErrPointRange = errors.New("route: point index out of range")
	// ErrLockedEndpoint reports a mutation attempted on a protected endpoint.
	ErrLockedEndpoint = errors.New("route: endpoint is locked")
	// ErrSample reports a failed elevation lookup.
	ErrSample = errors.New("route: elevation sample failed")
	// ErrNoElevation is the ErrSample case where no elevation source is configured.
	ErrNoElevation = fmt.Errorf("%w: no elevation source", ErrSample)
)

// Segment summarizes the span between two consecutive path points.
type Segment struct {
	DX       float64 `json:"dx"`
	DY       float64 `json:"dy"`
	DZ       float64 `json:"dz"`
	Distance float64 `json:"distance"`
}

// Path is an ordered sequence of points forming a route in raster space.
// The first and last points are the route's endpoints; when Locked is true
// they cannot be deleted, shifted, or merged away.
//
// Paths are value objects by convention: candidates derived from a path are
// independent copies that share only the read-only elevation source.
type Path struct {
	Points []geo.Point3
	Locked bool

	src dem.Source
}

// New returns an empty path reading elevations from src (may be nil).
func New(src dem.Source) *Path {
	return &Path{src: src}
}

// Clone returns an independent copy of the path's points and locked state.
// The elevation source is shared, never copied.
func (p *Path) Clone() *Path {
	c := &Path{
		Points: make([]geo.Point3, len(p.Points)),
		Locked: p.Locked,
		src:    p.src,
	}
	copy(c.Points, p.Points)
	return c
}

// SetSource sets or replaces the elevation source.
func (p *Path) SetSource(src dem.Source) {
	p.src = src
}

// Source returns the path's elevation source (may be nil).
func (p *Path) Source() dem.Source {
	return p.src
}

// Len returns the number of points in the path.
func (p *Path) Len() int {
	return len(p.Points)
}

// Clear removes all points.
func (p *Path) Clear() {
	p.Points = nil
}

// IsEndpoint reports whether index i addresses the first or last point.
func (p *Path) IsEndpoint(i int) bool {
	if len(p.Points) == 0 {
		return false
	}
	return i == 0 || i == len(p.Points)-1
}

// AddPoint appends a point, reading its elevation from the source at the
// truncated integer coordinates. Returns ErrSample when no source is
// configured or the lookup fails.
func (p *Path) AddPoint(x, y float64) error {
	if p.src == nil {
		return ErrNoElevation
	}
	z, err := p.src.Sample(int(x), int(y))
	if err != nil {
		return fmt.Errorf("%w at (%d, %d): %v", ErrSample, int(x), int(y), err)
	}
	p.Points = append(p.Points, geo.Pt(x, y, z))
	return nil
}

// AddPointZ appends a point with an explicit elevation.
func (p *Path) AddPointZ(x, y, z float64) {
	p.Points = append(p.Points, geo.Pt(x, y, z))
}

// DeletePoint removes the point at index i. Fails with ErrPointRange for an
// invalid index and ErrLockedEndpoint when the path is locked and i addresses
// an endpoint.
func (p *Path) DeletePoint(i int) error {
	if err := p.checkIndex(i); err != nil {
		return err
	}
	if p.Locked && p.IsEndpoint(i) {
		return fmt.Errorf("%w: index %d", ErrLockedEndpoint, i)
	}
	p.Points = append(p.Points[:i], p.Points[i+1:]...)
	return nil
}

// ShiftPoint moves the point at index i by (dx, dy). When resample is true
// the elevation is re-read from the source at the new truncated coordinates;
// otherwise z is left untouched. Locking and range rules match DeletePoint.
func (p *Path) ShiftPoint(i int, dx, dy float64, resample bool) error {
	if err := p.checkIndex(i); err != nil {
		return err
	}
	if p.Locked && p.IsEndpoint(i) {
		return fmt.Errorf("%w: index %d", ErrLockedEndpoint, i)
	}
	nx := p.Points[i].X + dx
	ny := p.Points[i].Y + dy
	if resample {
		if p.src == nil {
			return ErrNoElevation
		}
		z, err := p.src.Sample(int(nx), int(ny))
		if err != nil {
			return fmt.Errorf("%w at (%d, %d): %v", ErrSample, int(nx), int(ny), err)
		}
		p.Points[i] = geo.Pt(nx, ny, z)
		return nil
	}
	p.Points[i].X = nx
	p.Points[i].Y = ny
	return nil
}

// UpdateAllZ re-samples every point's elevation at its truncated coordinates.
// Individual lookup failures keep the point's old elevation; only a missing
// source is an error.
func (p *Path) UpdateAllZ() error {
	if p.src == nil {
		return ErrNoElevation
	}
	for i := range p.Points {
		if z, err := p.src.Sample(int(p.Points[i].X), int(p.Points[i].Y)); err == nil {
			p.Points[i].Z = z
		}
	}
	return nil
}

// Segments returns the (dx, dy, dz, distance) rows between consecutive
// points: nil under 2 points, otherwise exactly Len()-1 rows.
func (p *Path) Segments() []Segment {
	if len(p.Points) < 2 {
		return nil
	}
	segs := make([]Segment, len(p.Points)-1)
	for i := range segs {
		d := p.Points[i+1].Sub(p.Points[i])
		segs[i] = Segment{DX: d.X, DY: d.Y, DZ: d.Z, Distance: d.Length()}
	}
	return segs
}

// TotalDistance returns the sum of 3-D segment lengths.
func (p *Path) TotalDistance() float64 {
	total := 0.0
	for _, s := range p.Segments() {
		total += s.Distance
	}
	return total
}

// ElevationGainLoss returns the total climb (sum of positive elevation
// deltas) and descent (magnitude of negative deltas). Both are >= 0.
func (p *Path) ElevationGainLoss() (gain, loss float64) {
	for _, s := range p.Segments() {
		if s.DZ > 0 {
			gain += s.DZ
		} else {
			loss -= s.DZ
		}
	}
	return gain, loss
}

// ConsolidateClusters merges maximal runs of consecutive points whose
// adjacent planar distance is <= maxDistance into a single point at the mean
// x,y. The merged elevation is re-read from the source at the truncated mean
// coordinates, falling back to the mean z when the lookup fails. Runs that
// touch a locked endpoint are copied through unmerged. Modifies the path in
// place.
func (p *Path) ConsolidateClusters(maxDistance float64) {
	n := len(p.Points)
	if n < 2 {
		return
	}

	out := make([]geo.Point3, 0, n)
	i := 0
	for i < n {
		if i < n-1 && p.Points[i].PlanarDistance(p.Points[i+1]) <= maxDistance {
			j := i
			for j < n-1 && p.Points[j].PlanarDistance(p.Points[j+1]) <= maxDistance {
				j++
			}
			// Run spans [i, j].
			if p.Locked && (i == 0 || j == n-1) {
				out = append(out, p.Points[i:j+1]...)
				i = j + 1
				continue
			}
			var sx, sy, sz float64
			for k := i; k <= j; k++ {
				sx += p.Points[k].X
				sy += p.Points[k].Y
				sz += p.Points[k].Z
			}
			count := float64(j - i + 1)
			mx, my := sx/count, sy/count
			z := sz / count
			if p.src != nil {
				if v, err := p.src.Sample(int(mx), int(my)); err == nil {
					z = v
				}
			}
			out = append(out, geo.Pt(mx, my, z))
			i = j + 1
		} else {
			out = append(out, p.Points[i])
			i++
		}
	}
	p.Points = out
}

func (p *Path) checkIndex(i int) error {
	if i < 0 || i >= len(p.Points) {
		return fmt.Errorf("%w: %d (path has %d points)", ErrPointRange, i, len(p.Points))
	}
	return nil
}
