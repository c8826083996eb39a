package route

import (
	"math"
	"sort"

	"github.com/nine-gs/ScrambleOpt/pkg/geo"
)

// Resegment returns a copy of p densified to exactly targetCount points by
// inserting evenly spaced interpolated points inside existing segments. New
// points are apportioned across segments in proportion to segment length
// using largest-remainder rounding, so long segments absorb more of the
// added density. Original points are preserved bitwise and in order.
//
// Returns nil when targetCount <= Len() or the path has no segments; callers
// treat nil as "keep the path as is".
func Resegment(p *Path, targetCount int) *Path {
	if targetCount <= p.Len() {
		return nil
	}
	segs := p.Segments()
	if len(segs) == 0 {
		return nil
	}

	toAdd := targetCount - p.Len()
	total := 0.0
	for _, s := range segs {
		total += s.Distance
	}

	shares := make([]float64, len(segs))
	counts := make([]int, len(segs))
	allocated := 0
	for i, s := range segs {
		if total > 0 {
			shares[i] = s.Distance / total * float64(toAdd)
		}
		counts[i] = int(math.Round(shares[i]))
		allocated += counts[i]
	}

	// Rounding rarely lands on the target exactly; settle the difference on
	// the segments whose fractional share sat closest to the rounding
	// boundary, in either direction, so the output count is exact.
	if remainder := toAdd - allocated; remainder != 0 {
		frac := make([]float64, len(segs))
		for i := range shares {
			frac[i] = shares[i] - math.Floor(shares[i])
		}
		order := make([]int, len(segs))
		for i := range order {
			order[i] = i
		}
		if remainder > 0 {
			sort.SliceStable(order, func(a, b int) bool { return frac[order[a]] > frac[order[b]] })
			for k := 0; remainder > 0; k++ {
				counts[order[k%len(order)]]++
				remainder--
			}
		} else {
			sort.SliceStable(order, func(a, b int) bool { return frac[order[a]] < frac[order[b]] })
			for k := 0; remainder < 0; k++ {
				idx := order[k%len(order)]
				if counts[idx] > 0 {
					counts[idx]--
					remainder++
				}
			}
		}
	}

	out := &Path{
		Points: make([]geo.Point3, 0, targetCount),
		Locked: p.Locked,
		src:    p.src,
	}
	for i := range counts {
		p1 := p.Points[i]
		p2 := p.Points[i+1]
		out.Points = append(out.Points, p1)
		n := counts[i]
		for k := 1; k <= n; k++ {
			t := float64(k) / float64(n+1)
			out.Points = append(out.Points, p1.Lerp(p2, t))
		}
	}
	out.Points = append(out.Points, p.Points[len(p.Points)-1])
	return out
}
