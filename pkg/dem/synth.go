package dem

import "math"

// NoiseParams configures the fractal terrain generator.
type NoiseParams struct {
	Octaves     int     // noise layers summed
	Frequency   float64 // base feature size, cycles per cell
	Persistence float64 // amplitude falloff per octave
	Lacunarity  float64 // frequency growth per octave
}

// DefaultNoiseParams returns the generator defaults: four octaves of broad,
// gently rolling relief.
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Octaves:     4,
		Frequency:   1.0 / 64.0,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Synthetic generates a deterministic fractal terrain: the same seed always
// produces the same raster. Elevations span [0, relief].
func Synthetic(width, height int, seed int64, relief float64) *Grid {
	return SyntheticWith(width, height, seed, relief, DefaultNoiseParams())
}

// SyntheticWith generates a fractal terrain with explicit noise parameters.
func SyntheticWith(width, height int, seed int64, relief float64, p NoiseParams) *Grid {
	if p.Octaves < 1 {
		p.Octaves = 1
	}
	if p.Frequency <= 0 {
		p.Frequency = 1.0 / 64.0
	}
	if p.Persistence <= 0 {
		p.Persistence = 0.5
	}
	if p.Lacunarity <= 0 {
		p.Lacunarity = 2.0
	}

	g := NewGrid(width, height)
	maxAmp := 0.0
	amp := 1.0
	for o := 0; o < p.Octaves; o++ {
		maxAmp += amp
		amp *= p.Persistence
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sum := 0.0
			amp := 1.0
			freq := p.Frequency
			for o := 0; o < p.Octaves; o++ {
				sum += amp * valueNoise(float64(x)*freq, float64(y)*freq, seed+int64(o))
				amp *= p.Persistence
				freq *= p.Lacunarity
			}
			g.Set(x, y, relief*sum/maxAmp)
		}
	}
	return g
}

// valueNoise returns smoothed lattice noise in [0, 1].
func valueNoise(x, y float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	tx := smoothstep(x - x0)
	ty := smoothstep(y - y0)

	ix, iy := int64(x0), int64(y0)
	v00 := latticeValue(ix, iy, seed)
	v10 := latticeValue(ix+1, iy, seed)
	v01 := latticeValue(ix, iy+1, seed)
	v11 := latticeValue(ix+1, iy+1, seed)

	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// latticeValue hashes an integer lattice coordinate to [0, 1].
func latticeValue(x, y, seed int64) float64 {
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(seed)*0x165667B19E3779F9
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	h *= 0xC4CEB9FE1A85EC53
	h ^= h >> 33
	return float64(h>>11) / float64(1<<53)
}
