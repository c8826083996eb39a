package geo

import "math"

// Point3 represents a point in raster space: x,y are raster coordinates,
// z is elevation in the raster's vertical units.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Origin is the zero point.
var Origin = Point3{0, 0, 0}

// Pt is a shorthand constructor for Point3.
func Pt(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns p + q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p * s.
func (p Point3) Scale(s float64) Point3 {
	return Point3{p.X * s, p.Y * s, p.Z * s}
}

// Length returns the Euclidean length of the vector.
func (p Point3) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// PlanarLength returns the length of the vector's x,y projection.
func (p Point3) PlanarLength() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns the unit vector in the same direction.
// Returns zero vector if length is zero.
func (p Point3) Normalize() Point3 {
	l := p.Length()
	if l < 1e-12 {
		return Point3{}
	}
	return Point3{p.X / l, p.Y / l, p.Z / l}
}

// Dot returns the dot product of p and q.
func (p Point3) Dot(q Point3) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the 3D cross product p × q.
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Distance returns the Euclidean distance from p to q.
func (p Point3) Distance(q Point3) float64 {
	return p.Sub(q).Length()
}

// PlanarDistance returns the distance from p to q ignoring elevation.
func (p Point3) PlanarDistance(q Point3) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp returns the linear interpolation between p and q at t in [0,1].
func (p Point3) Lerp(q Point3, t float64) Point3 {
	return Point3{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// MidPoint returns the midpoint between p and q.
func MidPoint(p, q Point3) Point3 {
	return p.Lerp(q, 0.5)
}
