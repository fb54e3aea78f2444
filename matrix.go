package plotmark

import "math"

// Matrix represents a 2D affine transformation matrix.
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// ScaleMatrix returns a scaling matrix.
func ScaleMatrix(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Multiply returns the product m * other.
// The resulting transform applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// TransformPoint applies the matrix to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ScaleFactor returns the average absolute scale applied by the matrix.
// Used to scale stroke widths when paths are transformed before stroking.
func (m Matrix) ScaleFactor() float64 {
	sx := math.Hypot(m.A, m.B)
	sy := math.Hypot(m.C, m.D)
	return (sx + sy) / 2
}

// IsIdentity returns true if the matrix is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
