package surface

import "math"

// Matrix is a 2x3 affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

func TranslateMatrix(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

func ScaleMatrix(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

func RotateMatrix(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m * other, so other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// ScaleFactor is the uniform scale of m, used to map radii and widths.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

// Stack tracks the current transform and the saved ones. Backends that draw
// in device space embed it to get Push/Pop/Translate/Rotate.
type Stack struct {
	base  Matrix
	m     Matrix
	saved []Matrix
}

func NewStack(base Matrix) Stack {
	return Stack{base: base, m: base}
}

func (s *Stack) Push() { s.saved = append(s.saved, s.m) }

// Pop restores the last pushed transform. Unbalanced pops are ignored.
func (s *Stack) Pop() {
	if len(s.saved) == 0 {
		return
	}
	s.m = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *Stack) Translate(x, y float64) { s.m = s.m.Multiply(TranslateMatrix(x, y)) }
func (s *Stack) Rotate(angle float64)   { s.m = s.m.Multiply(RotateMatrix(angle)) }

func (s *Stack) Matrix() Matrix { return s.m }
func (s *Stack) Depth() int     { return len(s.saved) }

// Reset drops all saved transforms and returns to the base transform.
func (s *Stack) Reset() {
	s.m = s.base
	s.saved = s.saved[:0]
}

// SetBase replaces the base transform and resets the stack.
func (s *Stack) SetBase(m Matrix) {
	s.base = m
	s.Reset()
}

// Project maps a point from user space to device space.
func (s *Stack) Project(x, y float64) (float64, float64) { return s.m.Apply(x, y) }

// Length maps a user-space length (radius, stroke width) to device space.
func (s *Stack) Length(l float64) float64 { return l * s.m.ScaleFactor() }
