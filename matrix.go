// seehuhn.de/go/cvd - simulate and correct colour vision deficiencies
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cvd

import "golang.org/x/exp/constraints"

// Vec3 is a colour in a linear, additive colour space (RGB or LMS).
// Components are not restricted to [0, 1].
type Vec3 [3]float64

// Mat3 is a row-major 3×3 matrix mapping between colour bases.
type Mat3 [3]Vec3

// Add returns a+b.
func Add(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns s·v.
func Scale(s float64, v Vec3) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

// Dot returns the inner product of a and b.
func Dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// MulVec returns the matrix-vector product m·v.
func (m *Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{Dot(m[0], v), Dot(m[1], v), Dot(m[2], v)}
}

// Mul returns the matrix product m·n.
func (m *Mat3) Mul(n *Mat3) Mat3 {
	var res Mat3
	for i := range 3 {
		res[i] = Vec3{Dot(m[i], n.Col(0)), Dot(m[i], n.Col(1)), Dot(m[i], n.Col(2))}
	}
	return res
}

// Row returns row i of m.
func (m *Mat3) Row(i int) Vec3 {
	return m[i]
}

// Col returns column j of m.
func (m *Mat3) Col(j int) Vec3 {
	return Vec3{m[0][j], m[1][j], m[2][j]}
}

// Transpose returns the transpose of m.
func (m *Mat3) Transpose() Mat3 {
	return Mat3{m.Col(0), m.Col(1), m.Col(2)}
}

// Inverse returns the inverse of m.
// The second return value is false if m is singular.
func (m *Mat3) Inverse() (Mat3, bool) {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det == 0 {
		return Mat3{}, false
	}

	invDet := 1.0 / det

	return Mat3{
		{(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet},
		{(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet},
		{(d*h - e*g) * invDet, (b*g - a*h) * invDet, (a*e - b*d) * invDet},
	}, true
}

// ClampUnit clamps every component of c to [0, 1].
func ClampUnit(c Vec3) Vec3 {
	return Vec3{clamp(c[0], 0, 1), clamp(c[1], 0, 1), clamp(c[2], 0, 1)}
}

func clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
