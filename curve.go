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

import "math"

// Curve is a transfer function which maps gamma-encoded values to linear
// light.
//
// Above the threshold D the curve is y = (A·x + B)^Gamma.  Below D the curve
// is the straight line y = C·x.  This is the form of ICC parametric curves of
// type 3.  If A is zero, the curve is the pure power law y = x^Gamma and the
// remaining fields are ignored.
//
// Curve values are immutable after construction and may be shared between
// goroutines.
type Curve struct {
	Gamma float64
	A, B  float64
	C, D  float64
}

// Evaluate converts the encoded value x in [0, 1] to linear light.
// Both input and output are clamped to [0, 1].
func (c *Curve) Evaluate(x float64) float64 {
	x = clamp(x, 0, 1)
	if x <= 0 {
		return 0
	}

	if c.A == 0 {
		return clamp(math.Pow(x, c.Gamma), 0, 1)
	}

	if x < c.D {
		return clamp(c.C*x, 0, 1)
	}
	v := c.A*x + c.B
	if v <= 0 {
		return 0
	}
	return clamp(math.Pow(v, c.Gamma), 0, 1)
}

// Invert converts the linear value y in [0, 1] back to its encoded form.
// This is the inverse of Evaluate.
func (c *Curve) Invert(y float64) float64 {
	y = clamp(y, 0, 1)
	if y <= 0 || c.Gamma == 0 {
		return 0
	}
	invG := 1 / c.Gamma

	if c.A == 0 {
		return math.Pow(y, invG)
	}

	// the linear segment ends at output C·D
	if y < c.C*c.D {
		if c.C == 0 {
			return 0
		}
		return y / c.C
	}
	return clamp((math.Pow(y, invG)-c.B)/c.A, 0, 1)
}

// IsIdentity returns true if the curve maps every value to itself.
func (c *Curve) IsIdentity() bool {
	return c.A == 0 && c.Gamma == 1
}
