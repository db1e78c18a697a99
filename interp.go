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

import "image/color"

// Fixed-point layout of an 8-bit channel value relative to the LUT grid:
// the top LUTBits bits select a cell, the remaining fShift bits give the
// position inside the cell.
const (
	fShift = 8 - LUTBits
	fHalf  = 1 << (fShift - 1) // half a cell, since samples sit at cell centres
	fMask  = 1<<fShift - 1
	fOne   = 1 << fShift // one full grid step
)

// gridAxis finds the two grid indices i0 and i1 = i0+1 which bracket the
// channel value c, and the weight s of i1 in units of 1/fOne.
//
// Below the first and above the last cell centre there is only one
// neighbour.  With extrapolate set, the nearest pair of cells is used
// instead and s leaves the range [0, fOne), so that the slope between the
// outermost samples is continued.  Otherwise both indices refer to the edge
// cell.
func gridAxis(c uint8, extrapolate bool) (i0, i1, s int) {
	co := int(c) + fHalf
	i1 = co >> fShift
	i0 = i1 - 1
	s = co & fMask

	if i0 < 0 {
		i0++
		if extrapolate {
			i1++
			s -= fOne
		}
	} else if i1 >= LUTSize {
		i1--
		if extrapolate {
			i0--
			s += fOne
		}
	}

	if i0 < 0 || i0 >= LUTSize || i1 < 0 || i1 >= LUTSize {
		panic("cvd: grid index out of range")
	}
	return i0, i1, s
}

// blend interpolates between c0 and c1 with weight s/fOne on c1.
// The result may lie outside [0, 255] if s is outside [0, fOne].
func blend(c0, c1 uint8, s int) int {
	return ((fOne-s)*int(c0) + s*int(c1)) >> fShift
}

// sampleTrilinear looks up p in g.  Each output channel is interpolated
// between the two diagonal corners (i0, i0, i0) and (i1, i1, i1) of the
// enclosing cell, using the weight of its own axis.
func sampleTrilinear(g *Grid, p color.NRGBA, extrapolate bool) color.NRGBA {
	r0, r1, sr := gridAxis(p.R, extrapolate)
	g0, g1, sg := gridAxis(p.G, extrapolate)
	b0, b1, sb := gridAxis(p.B, extrapolate)

	c0 := g[b0][g0][r0]
	c1 := g[b1][g1][r1]

	r := blend(c0.R, c1.R, sr)
	gg := blend(c0.G, c1.G, sg)
	b := blend(c0.B, c1.B, sb)

	if extrapolate {
		r = clamp(r, 0, 255)
		gg = clamp(gg, 0, 255)
		b = clamp(b, 0, 255)
	}

	return color.NRGBA{R: uint8(r), G: uint8(gg), B: uint8(b), A: 255}
}

// sampleNearest returns the grid cell containing p.
func sampleNearest(g *Grid, p color.NRGBA) color.NRGBA {
	return g[p.B>>fShift][p.G>>fShift][p.R>>fShift]
}
