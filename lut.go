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

import (
	"image/color"
	"time"

	"github.com/anthonynsimon/bild/parallel"
)

// LUTBits is the number of bits per channel used to address a LUT grid
// cell.  It must be between 1 and 7.
const LUTBits = 5

// LUTSize is the edge length of a LUT grid.
const LUTSize = 1 << LUTBits

const (
	cellScale  = 256 / LUTSize
	cellOffset = cellScale / 2
)

// Grid is a dense sampling of a colour transform on a LUTSize³ grid of
// encoded colours.  Cells are indexed as [b][g][r]: cell (i, j, k) holds
// the transformed value of the encoded colour whose red, green and blue
// channels are at the centres of buckets k, j and i respectively.
//
// A Grid is 128 KiB in size and should be allocated with new or
// obtained from [Build].  Once built, it is only read.
type Grid [LUTSize][LUTSize][LUTSize]color.NRGBA

// cellCentre returns the encoded channel value sampled by grid index i.
func cellCentre(i int) uint8 {
	return uint8(i*cellScale + cellOffset)
}

// Build samples f at the centre of every grid cell.  The cell centres are
// converted with codec.DecodeGrid, and the results stored using
// codec.EncodeGrid.  If codec is nil, [Gamma22] is used.
//
// The cells are computed concurrently, so f must be safe for concurrent
// use.
func Build(f Func, codec *Codec) *Grid {
	start := time.Now()

	g := new(Grid)
	parallel.Line(LUTSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := range LUTSize {
				for k := range LUTSize {
					p := color.NRGBA{R: cellCentre(k), G: cellCentre(j), B: cellCentre(i), A: 255}
					g[i][j][k] = codec.EncodeGrid(f(codec.DecodeGrid(p)))
				}
			}
		}
	})

	Logger().Debug("LUT built", "size", LUTSize, "elapsed", time.Since(start))
	return g
}

// IdentityGrid returns a grid where every cell holds its own centre.
// Applying it with [Trilinear] reproduces the input exactly.
func IdentityGrid() *Grid {
	g := new(Grid)
	for i := range LUTSize {
		for j := range LUTSize {
			for k := range LUTSize {
				g[i][j][k] = color.NRGBA{R: cellCentre(k), G: cellCentre(j), B: cellCentre(i), A: 255}
			}
		}
	}
	return g
}

// A Sampler maps a stream of encoded pixels to new encoded pixels.
// The three implementations are [Trilinear], [Nearest], and [MonoRamp].
type Sampler interface {
	// Apply stores the transformed pixels of src in dst.  The slices must
	// have the same length and may be identical.
	Apply(dst, src []color.NRGBA)
}

// Trilinear applies a [Grid] by interpolation between neighbouring cells.
//
// If Extrapolate is set, pixels beyond the outermost cell centres continue
// the slope of the two outermost cells instead of being flattened to the
// edge value.  The result is clamped to [0, 255].
type Trilinear struct {
	Grid        *Grid
	Extrapolate bool
}

// Apply implements the [Sampler] interface.
func (t Trilinear) Apply(dst, src []color.NRGBA) {
	checkLengths(dst, src)
	parallel.Line(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = sampleTrilinear(t.Grid, src[i], t.Extrapolate)
		}
	})
}

// Nearest applies a [Grid] by point sampling.  This is faster than
// [Trilinear], but produces visible banding in smooth gradients.
type Nearest struct {
	Grid *Grid
}

// Apply implements the [Sampler] interface.
func (n Nearest) Apply(dst, src []color.NRGBA) {
	checkLengths(dst, src)
	parallel.Line(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = sampleNearest(n.Grid, src[i])
		}
	})
}

func checkLengths(dst, src []color.NRGBA) {
	if len(dst) != len(src) {
		panic("cvd: pixel buffers differ in length")
	}
}
