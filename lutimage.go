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
	"fmt"
	"image"
)

// Image returns the grid as an image of width LUTSize² and height LUTSize.
// Pixel (k + i·LUTSize, j) holds cell (i, j, k), so the blue axis is tiled
// horizontally, green runs vertically and red runs within each tile.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, LUTSize*LUTSize, LUTSize))
	for i := range LUTSize {
		for j := range LUTSize {
			for k := range LUTSize {
				img.SetNRGBA(k+i*LUTSize, j, g[i][j][k])
			}
		}
	}
	return img
}

// GridFromImage reads a grid stored in the layout written by [Grid.Image].
// If the image does not have the expected dimensions, a *SizeError is
// returned.
func GridFromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	if b.Dx() != LUTSize*LUTSize || b.Dy() != LUTSize {
		return nil, &SizeError{
			Width:      b.Dx(),
			Height:     b.Dy(),
			WantWidth:  LUTSize * LUTSize,
			WantHeight: LUTSize,
		}
	}

	px := Pixels(img)
	w := b.Dx()
	g := new(Grid)
	for i := range LUTSize {
		for j := range LUTSize {
			for k := range LUTSize {
				g[i][j][k] = px[j*w+k+i*LUTSize]
			}
		}
	}

	Logger().Debug("LUT decoded", "width", b.Dx(), "height", b.Dy())
	return g, nil
}

// SizeError indicates that an image used as a lookup table has the wrong
// dimensions.  A WantHeight of 0 means that any height is accepted.
type SizeError struct {
	Width, Height         int
	WantWidth, WantHeight int
}

func (e *SizeError) Error() string {
	if e.WantHeight == 0 {
		return fmt.Sprintf("cvd: lookup table image is %d pixels wide, want %d",
			e.Width, e.WantWidth)
	}
	return fmt.Sprintf("cvd: lookup table image is %dx%d, want %dx%d",
		e.Width, e.Height, e.WantWidth, e.WantHeight)
}
