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
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Pixels returns the pixels of img in row-major order, as non-premultiplied
// 8-bit colours.  Images of other types are converted first.
func Pixels(img image.Image) []color.NRGBA {
	b := img.Bounds()
	n, ok := img.(*image.NRGBA)
	if !ok {
		n = image.NewNRGBA(b)
		draw.Draw(n, b, img, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	px := make([]color.NRGBA, w*h)
	for y := range h {
		row := n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := range w {
			px[y*w+x] = color.NRGBA{R: row[4*x], G: row[4*x+1], B: row[4*x+2], A: row[4*x+3]}
		}
	}
	return px
}

// NewImage returns an image with bounds r holding the row-major pixels px.
func NewImage(r image.Rectangle, px []color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(r)
	w := r.Dx()
	for i, c := range px {
		off := img.PixOffset(r.Min.X+i%w, r.Min.Y+i/w)
		img.Pix[off+0] = c.R
		img.Pix[off+1] = c.G
		img.Pix[off+2] = c.B
		img.Pix[off+3] = c.A
	}
	return img
}
