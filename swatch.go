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

import "image"

// Swatch returns a w×h test image for protanope correction.  The L cone
// response increases from left to right, M increases from top to bottom
// and S decreases from top to bottom.
//
// L and M responses overlap strongly, and small differences between them
// already produce saturated reds or greens.  The ranges are therefore
// restricted so that all colours stay inside the RGB gamut.
func Swatch(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	base := Vec3{0.46, 0.45, 0.25}
	span := Vec3{0.08, 0.1, 0.5}
	for y := range h {
		for x := range w {
			l := (float64(x) + 0.5) / float64(w)
			m := (float64(y) + 0.5) / float64(h)
			lms := Vec3{
				base[0] + span[0]*l,
				base[1] + span[1]*m,
				base[2] + span[2]*(1-m),
			}
			img.SetNRGBA(x, y, Encode(LMSToRGB(Scale(0.75, lms))))
		}
	}
	return img
}
