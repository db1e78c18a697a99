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

	"github.com/anthonynsimon/bild/parallel"
)

// Ramp maps a single 8-bit value to a colour, e.g. for false-colour
// visualisation.
type Ramp [256]color.NRGBA

// Luminance selects the Rec. 709 / D65 luminance of a pixel, instead of
// one of its channels, as the index into a [Ramp].
const Luminance = -1

// D65 luminance weights of linear red, green and blue.
var luminanceWeights = Vec3{0.2126, 0.7152, 0.0722}

// MonoRamp is a [Sampler] which replaces every pixel by a ramp entry.
//
// Channel selects the index: 0 to 3 use the red, green, blue or alpha
// value of the pixel directly, any other value (normally [Luminance]) uses
// the luminance of the decoded colour, encoded back to 8 bits.  The codec
// is used for the luminance computation; if it is nil, [Gamma22] is used.
// No interpolation is performed.
type MonoRamp struct {
	Ramp    *Ramp
	Channel int
	Codec   *Codec
}

// Apply implements the [Sampler] interface.
func (m MonoRamp) Apply(dst, src []color.NRGBA) {
	checkLengths(dst, src)
	parallel.Line(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = m.Ramp[m.index(src[i])]
		}
	})
}

func (m MonoRamp) index(p color.NRGBA) uint8 {
	switch m.Channel {
	case 0:
		return p.R
	case 1:
		return p.G
	case 2:
		return p.B
	case 3:
		return p.A
	}
	y := Dot(luminanceWeights, m.Codec.Decode(p))
	return toU8(m.Codec.curve().Invert(y))
}

// RampFromImage reads a ramp from the first row of img, which must be 256
// pixels wide.  Otherwise a *SizeError is returned.
func RampFromImage(img image.Image) (*Ramp, error) {
	b := img.Bounds()
	if b.Dx() != len(Ramp{}) || b.Dy() < 1 {
		return nil, &SizeError{Width: b.Dx(), Height: b.Dy(), WantWidth: len(Ramp{})}
	}

	px := Pixels(img)
	r := new(Ramp)
	copy(r[:], px[:len(r)])
	return r, nil
}

// Image renders the ramp as a strip of height h, with index 0 on the left.
func (r *Ramp) Image(h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(r), h))
	for y := range h {
		for x, c := range r {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
