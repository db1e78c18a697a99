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

// Basis change between linear RGB and LMS, after
// https://ixora.io/projects/colorblindness/color-blindness-simulation-research/
var (
	lmsFromRGB = Mat3{
		{0.31399022, 0.63951294, 0.04649755},
		{0.15537241, 0.75789446, 0.08670142},
		{0.01775239, 0.10944209, 0.87256922},
	}
	rgbFromLMS = Mat3{
		{5.47221206, -4.6419601, 0.16963708},
		{-1.1252419, 2.29317094, -0.1678952},
		{0.02980165, -0.19318073, 1.16364789},
	}
)

// RGBToLMS converts a linear RGB colour to LMS cone responses.
// The input must not be gamma encoded.
func RGBToLMS(rgb Vec3) Vec3 {
	return lmsFromRGB.MulVec(rgb)
}

// LMSToRGB converts LMS cone responses back to linear RGB.
func LMSToRGB(lms Vec3) Vec3 {
	return rgbFromLMS.MulVec(lms)
}

// A Codec converts between 8-bit encoded pixels and linear RGB.
//
// Two scalings are provided.  Decode and Encode divide and multiply by 255
// and round to the nearest value; these are used for image data.
// DecodeGrid and EncodeGrid use 256 and truncation, so that the value
// k·s + s/2 addresses the centre of the k-th bucket of width s.  These are
// reserved for sampling LUT grid cells and must not be mixed with the other
// pair inside one pipeline.
type Codec struct {
	Curve *Curve
}

var (
	// Gamma22 is the plain power law with exponent 2.2 used by the model.
	Gamma22 = &Codec{Curve: &Curve{Gamma: 2.2}}

	// SRGB uses the piecewise transfer curve from IEC 61966-2-1.
	SRGB = &Codec{Curve: &Curve{
		Gamma: 2.4,
		A:     1 / 1.055,
		B:     0.055 / 1.055,
		C:     1 / 12.92,
		D:     0.04045,
	}}
)

func (c *Codec) curve() *Curve {
	if c == nil || c.Curve == nil {
		return Gamma22.Curve
	}
	return c.Curve
}

// Decode converts an encoded pixel to linear RGB.  Alpha is ignored.
func (c *Codec) Decode(p color.NRGBA) Vec3 {
	tc := c.curve()
	return Vec3{
		tc.Evaluate(float64(p.R) / 255),
		tc.Evaluate(float64(p.G) / 255),
		tc.Evaluate(float64(p.B) / 255),
	}
}

// Encode converts linear RGB to an opaque encoded pixel.
// Out-of-gamut components are clamped.
func (c *Codec) Encode(rgb Vec3) color.NRGBA {
	tc := c.curve()
	return color.NRGBA{
		R: toU8(tc.Invert(rgb[0])),
		G: toU8(tc.Invert(rgb[1])),
		B: toU8(tc.Invert(rgb[2])),
		A: 255,
	}
}

// DecodeGrid is the 256-scale variant of Decode, used for LUT grid sampling.
func (c *Codec) DecodeGrid(p color.NRGBA) Vec3 {
	tc := c.curve()
	return Vec3{
		tc.Evaluate(float64(p.R) / 256),
		tc.Evaluate(float64(p.G) / 256),
		tc.Evaluate(float64(p.B) / 256),
	}
}

// EncodeGrid is the 256-scale variant of Encode, used for LUT grid sampling.
func (c *Codec) EncodeGrid(rgb Vec3) color.NRGBA {
	tc := c.curve()
	return color.NRGBA{
		R: toU8Grid(tc.Invert(rgb[0])),
		G: toU8Grid(tc.Invert(rgb[1])),
		B: toU8Grid(tc.Invert(rgb[2])),
		A: 255,
	}
}

// Decode converts an encoded pixel to linear RGB using [Gamma22].
func Decode(p color.NRGBA) Vec3 { return Gamma22.Decode(p) }

// Encode converts linear RGB to an encoded pixel using [Gamma22].
func Encode(rgb Vec3) color.NRGBA { return Gamma22.Encode(rgb) }

// DecodeGrid converts a grid sample position to linear RGB using [Gamma22].
func DecodeGrid(p color.NRGBA) Vec3 { return Gamma22.DecodeGrid(p) }

// EncodeGrid converts linear RGB to a grid cell value using [Gamma22].
func EncodeGrid(rgb Vec3) color.NRGBA { return Gamma22.EncodeGrid(rgb) }

func toU8(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

// gridEpsilon keeps exact bucket centres from truncating to the bucket
// below after a decode/encode round trip.
const gridEpsilon = 1e-9

func toU8Grid(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(clamp(int(f*256+gridEpsilon), 0, 255))
}
