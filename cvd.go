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

// Package cvd models, simulates and compensates for dichromatic colour vision.
//
// Colours are converted from 8-bit encoded pixels to linear RGB, and from
// there into the LMS colour space, which models the responses of the long,
// medium and short wavelength cones of the human eye.  A dichromat lacks one
// of these cone types; the [Deficiency] type selects which one.
//
// # Colour Transformations
//
// The functions [Simulate], [Daltonise] and [Correct] operate on linear RGB
// values.  Use [Decode] and [Encode] to convert to and from 8-bit pixels:
//
//	rgb := cvd.Decode(color.NRGBA{R: 200, G: 40, B: 40, A: 255})
//	sim := cvd.Simulate(rgb, cvd.Protan, 1)
//	pix := cvd.Encode(sim)
//
// # Lookup Tables
//
// Evaluating a transform for every pixel of a large image is expensive.
// [Build] samples an arbitrary transform on a 32×32×32 grid once; the
// resulting [Grid] is then applied to pixels using [Trilinear] or [Nearest]:
//
//	grid := cvd.Build(func(c cvd.Vec3) cvd.Vec3 {
//	    return cvd.Correct(c, cvd.Deutan, 0.8)
//	}, nil)
//	cvd.Trilinear{Grid: grid, Extrapolate: true}.Apply(dst, src)
//
// Grids can be stored as images using [Grid.Image] and read back using
// [GridFromImage].
package cvd

import (
	"errors"
	"fmt"
	"strings"
)

// Deficiency identifies the missing cone response of a dichromat.
type Deficiency int

// The three forms of dichromacy.
const (
	Protan Deficiency = iota // long wavelength (L) cones missing, reds appear darker
	Deutan                   // medium wavelength (M) cones missing
	Tritan                   // short wavelength (S) cones missing
)

func (d Deficiency) String() string {
	switch d {
	case Protan:
		return "protanope"
	case Deutan:
		return "deuteranope"
	case Tritan:
		return "tritanope"
	default:
		return fmt.Sprintf("Deficiency(%d)", int(d))
	}
}

// Cone returns the index of the affected channel in an LMS vector.
func (d Deficiency) Cone() int {
	return int(d)
}

func (d Deficiency) valid() bool {
	return d >= Protan && d <= Tritan
}

// Deficiencies lists all forms of dichromacy, in channel order.
var Deficiencies = []Deficiency{Protan, Deutan, Tritan}

// ParseDeficiency converts a name like "protan", "deuteranope" or a
// single letter ("p", "d", "t" or the cone letters "l", "m", "s")
// into a Deficiency.
func ParseDeficiency(s string) (Deficiency, error) {
	switch strings.ToLower(s) {
	case "p", "l", "protan", "protanope", "protanopia":
		return Protan, nil
	case "d", "m", "deutan", "deuteranope", "deuteranopia":
		return Deutan, nil
	case "t", "s", "tritan", "tritanope", "tritanopia":
		return Tritan, nil
	}
	return 0, fmt.Errorf("cvd: unknown deficiency %q", s)
}

var (
	errStrength   = errors.New("cvd: strength must be between 0 and 1")
	errDeficiency = errors.New("cvd: invalid deficiency")
	errOperation  = errors.New("cvd: unknown operation")
)
