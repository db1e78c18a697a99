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

// daltonBasis holds the LMS conversion used for daltonisation.  The values
// follow Viénot et al., "Digital Video Colourmaps for Checking the
// Legibility of Displays by Dichromats".  Unlike lmsFromRGB, the LMS
// responses are weighted (red maps to roughly (17.9, 3.5, 0.03)), so the
// two bases must never be combined.
type daltonBasis struct {
	toLMS Mat3
	toRGB Mat3

	// simulate[d] is the full-strength dichromat projection for d in
	// this basis.
	simulate [3]Mat3

	// errToDelta[d] routes the RGB error of d into the channels a
	// dichromat of type d can still see.  The values are from Fidaner,
	// Lin and Ozguven, "Analysis of Color Blindness".
	errToDelta [3]Mat3
}

var vienot = &daltonBasis{
	toLMS: Mat3{
		{17.8824, 43.5161, 4.11935},
		{3.45565, 27.1554, 3.86714},
		{0.0299566, 0.184309, 1.46709},
	},
	toRGB: Mat3{
		{0.0809444479, -0.130504409, 0.116721066},
		{-0.0102485335, 0.0540193266, -0.113614708},
		{-0.000365296938, -0.00412161469, 0.693511405},
	},
	simulate: [3]Mat3{
		Protan: {
			{0, 2.02344, -2.52581},
			{0, 1, 0},
			{0, 0, 1},
		},
		Deutan: {
			{1, 0, 0},
			{0.494207, 0, 1.24827},
			{0, 0, 1},
		},
		Tritan: {
			{1, 0, 0},
			{0, 1, 0},
			{-0.395913, 0.801109, 0},
		},
	},
	errToDelta: [3]Mat3{
		Protan: {
			{0, 0, 0},
			{0.7, 1, 0},
			{0.7, 0, 1},
		},
		Deutan: {
			{1, 0.7, 0},
			{0, 0, 0},
			{0, 0.7, 1},
		},
		Tritan: {
			{1, 0, 0.7},
			{0, 1, 0.7},
			{0, 0, 0},
		},
	},
}

func (b *daltonBasis) simulateRGB(rgb Vec3, d Deficiency) Vec3 {
	lms := b.toLMS.MulVec(rgb)
	lms = b.simulate[d].MulVec(lms)
	return b.toRGB.MulVec(lms)
}

// Daltonise enhances the linear RGB colour rgb for a dichromat of type d,
// using the method of Fidaner et al.: the difference between rgb and its
// simulated appearance is redistributed into the channels which remain
// visible.
//
// A strength of 0 returns rgb unchanged.  The result is not clamped and may
// lie outside [0, 1]; use [ClampUnit] before feeding it into another stage.
func Daltonise(rgb Vec3, d Deficiency, strength float64) Vec3 {
	sim := vienot.simulateRGB(rgb, d)
	delta := vienot.errToDelta[d].MulVec(Scale(strength, Sub(rgb, sim)))
	return Add(rgb, delta)
}
