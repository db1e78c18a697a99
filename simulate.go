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

// Full-strength dichromat projections in LMS space.  Each matrix replaces
// the affected cone response by a combination of the two remaining ones and
// leaves the other rows unchanged.
var (
	lmsProtanope = Mat3{
		{0, 1.05118294, -0.05116099},
		{0, 1, 0},
		{0, 0, 1},
	}
	lmsDeuteranope = Mat3{
		{1, 0, 0},
		{0.9513092, 0, 0.04866992},
		{0, 0, 1},
	}
	lmsTritanope = Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{-0.86744736, 1.86727089, 0},
	}
)

// lmsSimulate collects the replacement rows of the three projections,
// so that row i predicts cone i from the other two.
var lmsSimulate = Mat3{
	lmsProtanope[0],
	lmsDeuteranope[1],
	lmsTritanope[2],
}

// Simulate returns the colour a dichromat of type d perceives when shown the
// linear RGB colour rgb.
//
// The strength interpolates between normal vision (0) and complete loss of
// the affected cone type (1); values in between model anomalous
// trichromacy, e.g. protanomaly rather than protanopia.
func Simulate(rgb Vec3, d Deficiency, strength float64) Vec3 {
	lms := RGBToLMS(rgb)

	ch := d.Cone()
	sim := Dot(lmsSimulate[ch], lms)
	lms[ch] += strength * (sim - lms[ch])

	return LMSToRGB(lms)
}

// SimulationError returns the difference between rgb and its simulated
// appearance, i.e. the information a dichromat of type d loses.
func SimulationError(rgb Vec3, d Deficiency, strength float64) Vec3 {
	return Sub(rgb, Simulate(rgb, d, strength))
}

// SwapLMS exchanges two cone responses of rgb: L and M for [Protan],
// M and S for [Deutan], S and L for [Tritan].
// This is useful for turning test images for one deficiency into test
// images for another.
func SwapLMS(rgb Vec3, d Deficiency) Vec3 {
	lms := RGBToLMS(rgb)

	i := d.Cone()
	j := (i + 1) % 3
	lms[i], lms[j] = lms[j], lms[i]

	return LMSToRGB(lms)
}

// RemapToS converts a colour intended to test for protanopia (d == Protan)
// or deuteranopia (d == Deutan) into one testing for tritanopia: the
// simulated colour is used, with the lost L or M signal amplified into the
// S channel.
func RemapToS(rgb Vec3, d Deficiency) Vec3 {
	var proj *Mat3
	switch d {
	case Protan:
		proj = &lmsProtanope
	case Deutan:
		proj = &lmsDeuteranope
	default:
		return rgb
	}

	lms := RGBToLMS(rgb)
	sim := proj.MulVec(lms)

	ch := d.Cone()
	sim[2] += remapGain * (lms[ch] - sim[ch])

	return LMSToRGB(sim)
}

const remapGain = 10
