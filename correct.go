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

// correctRecip is the transpose of the element-wise reciprocal of
// lmsSimulate, with the zero entries of lmsSimulate left at zero.  Column d
// says how strongly the remaining cones of a type-d dichromat respond to
// changes in the affected cone.
var correctRecip = reciprocalTranspose(&lmsSimulate)

// correctTuning scales the redistributed error per deficiency.
var correctTuning = Vec3{-0.25, -0.3, -0.07}

// brightenGain is the amplification of the affected cone used by the
// brightening strategy of Correct.
const brightenGain = 2

// Correct adjusts the linear RGB colour rgb so that, after a dichromat of
// type d has lost part of it, more contrast remains than for rgb itself.
//
// Two strategies are blended.  Redistribution, weighted by strength²,
// spreads the lost signal into the other cones and so shifts the hue.
// Brightening, weighted by 1-strength, amplifies the affected cone.  The
// affected cone only ever receives the brightening term.
//
// A strength of 0 leaves the colour unchanged, a strength of 1 uses
// redistribution only.
func Correct(rgb Vec3, d Deficiency, strength float64) Vec3 {
	lms := RGBToLMS(rgb)

	ch := d.Cone()
	orgElt := lms[ch]
	simElt := Dot(lmsSimulate[ch], lms)
	e := strength * (orgElt - simElt)

	mc := strength * strength
	ms := 1 - strength

	corr := Scale(mc*correctTuning[ch], correctRecip.Col(ch))
	corr[ch] = ms * brightenGain

	return LMSToRGB(Add(lms, Scale(e, corr)))
}

func reciprocalTranspose(m *Mat3) Mat3 {
	var res Mat3
	for i := range 3 {
		for j := range 3 {
			if m[i][j] != 0 {
				res[j][i] = 1 / m[i][j]
			}
		}
	}
	return res
}
