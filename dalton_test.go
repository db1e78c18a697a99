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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDaltoniseZeroStrength(t *testing.T) {
	for _, d := range Deficiencies {
		for _, c := range testColours {
			if got := Daltonise(c, d, 0); got != c {
				t.Errorf("Daltonise(%v, %s, 0) = %v", c, d, got)
			}
		}
	}
}

func TestDaltoniseKeepsLostChannel(t *testing.T) {
	// the error is routed only into the channels the dichromat can see
	for _, d := range Deficiencies {
		lost := d.Cone()
		for _, c := range testColours {
			got := Daltonise(c, d, 1)
			if got[lost] != c[lost] {
				t.Errorf("Daltonise(%v, %s, 1)[%d] = %g, want %g",
					c, d, lost, got[lost], c[lost])
			}
		}
	}
}

func TestDaltoniseDelta(t *testing.T) {
	c := Vec3{0.8, 0.2, 0.1}
	for _, d := range Deficiencies {
		sim := vienot.simulateRGB(c, d)
		e := Scale(0.6, Sub(c, sim))
		want := Add(c, vienot.errToDelta[d].MulVec(e))
		got := Daltonise(c, d, 0.6)
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("Daltonise(%v, %s, 0.6) (-want +got):\n%s", c, d, diff)
		}
	}

	// saturated red is visibly changed for a protanope
	got := Daltonise(Vec3{1, 0, 0}, Protan, 1)
	if got == (Vec3{1, 0, 0}) {
		t.Error("daltonising red for a protanope had no effect")
	}
}
