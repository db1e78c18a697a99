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

var testColours = []Vec3{
	{0, 0, 0},
	{1, 1, 1},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{0.5, 0.5, 0.5},
	{0.8, 0.2, 0.1},
	{0.1, 0.6, 0.3},
	{0.25, 0.3, 0.9},
}

func TestSimulateZeroStrength(t *testing.T) {
	for _, d := range Deficiencies {
		for _, c := range testColours {
			got := Simulate(c, d, 0)
			if diff := cmp.Diff(c, got, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
				t.Errorf("Simulate(%v, %s, 0) (-want +got):\n%s", c, d, diff)
			}
		}
	}
}

func TestSimulateFullStrength(t *testing.T) {
	models := []struct {
		d    Deficiency
		proj *Mat3
	}{
		{Protan, &lmsProtanope},
		{Deutan, &lmsDeuteranope},
		{Tritan, &lmsTritanope},
	}

	for _, m := range models {
		for _, c := range testColours {
			want := rgbFromLMS.MulVec(m.proj.MulVec(lmsFromRGB.MulVec(c)))
			got := Simulate(c, m.d, 1)
			if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Simulate(%v, %s, 1) (-want +got):\n%s", c, m.d, diff)
			}
		}
	}
}

func TestSimulatePartial(t *testing.T) {
	// the affected cone moves linearly with the strength
	c := Vec3{0.8, 0.2, 0.1}
	for _, d := range Deficiencies {
		ch := d.Cone()
		org := RGBToLMS(c)[ch]
		full := RGBToLMS(Simulate(c, d, 1))[ch]
		half := RGBToLMS(Simulate(c, d, 0.5))[ch]
		if diff := cmp.Diff((org+full)/2, half, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
			t.Errorf("%s: half strength (-want +got):\n%s", d, diff)
		}
	}
}

func TestSimulationError(t *testing.T) {
	for _, d := range Deficiencies {
		for _, c := range testColours {
			sum := Add(Simulate(c, d, 0.7), SimulationError(c, d, 0.7))
			if diff := cmp.Diff(c, sum, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("simulated + error != original (-want +got):\n%s", diff)
			}
		}
	}
}

func TestSwapLMS(t *testing.T) {
	for _, d := range Deficiencies {
		for _, c := range testColours {
			got := SwapLMS(SwapLMS(c, d), d)
			if diff := cmp.Diff(c, got, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
				t.Errorf("%s: swapping twice (-want +got):\n%s", d, diff)
			}
		}
	}

	c := Vec3{0.8, 0.2, 0.1}
	lms := RGBToLMS(c)
	swapped := RGBToLMS(SwapLMS(c, Tritan))
	want := Vec3{lms[2], lms[1], lms[0]}
	if diff := cmp.Diff(want, swapped, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Errorf("tritan swap (-want +got):\n%s", diff)
	}
}

func TestRemapToS(t *testing.T) {
	c := Vec3{0.8, 0.2, 0.1}
	if got := RemapToS(c, Tritan); got != c {
		t.Errorf("RemapToS(%v, Tritan) = %v, want unchanged", c, got)
	}

	projections := map[Deficiency]*Mat3{
		Protan: &lmsProtanope,
		Deutan: &lmsDeuteranope,
	}
	for d, proj := range projections {
		lms := RGBToLMS(c)
		sim := proj.MulVec(lms)
		got := RGBToLMS(RemapToS(c, d))

		ch := d.Cone()
		want := sim
		want[2] += 10 * (lms[ch] - sim[ch])
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
			t.Errorf("RemapToS(%v, %s) (-want +got):\n%s", c, d, diff)
		}
	}
}

func TestParseDeficiency(t *testing.T) {
	tests := []struct {
		in   string
		want Deficiency
	}{
		{"p", Protan},
		{"L", Protan},
		{"deuteranope", Deutan},
		{"m", Deutan},
		{"Tritan", Tritan},
		{"s", Tritan},
	}
	for _, tt := range tests {
		got, err := ParseDeficiency(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseDeficiency(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseDeficiency("x"); err == nil {
		t.Error("ParseDeficiency(\"x\") succeeded")
	}
}
