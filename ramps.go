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
	"fmt"
	"image/color"
	"slices"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/maps"
)

// Anchor colours of the matplotlib colour maps, at ten evenly spaced
// positions.  Viridis and cividis remain legible for dichromats.
var rampAnchors = map[string][]string{
	"cividis": {"#00204d", "#00336f", "#39486b", "#575c6d", "#707173",
		"#8a8779", "#a69d75", "#c4b56c", "#e4cf5b", "#ffea46"},
	"viridis": {"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"},
	"magma": {"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
		"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"},
	"inferno": {"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60",
		"#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4"},
	"plasma": {"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
		"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"},
}

var builtinRamps = func() map[string]func() *Ramp {
	res := make(map[string]func() *Ramp, len(rampAnchors))
	for name, anchors := range rampAnchors {
		res[name] = sync.OnceValue(func() *Ramp { return blendRamp(anchors) })
	}
	return res
}()

// RampNames returns the names of the built-in ramps, in alphabetical order.
func RampNames() []string {
	names := maps.Keys(builtinRamps)
	slices.Sort(names)
	return names
}

// RampByName returns a copy of the built-in ramp with the given name.
func RampByName(name string) (*Ramp, error) {
	f, ok := builtinRamps[name]
	if !ok {
		return nil, fmt.Errorf("cvd: unknown ramp %q", name)
	}
	r := *f()
	return &r, nil
}

// blendRamp interpolates between evenly spaced anchor colours in CIE L*a*b*.
func blendRamp(anchors []string) *Ramp {
	cols := make([]colorful.Color, len(anchors))
	for i, s := range anchors {
		c, err := colorful.Hex(s)
		if err != nil {
			panic(err)
		}
		cols[i] = c
	}

	r := new(Ramp)
	n := len(cols) - 1
	for i := range r {
		t := float64(i) * float64(n) / float64(len(r)-1)
		seg := min(int(t), n-1)
		c := cols[seg].BlendLab(cols[seg+1], t-float64(seg)).Clamped()
		red, green, blue := c.RGB255()
		r[i] = color.NRGBA{R: red, G: green, B: blue, A: 255}
	}
	return r
}
