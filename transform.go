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

	"github.com/anthonynsimon/bild/parallel"
)

// Func is a colour transformation on linear RGB values.
// A Func used with [Build] or [TransformPixels] is called from several
// goroutines at once and must not modify shared state.
type Func func(rgb Vec3) Vec3

// Operation selects one of the colour transformations provided by this
// package.
type Operation int

// The supported operations.
const (
	OpIdentity           Operation = iota // leave colours unchanged
	OpSimulate                            // see [Simulate]
	OpError                               // see [SimulationError]
	OpDaltonise                           // see [Daltonise]
	OpCorrect                             // see [Correct]
	OpSimulateDaltonised                  // daltonise, clamp, then simulate
	OpSimulateCorrected                   // correct, clamp, then simulate
	OpSwapLMS                             // see [SwapLMS]
	OpRemapToS                            // see [RemapToS]
)

func (op Operation) String() string {
	switch op {
	case OpIdentity:
		return "identity"
	case OpSimulate:
		return "simulate"
	case OpError:
		return "error"
	case OpDaltonise:
		return "daltonise"
	case OpCorrect:
		return "correct"
	case OpSimulateDaltonised:
		return "simulate_daltonised"
	case OpSimulateCorrected:
		return "simulate_corrected"
	case OpSwapLMS:
		return "swap"
	case OpRemapToS:
		return "remap"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Transform is one configured colour operation.
//
// Create a Transform using [NewTransform], then use [Transform.Apply] on
// linear RGB values, or pass the method value t.Apply to [Build] or
// [TransformPixels].  A Transform is immutable and safe for concurrent use.
type Transform struct {
	op       Operation
	d        Deficiency
	strength float64
}

// NewTransform creates a transform which performs the operation op for a
// dichromat of type d.  The strength must be in [0, 1]; it is ignored by
// OpIdentity, OpSwapLMS and OpRemapToS.
//
// OpRemapToS is only defined for [Protan] and [Deutan].
func NewTransform(op Operation, d Deficiency, strength float64) (*Transform, error) {
	if op < OpIdentity || op > OpRemapToS {
		return nil, errOperation
	}
	if !d.valid() {
		return nil, errDeficiency
	}
	if op == OpRemapToS && d == Tritan {
		return nil, fmt.Errorf("cvd: cannot remap %s to S", d)
	}
	if !(strength >= 0 && strength <= 1) {
		return nil, errStrength
	}

	t := &Transform{
		op:       op,
		d:        d,
		strength: strength,
	}
	return t, nil
}

// Operation returns the operation performed by t.
func (t *Transform) Operation() Operation {
	return t.op
}

// Deficiency returns the deficiency t was created for.
func (t *Transform) Deficiency() Deficiency {
	return t.d
}

// Apply transforms a linear RGB colour.
func (t *Transform) Apply(rgb Vec3) Vec3 {
	switch t.op {
	case OpSimulate:
		return Simulate(rgb, t.d, t.strength)
	case OpError:
		return SimulationError(rgb, t.d, t.strength)
	case OpDaltonise:
		return Daltonise(rgb, t.d, t.strength)
	case OpCorrect:
		return Correct(rgb, t.d, t.strength)
	case OpSimulateDaltonised:
		return Simulate(ClampUnit(Daltonise(rgb, t.d, t.strength)), t.d, t.strength)
	case OpSimulateCorrected:
		return Simulate(ClampUnit(Correct(rgb, t.d, t.strength)), t.d, t.strength)
	case OpSwapLMS:
		return SwapLMS(rgb, t.d)
	case OpRemapToS:
		return RemapToS(rgb, t.d)
	}
	return rgb
}

// Chain is a sequence of transforms, applied in order.
type Chain []*Transform

// Apply runs rgb through all transforms in c.
func (c Chain) Apply(rgb Vec3) Vec3 {
	for _, t := range c {
		rgb = t.Apply(rgb)
	}
	return rgb
}

// TransformPixels applies f directly to every pixel of src and stores the
// result in dst, without building a lookup table.  This is exact, but
// evaluates f once per pixel.  The output alpha is 255.
//
// If codec is nil, [Gamma22] is used.  dst and src must have the same
// length; they may be the same slice.
func TransformPixels(f Func, codec *Codec, dst, src []color.NRGBA) {
	checkLengths(dst, src)
	parallel.Line(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = codec.Encode(f(codec.Decode(src[i])))
		}
	})
}
