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
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestGridImageLayout(t *testing.T) {
	g := new(Grid)
	g[3][5][7] = color.NRGBA{R: 1, G: 2, B: 3, A: 255}

	img := g.Image()
	if b := img.Bounds(); b.Dx() != LUTSize*LUTSize || b.Dy() != LUTSize {
		t.Fatalf("image size = %dx%d", b.Dx(), b.Dy())
	}
	if got := img.NRGBAAt(7+3*LUTSize, 5); got != g[3][5][7] {
		t.Errorf("pixel (%d, 5) = %v, want %v", 7+3*LUTSize, got, g[3][5][7])
	}
}

func TestGridImageRoundTrip(t *testing.T) {
	g := Build(func(rgb Vec3) Vec3 { return Simulate(rgb, Tritan, 0.8) }, nil)

	// store as PNG, as the command line tool does
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, g.Image()); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}

	g2, err := GridFromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if *g2 != *g {
		t.Error("grid changed in PNG round trip")
	}
}

func TestGridFromImageOffset(t *testing.T) {
	// sub-images keep their original coordinates
	g := IdentityGrid()
	big := image.NewNRGBA(image.Rect(0, 0, LUTSize*LUTSize+10, LUTSize+10))
	r := image.Rect(10, 10, LUTSize*LUTSize+10, LUTSize+10)
	src := g.Image()
	for y := range LUTSize {
		for x := range LUTSize * LUTSize {
			big.SetNRGBA(x+10, y+10, src.NRGBAAt(x, y))
		}
	}

	g2, err := GridFromImage(big.SubImage(r))
	if err != nil {
		t.Fatal(err)
	}
	if *g2 != *g {
		t.Error("wrong grid read from sub-image")
	}
}

func TestGridFromImageSize(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 512, 512))
	_, err := GridFromImage(img)

	var sizeErr *SizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected *SizeError, got %v", err)
	}
	if sizeErr.Width != 512 || sizeErr.WantWidth != LUTSize*LUTSize || sizeErr.WantHeight != LUTSize {
		t.Errorf("unexpected error contents: %+v", sizeErr)
	}
}
