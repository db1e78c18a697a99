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

package main

import (
	"bytes"
	"flag"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/cvd"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := run(args, stdout, stderr)
	return stdout.String(), err
}

func imageSize(t *testing.T, fname string) image.Point {
	t.Helper()
	img, err := openImage(fname)
	require.NoError(t, err)
	return img.Bounds().Size()
}

func TestEmitLUTs(t *testing.T) {
	dir := t.TempDir()
	out, err := runCmd(t, "-o", dir, "-ops", "sx", "-cube")
	require.NoError(t, err)

	for _, d := range []string{"protanope", "deuteranope", "tritanope"} {
		for _, op := range []string{"simulate", "daltonise"} {
			fname := filepath.Join(dir, d+"_"+op+"_lut.png")
			require.Equal(t, image.Pt(cvd.LUTSize*cvd.LUTSize, cvd.LUTSize), imageSize(t, fname))
			require.FileExists(t, filepath.Join(dir, d+"_"+op+".cube"))
			require.Contains(t, out, fname)
		}
	}
}

func TestIdentityRoundTrip(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, "-o", dir, "-ops", "i")
	require.NoError(t, err)

	lutFile := filepath.Join(dir, "identity_lut.png")
	img, err := openImage(lutFile)
	require.NoError(t, err)
	grid, err := cvd.GridFromImage(img)
	require.NoError(t, err)
	require.Equal(t, *cvd.IdentityGrid(), *grid)

	// applying the identity LUT reproduces the input
	_, err = runCmd(t, "-o", dir, "-swatch", "-l", lutFile)
	require.NoError(t, err)
	out, err := openImage(filepath.Join(dir, "swatch_apply_lut.png"))
	require.NoError(t, err)
	require.Equal(t, cvd.Pixels(cvd.Swatch(256, 256)), cvd.Pixels(out))
}

func TestProcessImage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "photo.png")
	require.NoError(t, saveImage(cvd.Swatch(20, 10), in))

	for _, extra := range [][]string{nil, {"-n"}, {"-nearest"}, {"-noextrap", "-srgb"}} {
		args := append([]string{"-o", dir, "-f", in, "-type", "d", "-m", "0.5", "-ops", "yY"}, extra...)
		_, err := runCmd(t, args...)
		require.NoError(t, err, "args %v", args)

		for _, op := range []string{"correct", "simulate_corrected"} {
			fname := filepath.Join(dir, "photo_deuteranope_"+op+".png")
			require.Equal(t, image.Pt(20, 10), imageSize(t, fname))
		}
	}
}

func TestDirectMatchesLUT(t *testing.T) {
	dir := t.TempDir()
	lutDir := filepath.Join(dir, "lut")
	directDir := filepath.Join(dir, "direct")
	require.NoError(t, os.Mkdir(lutDir, 0o755))
	require.NoError(t, os.Mkdir(directDir, 0o755))

	_, err := runCmd(t, "-o", lutDir, "-swatch", "-type", "p", "-ops", "s")
	require.NoError(t, err)
	_, err = runCmd(t, "-o", directDir, "-swatch", "-type", "p", "-ops", "s", "-n")
	require.NoError(t, err)

	a, err := openImage(filepath.Join(lutDir, "swatch_protanope_simulate.png"))
	require.NoError(t, err)
	b, err := openImage(filepath.Join(directDir, "swatch_protanope_simulate.png"))
	require.NoError(t, err)

	pa, pb := cvd.Pixels(a), cvd.Pixels(b)
	require.Len(t, pb, len(pa))
	var total int
	for i := range pa {
		total += absDiff(pa[i].R, pb[i].R) + absDiff(pa[i].G, pb[i].G) + absDiff(pa[i].B, pb[i].B)
	}
	require.Less(t, float64(total)/float64(3*len(pa)), 4.0)
}

func TestOutputFormats(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"bmp", "tiff", "gif", "jpeg"} {
		_, err := runCmd(t, "-o", dir, "-swatch", "-type", "t", "-ops", "e", "-format", format)
		require.NoError(t, err)

		f, err := parseFormat(format)
		require.NoError(t, err)
		fname := filepath.Join(dir, "swatch_tritanope_error"+extensions[f])
		require.Equal(t, image.Pt(256, 256), imageSize(t, fname))
	}
}

func TestRamp(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, "-o", dir, "-c", "viridis")
	require.NoError(t, err)
	rampFile := filepath.Join(dir, "viridis_lut.png")
	require.Equal(t, image.Pt(256, 8), imageSize(t, rampFile))

	// a ramp can also be read from a file
	_, err = runCmd(t, "-o", dir, "-swatch", "-c", rampFile, "-channel", "0")
	require.NoError(t, err)
	require.Equal(t, image.Pt(256, 256), imageSize(t, filepath.Join(dir, "swatch_viridis_lut.png")))
}

func TestPreprocess(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, "-o", dir, "-swatch", "-swap", "l", "-remap", "m", "-ops", "i", "-n")
	require.NoError(t, err)

	out, err := openImage(filepath.Join(dir, "swatch_identity.png"))
	require.NoError(t, err)
	require.NotEqual(t, cvd.Pixels(cvd.Swatch(256, 256)), cvd.Pixels(out))
}

func TestBadLUT(t *testing.T) {
	dir := t.TempDir()
	lutFile := filepath.Join(dir, "small.png")
	require.NoError(t, saveImage(cvd.Swatch(32, 32), lutFile))

	_, err := runCmd(t, "-o", dir, "-swatch", "-l", lutFile)
	var sizeErr *cvd.SizeError
	require.ErrorAs(t, err, &sizeErr)
	require.Equal(t, 32, sizeErr.Width)
}

func TestArgumentErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"-ops", "q"},
		{"-ops", "s", "-type", "z"},
		{"-ops", "s", "-m", "1.5"},
		{"-ops", "s", "-f", "a.png", "-swatch"},
		{"-l", "lut.png"},
		{"-swatch", "-remap", "s", "-ops", "s"},
		{"-swatch", "-ops", "s", "-format", "xcf"},
		{"-ops", "s", "extra"},
		{"-f", "does-not-exist.png", "-ops", "s"},
	}
	for _, args := range cases {
		_, err := runCmd(t, append([]string{"-o", t.TempDir()}, args...)...)
		require.Error(t, err, "args %v", args)
	}
}

func TestHelp(t *testing.T) {
	stderr := &bytes.Buffer{}
	err := run([]string{"-h"}, &bytes.Buffer{}, stderr)
	require.ErrorIs(t, err, flag.ErrHelp)
	require.True(t, strings.Contains(stderr.String(), "simulate_corrected") ||
		strings.Contains(stderr.String(), "correct, then simulate"))
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
