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

// Cblut generates lookup tables which simulate or compensate for colour
// vision deficiencies, and applies them to images.
//
// Without an input image, one LUT image per operation and deficiency is
// written, e.g. "protanope_simulate_lut.png".  With an input image (-f or
// -swatch), the processed images are written instead, e.g.
// "photo_protanope_simulate.png".
//
// Example:
//
//	cblut -f image.png -type p -ops sxy
//
// writes the simulated, daltonised and corrected versions of image.png for
// protanopia.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/cvd"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cblut: %v\n", err)
		os.Exit(1)
	}
}

// opLetters maps the letters accepted by -ops to operations.
var opLetters = map[rune]cvd.Operation{
	's': cvd.OpSimulate,
	'e': cvd.OpError,
	'x': cvd.OpDaltonise,
	'X': cvd.OpSimulateDaltonised,
	'y': cvd.OpCorrect,
	'Y': cvd.OpSimulateCorrected,
	'i': cvd.OpIdentity,
}

type options struct {
	input    string
	swatch   bool
	types    []cvd.Deficiency
	strength float64
	direct   bool
	nearest  bool
	noExtrap bool
	codec    *cvd.Codec
	ops      []cvd.Operation
	swap     string
	remap    string
	lut      string
	ramp     string
	channel  int
	cube     bool
	outDir   string
	format   imageFormat
	verbose  bool
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("cblut", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: cblut [options]\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "\nOperations (-ops), processed left to right:\n"+
			"  s  simulate\n"+
			"  e  error between original and simulated colour\n"+
			"  x  daltonise\n"+
			"  X  daltonise, then simulate\n"+
			"  y  correct\n"+
			"  Y  correct, then simulate\n"+
			"  i  identity\n")
	}

	input := fs.String("f", "", "process the image `file` instead of emitting LUTs")
	swatch := fs.Bool("swatch", false, "process a generated L/M/S test swatch")
	typ := fs.String("type", "a", "deficiency: p, d, t, or a for all three")
	strength := fs.Float64("m", 1, "strength of the operations, between 0 and 1")
	direct := fs.Bool("n", false, "transform the input directly instead of using a LUT")
	nearest := fs.Bool("nearest", false, "use nearest-neighbour LUT sampling")
	noExtrap := fs.Bool("noextrap", false, "do not extrapolate beyond the outermost LUT cells")
	srgb := fs.Bool("srgb", false, "use the sRGB transfer curve instead of gamma 2.2")
	ops := fs.String("ops", "", "operation `letters`, see below")
	swap := fs.String("swap", "", "swap the L/M, M/S or S/L channels of the input (l, m or s)")
	remap := fs.String("remap", "", "remap the L or M channel of the input to S (l or m)")
	lut := fs.String("l", "", "apply the LUT image `file` to the input")
	ramp := fs.String("c", "", "apply a colour ramp, given by `name` or image file ("+
		strings.Join(cvd.RampNames(), ", ")+")")
	channel := fs.Int("channel", cvd.Luminance, "channel 0-3 used to index the colour ramp, -1 for luminance")
	cube := fs.Bool("cube", false, "also write LUTs in .cube format")
	outDir := fs.String("o", ".", "output `directory`")
	format := fs.String("format", "png", "output format for processed images: png, jpeg, gif, tiff or bmp")
	verbose := fs.Bool("v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	opt := &options{
		input:    *input,
		swatch:   *swatch,
		strength: *strength,
		direct:   *direct,
		nearest:  *nearest,
		noExtrap: *noExtrap,
		codec:    cvd.Gamma22,
		swap:     *swap,
		remap:    *remap,
		lut:      *lut,
		ramp:     *ramp,
		channel:  *channel,
		cube:     *cube,
		outDir:   *outDir,
		verbose:  *verbose,
	}
	if *srgb {
		opt.codec = cvd.SRGB
	}

	if opt.input != "" && opt.swatch {
		return nil, errors.New("-f and -swatch cannot be combined")
	}
	if !(opt.strength >= 0 && opt.strength <= 1) {
		return nil, fmt.Errorf("strength %g out of range [0, 1]", opt.strength)
	}

	if *typ == "a" || *typ == "all" {
		opt.types = cvd.Deficiencies
	} else {
		d, err := cvd.ParseDeficiency(*typ)
		if err != nil {
			return nil, err
		}
		opt.types = []cvd.Deficiency{d}
	}

	for _, c := range *ops {
		op, ok := opLetters[c]
		if !ok {
			return nil, fmt.Errorf("unknown operation %q", c)
		}
		opt.ops = append(opt.ops, op)
	}

	f, err := parseFormat(*format)
	if err != nil {
		return nil, err
	}
	opt.format = f

	hasInput := opt.input != "" || opt.swatch
	if !hasInput && (opt.lut != "" || opt.swap != "" || opt.remap != "") {
		return nil, errors.New("-l, -swap and -remap require an input image")
	}
	if len(opt.ops) == 0 && opt.lut == "" && opt.ramp == "" {
		return nil, errors.New("nothing to do, use -ops, -l or -c")
	}

	return opt, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opt, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: level}))
	if opt.verbose {
		cvd.SetLogger(logger)
		defer cvd.SetLogger(nil)
	}

	g := &generator{options: opt, log: logger}

	src, err := g.loadSource()
	if err != nil {
		return err
	}

	if opt.lut != "" {
		if err := g.applyLUT(src); err != nil {
			return err
		}
	}
	if opt.ramp != "" {
		if err := g.applyRamp(src); err != nil {
			return err
		}
	}

	for _, op := range opt.ops {
		if op == cvd.OpIdentity {
			if err := g.emit(src, "identity", nil); err != nil {
				return err
			}
			continue
		}

		eg := &errgroup.Group{}
		for _, d := range opt.types {
			tr, err := cvd.NewTransform(op, d, opt.strength)
			if err != nil {
				return err
			}
			eg.Go(func() error {
				return g.emit(src, d.String()+"_"+op.String(), tr)
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
	}

	return nil
}

// source is the input image, as a flat pixel buffer.
type source struct {
	name   string
	bounds image.Rectangle
	px     []color.NRGBA
}

type generator struct {
	*options
	log *slog.Logger
}

// loadSource reads the input image and applies the -swap and -remap
// pre-processing steps.  If there is no input image, nil is returned.
func (g *generator) loadSource() (*source, error) {
	var img image.Image
	var name string
	switch {
	case g.swatch:
		img = cvd.Swatch(256, 256)
		name = "swatch"
	case g.input != "":
		var err error
		img, err = openImage(g.input)
		if err != nil {
			return nil, err
		}
		base := filepath.Base(g.input)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	default:
		return nil, nil
	}

	src := &source{
		name:   name,
		bounds: img.Bounds(),
		px:     cvd.Pixels(img),
	}

	var pre cvd.Chain
	if g.swap != "" {
		d, err := cvd.ParseDeficiency(g.swap)
		if err != nil {
			return nil, fmt.Errorf("-swap: %w", err)
		}
		tr, _ := cvd.NewTransform(cvd.OpSwapLMS, d, 1)
		pre = append(pre, tr)
	}
	if g.remap != "" {
		d, err := cvd.ParseDeficiency(g.remap)
		if err != nil {
			return nil, fmt.Errorf("-remap: %w", err)
		}
		tr, err := cvd.NewTransform(cvd.OpRemapToS, d, 1)
		if err != nil {
			return nil, fmt.Errorf("-remap: %w", err)
		}
		pre = append(pre, tr)
	}
	if len(pre) > 0 {
		cvd.TransformPixels(pre.Apply, g.codec, src.px, src.px)
	}

	g.log.Debug("input loaded", "name", name, "width", src.bounds.Dx(), "height", src.bounds.Dy())
	return src, nil
}

// emit writes either the LUT for tr, or the input image transformed by tr.
// A nil tr stands for the identity.
func (g *generator) emit(src *source, label string, tr *cvd.Transform) error {
	if src != nil && g.direct {
		f := func(rgb cvd.Vec3) cvd.Vec3 { return rgb }
		if tr != nil {
			f = tr.Apply
		}
		dst := make([]color.NRGBA, len(src.px))
		cvd.TransformPixels(f, g.codec, dst, src.px)
		return g.save(cvd.NewImage(src.bounds, dst), src.name+"_"+label+extensions[g.format])
	}

	var grid *cvd.Grid
	if tr == nil {
		grid = cvd.IdentityGrid()
	} else {
		grid = cvd.Build(tr.Apply, g.codec)
	}

	if src == nil {
		if err := g.save(grid.Image(), label+"_lut.png"); err != nil {
			return err
		}
		if g.cube {
			return g.saveCube(grid, label)
		}
		return nil
	}

	dst := make([]color.NRGBA, len(src.px))
	g.sampler(grid).Apply(dst, src.px)
	return g.save(cvd.NewImage(src.bounds, dst), src.name+"_"+label+extensions[g.format])
}

func (g *generator) sampler(grid *cvd.Grid) cvd.Sampler {
	if g.nearest {
		return cvd.Nearest{Grid: grid}
	}
	return cvd.Trilinear{Grid: grid, Extrapolate: !g.noExtrap}
}

// applyLUT applies the LUT image given by -l to the input.
func (g *generator) applyLUT(src *source) error {
	img, err := openImage(g.lut)
	if err != nil {
		return err
	}
	grid, err := cvd.GridFromImage(img)
	if err != nil {
		return fmt.Errorf("%s: %w", g.lut, err)
	}

	dst := make([]color.NRGBA, len(src.px))
	g.sampler(grid).Apply(dst, src.px)
	return g.save(cvd.NewImage(src.bounds, dst), src.name+"_apply_lut"+extensions[g.format])
}

// applyRamp applies the colour ramp given by -c to the input.  Without an
// input image, the ramp itself is written.
func (g *generator) applyRamp(src *source) error {
	ramp, name, err := g.loadRamp()
	if err != nil {
		return err
	}

	if src == nil {
		return g.save(ramp.Image(8), name+"_lut.png")
	}

	m := cvd.MonoRamp{Ramp: ramp, Channel: g.channel, Codec: g.codec}
	dst := make([]color.NRGBA, len(src.px))
	m.Apply(dst, src.px)
	return g.save(cvd.NewImage(src.bounds, dst), src.name+"_"+name+extensions[g.format])
}

func (g *generator) loadRamp() (*cvd.Ramp, string, error) {
	if ramp, err := cvd.RampByName(g.ramp); err == nil {
		return ramp, g.ramp, nil
	}

	img, err := openImage(g.ramp)
	if err != nil {
		return nil, "", err
	}
	ramp, err := cvd.RampFromImage(img)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", g.ramp, err)
	}
	base := filepath.Base(g.ramp)
	return ramp, strings.TrimSuffix(base, filepath.Ext(base)), nil
}

func (g *generator) save(img image.Image, fname string) error {
	fname = filepath.Join(g.outDir, fname)
	g.log.Info("saving", "file", fname)
	return saveImage(img, fname)
}

func (g *generator) saveCube(grid *cvd.Grid, label string) (err error) {
	fname := filepath.Join(g.outDir, label+".cube")
	g.log.Info("saving", "file", fname)

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, fd.Close())
	}()
	return grid.WriteCube(fd, label)
}
