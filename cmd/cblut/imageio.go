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
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imageFormat is an image file format the command can write.
type imageFormat int

const (
	formatPNG imageFormat = iota
	formatJPEG
	formatGIF
	formatTIFF
	formatBMP
)

// extensions lists the canonical file name extension of each format.
var extensions = map[imageFormat]string{
	formatPNG:  ".png",
	formatJPEG: ".jpg",
	formatGIF:  ".gif",
	formatTIFF: ".tiff",
	formatBMP:  ".bmp",
}

// parseFormat converts a file name extension, with or without the leading
// dot, to an imageFormat.
func parseFormat(ext string) (imageFormat, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return formatPNG, nil
	case "jpg", "jpeg":
		return formatJPEG, nil
	case "gif":
		return formatGIF, nil
	case "tif", "tiff":
		return formatTIFF, nil
	case "bmp":
		return formatBMP, nil
	case "":
		return 0, errors.New("missing image format")
	}
	return 0, fmt.Errorf("unsupported image format %q", ext)
}

// openImage reads an image file.  PNG, JPEG, GIF, TIFF, BMP and WebP
// files are recognised by their content.
func openImage(fname string) (image.Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(bufio.NewReader(fd))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

// saveImage writes img to fname, using the format given by the file name
// extension.
func saveImage(img image.Image, fname string) (err error) {
	f, err := parseFormat(filepath.Ext(fname))
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, fd.Close())
	}()

	w := bufio.NewWriter(fd)
	switch f {
	case formatPNG:
		err = png.Encode(w, img)
	case formatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case formatGIF:
		err = gif.Encode(w, img, nil)
	case formatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case formatBMP:
		err = bmp.Encode(w, img)
	}
	if err != nil {
		return err
	}
	return w.Flush()
}
