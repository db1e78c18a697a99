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
	"bufio"
	"fmt"
	"io"
)

// WriteCube writes the grid in the ".cube" 3D LUT format understood by
// most video and photo editors.
//
// Grid cells sample the centres of their input buckets, so the domain
// written to the file runs from the first to the last cell centre rather
// than from 0 to 1.
func (g *Grid) WriteCube(w io.Writer, title string) error {
	bw := bufio.NewWriter(w)

	lo := float64(cellCentre(0)) / 255
	hi := float64(cellCentre(LUTSize-1)) / 255
	if title != "" {
		fmt.Fprintf(bw, "TITLE %q\n", title)
	}
	fmt.Fprintf(bw, "LUT_3D_SIZE %d\n", LUTSize)
	fmt.Fprintf(bw, "DOMAIN_MIN %.6f %.6f %.6f\n", lo, lo, lo)
	fmt.Fprintf(bw, "DOMAIN_MAX %.6f %.6f %.6f\n", hi, hi, hi)

	// red varies fastest
	for i := range LUTSize {
		for j := range LUTSize {
			for k := range LUTSize {
				c := g[i][j][k]
				fmt.Fprintf(bw, "%.6f %.6f %.6f\n",
					float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
			}
		}
	}

	return bw.Flush()
}
