// seehuhn.de/go/bigtext - print text using large ASCII-art letters
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

package bigtext

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
	"seehuhn.de/go/geom/rect"
)

// Glyph is the large-print form of a single character.
// Row 0 is the top row.  All rows of a glyph have the same display width.
//
// Glyphs stored in a [Font] are shared and must not be modified.
type Glyph []string

// BlankGlyph returns a glyph with the given number of rows, where every row
// consists of w spaces.
func BlankGlyph(height, w int) Glyph {
	if height < 0 {
		height = 0
	}
	row := strings.Repeat(" ", max(w, 0))
	g := make(Glyph, height)
	for i := range g {
		g[i] = row
	}
	return g
}

// Height returns the number of rows of the glyph.
func (g Glyph) Height() int {
	return len(g)
}

// Width returns the display width of the glyph, in terminal cells.
// The width of a glyph without rows is 0.
func (g Glyph) Width() int {
	if len(g) == 0 {
		return 0
	}
	return cellWidth(g[0])
}

// isRectangular reports whether all rows have the same display width.
func (g Glyph) isRectangular() bool {
	for _, row := range g[min(1, len(g)):] {
		if cellWidth(row) != cellWidth(g[0]) {
			return false
		}
	}
	return true
}

// IsBlank returns true if the glyph has no visible cells.
func (g Glyph) IsBlank() bool {
	for _, row := range g {
		if strings.TrimSpace(row) != "" {
			return false
		}
	}
	return true
}

// PadRight returns a copy of the glyph with n columns of spaces appended to
// every row.
func (g Glyph) PadRight(n int) Glyph {
	pad := strings.Repeat(" ", max(n, 0))
	res := make(Glyph, len(g))
	for i, row := range g {
		res[i] = row + pad
	}
	return res
}

// InkBox returns the smallest rectangle which contains all visible cells of
// the glyph.  Coordinates are in cells, with the origin at the bottom left
// corner of the glyph and the y-axis pointing up.  If the glyph is blank,
// the zero rectangle is returned.
func (g Glyph) InkBox() rect.Rect {
	var box rect.Rect
	first := true
	h := len(g)
	for i, row := range g {
		x := 0
		for _, r := range row {
			w := runeWidth(r)
			if !unicode.IsSpace(r) {
				cell := rect.Rect{
					LLx: float64(x),
					LLy: float64(h - 1 - i),
					URx: float64(x + w),
					URy: float64(h - i),
				}
				if first {
					box = cell
					first = false
				} else {
					box.Extend(cell)
				}
			}
			x += w
		}
	}
	return box
}

// cellWidth returns the number of terminal cells needed to display s.
func cellWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
