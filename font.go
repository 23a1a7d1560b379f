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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"
)

// Font is a table of glyphs, indexed by character.
//
// All glyphs in a font, including the blank glyph, have the same height.
// Different glyphs may have different widths.  A Font must not be modified
// after construction; it is then safe for concurrent use.
type Font struct {
	// Height is the number of rows of every glyph in the font.
	Height int

	// Glyphs maps the supported characters to their glyphs.
	Glyphs map[rune]Glyph

	// Blank is used in place of characters which are not in Glyphs.
	Blank Glyph
}

// NewFont creates a font from the given glyphs.
//
// The glyph height is taken from the glyphs themselves.  The blank glyph has
// the width which occurs most often in the table; if there is a tie, the
// wider width is used.  The map is copied, but the glyphs are not.
func NewFont(glyphs map[rune]Glyph) (*Font, error) {
	if len(glyphs) == 0 {
		return nil, errNoGlyphs
	}

	chars := maps.Keys(glyphs)
	slices.Sort(chars)

	height := len(glyphs[chars[0]])
	if height == 0 {
		return nil, errZeroHeight
	}

	count := make(map[int]int)
	for _, r := range chars {
		count[glyphs[r].Width()]++
	}
	blankWidth, best := 0, 0
	for w, n := range count {
		if n > best || n == best && w > blankWidth {
			blankWidth, best = w, n
		}
	}

	f := &Font{
		Height: height,
		Glyphs: maps.Clone(glyphs),
		Blank:  BlankGlyph(height, blankWidth),
	}
	if err := f.Check(); err != nil {
		return nil, err
	}
	return f, nil
}

// Check verifies that the font is well-formed: all glyphs have f.Height rows,
// every glyph is rectangular, and the blank glyph consists of spaces only.
func (f *Font) Check() error {
	if f.Height <= 0 {
		return errZeroHeight
	}
	if len(f.Glyphs) == 0 {
		return errNoGlyphs
	}

	chars := maps.Keys(f.Glyphs)
	slices.Sort(chars)
	for _, r := range chars {
		g := f.Glyphs[r]
		if len(g) != f.Height {
			return invalidf("glyph %q has %d rows, expected %d", r, len(g), f.Height)
		}
		if !g.isRectangular() {
			return invalidf("rows of glyph %q differ in width", r)
		}
	}

	if len(f.Blank) != f.Height {
		return invalidf("blank glyph has %d rows, expected %d", len(f.Blank), f.Height)
	}
	if !f.Blank.isRectangular() || !f.Blank.IsBlank() {
		return invalidf("malformed blank glyph")
	}
	return nil
}

// Lookup returns the glyph for the character r.
// If r is not supported by the font, the blank glyph is returned.
func (f *Font) Lookup(r rune) Glyph {
	if g, ok := f.Glyphs[r]; ok {
		return g
	}
	return f.Blank
}

// Has reports whether the font contains a glyph for r.
func (f *Font) Has(r rune) bool {
	_, ok := f.Glyphs[r]
	return ok
}

// Characters returns all characters supported by the font, in increasing
// order.
func (f *Font) Characters() []rune {
	chars := maps.Keys(f.Glyphs)
	slices.Sort(chars)
	return chars
}

// BBox returns the smallest rectangle which encloses the ink boxes of all
// glyphs in the font.  Blank glyphs are ignored.
func (f *Font) BBox() (fontBBox rect.Rect) {
	first := true
	for _, g := range f.Glyphs {
		glyphBBox := g.InkBox()
		if glyphBBox.IsZero() {
			continue
		}
		if first {
			fontBBox = glyphBBox
			first = false
		} else {
			fontBBox.Extend(glyphBBox)
		}
	}
	return fontBBox
}
