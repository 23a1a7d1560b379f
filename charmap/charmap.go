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

// Package charmap provides the built-in glyph tables.
//
// All glyphs in this package are five rows high and five cells wide, and
// are drawn using asterisks.  The tables contain the bare glyph shapes;
// [NewFont] adds the space between adjacent characters.
package charmap

import (
	_ "embed"
	"strings"
	"sync"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/bigtext"
)

// Height is the number of rows of the built-in glyphs.
const Height = 5

// Tracking is the number of blank columns which [NewFont] appends to every
// glyph.
const Tracking = 1

var (
	//go:embed letters.json
	lettersJSON string

	//go:embed digits.json
	digitsJSON string

	//go:embed punctuation.json
	punctuationJSON string

	//go:embed whitespace.json
	whitespaceJSON string
)

// Letters returns the glyphs for the ASCII letters A-Z and a-z.
func Letters() map[rune]bigtext.Glyph {
	return mustDecode(lettersJSON)
}

// Digits returns the glyphs for the digits 0-9.
func Digits() map[rune]bigtext.Glyph {
	return mustDecode(digitsJSON)
}

// Punctuation returns the glyphs for the following characters:
//
//	! @ # $ % ^ & * ( ) [ ] ; \ , . ? " - + = : / ' _ < >
func Punctuation() map[rune]bigtext.Glyph {
	return mustDecode(punctuationJSON)
}

// Whitespace returns the glyph for the space character.
func Whitespace() map[rune]bigtext.Glyph {
	return mustDecode(whitespaceJSON)
}

// NewFont merges the given glyph tables into a font.  Every glyph is padded
// with [Tracking] blank columns on the right.  If a character occurs in more
// than one table, the last occurrence wins.
func NewFont(tables ...map[rune]bigtext.Glyph) (*bigtext.Font, error) {
	all := make(map[rune]bigtext.Glyph)
	for _, table := range tables {
		maps.Copy(all, table)
	}
	for r, g := range all {
		all[r] = g.PadRight(Tracking)
	}
	return bigtext.NewFont(all)
}

// Printables returns the font made from all built-in tables:
// letters, digits, punctuation and the space character.
//
// The font is created on first use and shared by all callers.
func Printables() *bigtext.Font {
	return printables()
}

var printables = sync.OnceValue(func() *bigtext.Font {
	f, err := NewFont(Letters(), Digits(), Punctuation(), Whitespace())
	if err != nil {
		panic("charmap: corrupted built-in tables: " + err.Error())
	}
	return f
})

func mustDecode(data string) map[rune]bigtext.Glyph {
	glyphs, err := ReadJSON(strings.NewReader(data))
	if err != nil {
		panic("charmap: corrupted built-in table: " + err.Error())
	}
	return glyphs
}
