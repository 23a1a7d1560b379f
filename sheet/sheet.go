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

// Package sheet reads and writes glyph tables in a simple line-based
// format.
//
// Each line of a sheet describes one row of one glyph:
//
//	A  [ *** ]
//	A  [*   *]
//	A  [*****]
//
// The line starts with the character, followed by two spaces and an
// opening bracket.  The row extends up to the last closing bracket on the
// line.  Consecutive lines for the same character form the rows of the
// glyph, from top to bottom.  Empty lines are ignored.
package sheet

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"seehuhn.de/go/bigtext"
)

const rowPrefix = "  ["

// Read reads a glyph sheet and returns the corresponding font.
func Read(r io.Reader) (*bigtext.Font, error) {
	glyphs := make(map[rune]bigtext.Glyph)

	lastCh := rune(-1)
	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++
		if line == "" {
			continue
		}

		c, n := utf8.DecodeRuneInString(line)
		rest := line[n:]
		end := strings.LastIndexByte(rest, ']')
		if !strings.HasPrefix(rest, rowPrefix) || end < len(rowPrefix) {
			return nil, fmt.Errorf("sheet: line %d: malformed glyph row", lineNo)
		}

		if c != lastCh {
			if _, seen := glyphs[c]; seen {
				return nil, fmt.Errorf("sheet: line %d: glyph %q defined twice", lineNo, c)
			}
		}
		glyphs[c] = append(glyphs[c], rest[len(rowPrefix):end])
		lastCh = c
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return bigtext.NewFont(glyphs)
}

// Write writes all glyphs of the font in sheet format, ordered by character.
func Write(w io.Writer, f *bigtext.Font) error {
	bw := bufio.NewWriter(w)
	for _, c := range f.Characters() {
		if !unicode.IsPrint(c) {
			return fmt.Errorf("sheet: cannot represent character %q", c)
		}
		for _, row := range f.Glyphs[c] {
			if strings.ContainsAny(row, "\r\n") {
				return fmt.Errorf("sheet: glyph %q contains a line break", c)
			}
			if _, err := fmt.Fprintf(bw, "%c%s%s]\n", c, rowPrefix, row); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
