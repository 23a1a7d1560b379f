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

package charmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/bigtext"
)

// ReadJSON reads a glyph table in JSON format.
//
// The input is a JSON object.  Every key must consist of exactly one
// character, and the corresponding value is the list of glyph rows, from
// top to bottom.  No check is made that the glyphs fit together; use
// [bigtext.NewFont] or [NewFont] for this.
func ReadJSON(r io.Reader) (map[rune]bigtext.Glyph, error) {
	var raw map[string][]string
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("charmap: invalid JSON glyph table: %w", err)
	}

	res := make(map[rune]bigtext.Glyph, len(raw))
	for key, rows := range raw {
		c, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) || c == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("charmap: invalid glyph key %q", key)
		}
		res[c] = bigtext.Glyph(rows)
	}
	return res, nil
}

// WriteJSON writes a glyph table in the format read by [ReadJSON].
// The entries are sorted by character, one glyph per line.
func WriteJSON(w io.Writer, glyphs map[rune]bigtext.Glyph) error {
	chars := maps.Keys(glyphs)
	slices.Sort(chars)

	buf := &bytes.Buffer{}
	buf.WriteString("{\n")
	for i, c := range chars {
		buf.WriteString("  ")
		if err := quote(buf, string(c)); err != nil {
			return err
		}
		buf.WriteString(": [")
		for j, row := range glyphs[c] {
			if j > 0 {
				buf.WriteString(", ")
			}
			if err := quote(buf, row); err != nil {
				return err
			}
		}
		buf.WriteString("]")
		if i < len(chars)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	_, err := buf.WriteTo(w)
	return err
}

// quote appends s to buf as a JSON string, without HTML escaping.
func quote(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode adds a newline
	return nil
}
