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
	"io"
	"strings"
)

// Block is the large-print rendering of one or more lines of text.
// Each element is one row of output, without a line terminator.
type Block []string

// String returns the rows of the block, each followed by a newline.
func (b Block) String() string {
	var sb strings.Builder
	for _, row := range b {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the rows of the block to w, each followed by a newline.
func (b Block) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, row := range b {
		n, err := io.WriteString(w, row+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Render converts text into its large-print form.
//
// Every rune of the text is looked up on its own, without normalisation, so
// a letter followed by a combining mark takes two glyphs.  Row i of the
// result is the concatenation of row i of the glyphs of all runes, in order.
// Characters not supported by the font are rendered using the blank glyph.
// The result always has f.Height rows; for empty text all rows are empty.
func (f *Font) Render(text string) Block {
	rows := make([]strings.Builder, f.Height)
	for _, r := range text {
		g := f.Lookup(r)
		for i := range rows {
			rows[i].WriteString(g[i])
		}
	}

	res := make(Block, f.Height)
	for i := range rows {
		res[i] = rows[i].String()
	}
	return res
}

// RenderAll renders every text separately and stacks the results
// vertically, in the order given.
func (f *Font) RenderAll(texts []string) Block {
	res := make(Block, 0, len(texts)*f.Height)
	for _, text := range texts {
		res = append(res, f.Render(text)...)
	}
	return res
}

// Width returns the number of cells taken by the rendered form of text.
func (f *Font) Width(text string) int {
	w := 0
	for _, r := range text {
		w += f.Lookup(r).Width()
	}
	return w
}

// Wrap splits text into pieces such that the rendered form of each piece is
// at most maxWidth cells wide.  Where possible, a line is broken after the
// last space which fits; otherwise the break occurs between two characters.
// Every piece contains at least one character, so a single character wider
// than maxWidth is placed on a line by itself.
//
// If maxWidth is not positive, or if the text fits, the text is returned
// as the only piece.
func (f *Font) Wrap(text string, maxWidth int) []string {
	if maxWidth <= 0 || f.Width(text) <= maxWidth {
		return []string{text}
	}

	var pieces []string
	var line []rune
	lineWidth := 0
	lastSpace := -1 // index in line just after the most recent space
	for _, r := range text {
		w := f.Lookup(r).Width()
		if len(line) > 0 && lineWidth+w > maxWidth && lastSpace > 0 {
			pieces = append(pieces, string(line[:lastSpace]))
			line = append(line[:0:0], line[lastSpace:]...)
			lineWidth = 0
			for _, rr := range line {
				lineWidth += f.Lookup(rr).Width()
			}
			lastSpace = -1
		}
		if len(line) > 0 && lineWidth+w > maxWidth {
			pieces = append(pieces, string(line))
			line = line[:0:0]
			lineWidth = 0
		}
		line = append(line, r)
		lineWidth += w
		if r == ' ' {
			lastSpace = len(line)
		}
	}
	if len(line) > 0 {
		pieces = append(pieces, string(line))
	}
	return pieces
}
