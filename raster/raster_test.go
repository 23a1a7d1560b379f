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

package raster

import (
	"image"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/basicfont"

	"seehuhn.de/go/bigtext"
)

func TestBasic(t *testing.T) {
	f := Basic()
	if f != Basic() {
		t.Error("Basic() returned different fonts")
	}

	if f.Height != 13 {
		t.Errorf("unexpected height %d", f.Height)
	}
	if n := len(f.Glyphs); n != 95 {
		t.Errorf("unexpected number of glyphs %d", n)
	}
	for _, c := range f.Characters() {
		if w := f.Glyphs[c].Width(); w != 7 {
			t.Errorf("glyph %q has width %d", c, w)
		}
	}

	if !f.Glyphs[' '].IsBlank() {
		t.Error("space is not blank")
	}
	for _, c := range "AZaz09@~" {
		if f.Glyphs[c].IsBlank() {
			t.Errorf("glyph %q is blank", c)
		}
	}

	block := f.Render("A")
	if len(block) != 13 {
		t.Fatalf("got %d rows", len(block))
	}
	for i, row := range block {
		if len(row) != 7 {
			t.Errorf("row %d has width %d", i, len(row))
		}
		if strings.Trim(row, " #") != "" {
			t.Errorf("row %d contains unexpected characters: %q", i, row)
		}
	}
}

func TestFromFaceOptions(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13, []rune{'I', 'l'}, &Options{Ink: '@'})
	if err != nil {
		t.Fatal(err)
	}
	for c, g := range f.Glyphs {
		for i, row := range g {
			if strings.Trim(row, " @") != "" {
				t.Errorf("glyph %q row %d: unexpected characters in %q", c, i, row)
			}
		}
	}
	if d := cmp.Diff([]rune{'I', 'l'}, f.Characters()); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

// testFace has a single glyph 'x', which is a 3x2 checker board pattern.
func testFace() *basicfont.Face {
	mask := image.NewAlpha(image.Rect(0, 0, 3, 2))
	mask.Pix = []uint8{
		0xff, 0x00, 0xff,
		0x00, 0x90, 0x10,
	}
	return &basicfont.Face{
		Advance: 4,
		Width:   3,
		Height:  2,
		Ascent:  1,
		Descent: 1,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: 'x', High: 'y', Offset: 0},
		},
	}
}

func TestFromFace(t *testing.T) {
	f, err := FromFace(testFace(), []rune("xyz"), nil)
	if err != nil {
		t.Fatal(err)
	}

	want := map[rune]bigtext.Glyph{
		'x': {"# # ", " #  "},
	}
	if d := cmp.Diff(want, f.Glyphs); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}

	f, err = FromFace(testFace(), []rune("x"), &Options{Threshold: 0x10})
	if err != nil {
		t.Fatal(err)
	}
	want = map[rune]bigtext.Glyph{
		'x': {"# # ", " ## "},
	}
	if d := cmp.Diff(want, f.Glyphs); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestFromFaceNoGlyphs(t *testing.T) {
	_, err := FromFace(testFace(), []rune("abc"), nil)
	if err == nil {
		t.Error("expected an error for an empty font")
	}
}

func TestASCII(t *testing.T) {
	chars := ASCII()
	if len(chars) != 95 || chars[0] != ' ' || chars[94] != '~' {
		t.Errorf("unexpected character range %q", string(chars))
	}
}
