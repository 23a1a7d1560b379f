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

package sheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/bigtext"
	"seehuhn.de/go/bigtext/charmap"
)

func TestReadFixed(t *testing.T) {
	// These glyphs are uniformly 5x2.
	var document = `A  [* * *]
A  [ * * ]
B  [  ***]
B  [**   ]
`
	font, err := Read(strings.NewReader(document))
	if err != nil {
		t.Fatal(err)
	}

	if font.Height != 2 {
		t.Error("unexpected font height", font.Height)
	}
	if font.Blank.Width() != 5 {
		t.Error("unexpected blank width", font.Blank.Width())
	}

	want := map[rune]bigtext.Glyph{
		'A': {"* * *", " * * "},
		'B': {"  ***", "**   "},
	}
	if d := cmp.Diff(want, font.Glyphs); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestReadVariable(t *testing.T) {
	// These glyphs vary in width, and use brackets and spaces as keys.
	var document = `[  [[]
[  []]

   [ ]
   [ ]
!  [#  ]
!  [   ]
`
	font, err := Read(strings.NewReader(document))
	if err != nil {
		t.Fatal(err)
	}

	want := map[rune]bigtext.Glyph{
		'[': {"[", "]"},
		' ': {" ", " "},
		'!': {"#  ", "   "},
	}
	if d := cmp.Diff(want, font.Glyphs); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
	if font.Blank.Width() != 1 {
		t.Error("unexpected blank width", font.Blank.Width())
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"empty", ""},
		{"missing bracket", "A  [***\n"},
		{"missing prefix", "A[***]\n"},
		{"single space", "A [***]\n"},
		{"ragged", "A  [***]\nA  [**]\n"},
		{"height mismatch", "A  [*]\nA  [*]\nB  [*]\n"},
		{"split glyph", "A  [*]\nB  [*]\nA  [*]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.document))
			if err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestWrite(t *testing.T) {
	font, err := bigtext.NewFont(map[rune]bigtext.Glyph{
		'b': {"#  ", "## "},
		'a': {" # ", "###"},
	})
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := Write(buf, font); err != nil {
		t.Fatal(err)
	}
	want := "a  [ # ]\na  [###]\nb  [#  ]\nb  [## ]\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestWriteErrors(t *testing.T) {
	font, err := bigtext.NewFont(map[rune]bigtext.Glyph{
		'\n': {"#"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if Write(&bytes.Buffer{}, font) == nil {
		t.Error("control character written without error")
	}
}

func TestWriteReadCycle(t *testing.T) {
	font := charmap.Printables()

	buf := &bytes.Buffer{}
	err := Write(buf, font)
	if err != nil {
		t.Fatal(err)
	}

	font2, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(font, font2); d != "" {
		t.Fatalf("mismatch (-want +got):\n%s", d)
	}
}

func FuzzRead(f *testing.F) {
	buf := &bytes.Buffer{}
	err := Write(buf, charmap.Printables())
	if err != nil {
		f.Fatal(err)
	}
	f.Add(buf.Bytes())
	f.Add([]byte("A  [*]\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		font, err := Read(bytes.NewReader(data))
		if err != nil {
			return
		}

		buf := &bytes.Buffer{}
		err = Write(buf, font)
		if err != nil {
			return
		}

		font2, err := Read(buf)
		if err != nil {
			t.Fatal(err)
		}

		if d := cmp.Diff(font, font2); d != "" {
			t.Fatalf("mismatch (-want +got):\n%s", d)
		}
	})
}
