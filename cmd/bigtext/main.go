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

// Bigtext prints its arguments using large ASCII-art letters.
//
// Usage:
//
//	bigtext [-font name] [-w width] [-label] text...
//	bigtext [-font name] -list
//	bigtext [-font name] -dump
//
// Every argument is printed as a separate block, in the order given.
// Long arguments are only wrapped if -w is given.
// Characters which are not supported by the font are printed as blanks.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/bigtext"
	"seehuhn.de/go/bigtext/charmap"
	"seehuhn.de/go/bigtext/raster"
	"seehuhn.de/go/bigtext/sheet"
)

var (
	fontName = flag.String("font", "printables",
		"font to use: printables, letters, digits, punctuation, 7x13, or a .json/sheet file")
	wrapWidth = flag.Int("w", 0, "wrap output at this many columns (0: never, -1: terminal width)")
	label     = flag.Bool("label", false, "print each argument before its block")
	list      = flag.Bool("list", false, "list the characters supported by the font")
	dump      = flag.Bool("dump", false, "print the font in glyph sheet format")
)

func main() {
	flag.Parse()

	font, err := loadFont(*fontName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load font:", err)
		os.Exit(1)
	}

	switch {
	case *list:
		err = listCharacters(os.Stdout, font)
	case *dump:
		err = sheet.Write(os.Stdout, font)
	default:
		width := *wrapWidth
		if width < 0 {
			width = terminalWidth()
		}
		err = printAll(os.Stdout, font, flag.Args(), width, *label)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadFont returns one of the built-in fonts, or reads a font from a file.
func loadFont(name string) (*bigtext.Font, error) {
	switch name {
	case "printables":
		return charmap.Printables(), nil
	case "letters":
		return charmap.NewFont(charmap.Letters(), charmap.Whitespace())
	case "digits":
		return charmap.NewFont(charmap.Digits(), charmap.Whitespace())
	case "punctuation":
		return charmap.NewFont(charmap.Punctuation(), charmap.Whitespace())
	case "7x13":
		return raster.Basic(), nil
	}

	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	if strings.EqualFold(filepath.Ext(name), ".json") {
		glyphs, err := charmap.ReadJSON(fd)
		if err != nil {
			return nil, err
		}
		return bigtext.NewFont(glyphs)
	}
	return sheet.Read(fd)
}

// printAll renders every argument as a separate block.  If width is
// positive, arguments which are too wide are wrapped onto several blocks.
func printAll(w io.Writer, font *bigtext.Font, args []string, width int, label bool) error {
	for _, arg := range args {
		if label {
			if _, err := fmt.Fprintf(w, "string=\"%s\"\n", arg); err != nil {
				return err
			}
		}
		block := font.RenderAll(font.Wrap(arg, width))
		if _, err := block.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

// listCharacters prints one line per supported character, followed by a
// summary of the glyph dimensions.
func listCharacters(w io.Writer, font *bigtext.Font) error {
	for _, c := range font.Characters() {
		name := runenames.Name(c)
		if name == "" {
			name = "<unnamed>"
		}
		g := font.Glyphs[c]
		_, err := fmt.Fprintf(w, "U+%04X  %c  %2dx%d  %s\n", c, c, g.Width(), g.Height(), name)
		if err != nil {
			return err
		}
	}

	bbox := font.BBox()
	_, err := fmt.Fprintf(w, "%d glyphs, height %d, blank width %d, ink box [%g %g %g %g]\n",
		len(font.Glyphs), font.Height, font.Blank.Width(),
		bbox.LLx, bbox.LLy, bbox.URx, bbox.URy)
	return err
}

// terminalWidth returns the width of the terminal connected to standard
// output, or 0 if standard output is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
