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

// Package raster converts bitmap font faces into glyph tables.
package raster

import (
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/bigtext"
)

// Options control how pixels are mapped to text cells.
type Options struct {
	// Ink is the character used for set pixels.  The default is '#'.
	Ink rune

	// Threshold is the minimum alpha value of a set pixel.  The default is
	// 0x80.
	Threshold uint8
}

var defaultOptions = &Options{
	Ink:       '#',
	Threshold: 0x80,
}

// FromFace samples the glyphs of face for the given characters, one text
// cell per pixel.
//
// All glyphs have the height of the face (ascent plus descent).  The width
// of each glyph is its advance width, so that the inter-character spacing
// of the face is preserved.  Characters which the face does not contain are
// left out.
func FromFace(face font.Face, chars []rune, opt *Options) (*bigtext.Font, error) {
	if opt == nil {
		opt = defaultOptions
	}
	ink := opt.Ink
	if ink == 0 {
		ink = defaultOptions.Ink
	}
	threshold := opt.Threshold
	if threshold == 0 {
		threshold = defaultOptions.Threshold
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	dot := fixed.P(0, ascent)

	glyphs := make(map[rune]bigtext.Glyph, len(chars))
	for _, c := range chars {
		dr, mask, maskp, advance, ok := face.Glyph(dot, c)
		if !ok {
			continue
		}
		width := advance.Round()

		g := make(bigtext.Glyph, height)
		var row strings.Builder
		for y := 0; y < height; y++ {
			row.Reset()
			for x := 0; x < width; x++ {
				p := image.Point{X: x, Y: y}
				if p.In(dr) && isSet(mask, maskp.Add(p.Sub(dr.Min)), threshold) {
					row.WriteRune(ink)
				} else {
					row.WriteByte(' ')
				}
			}
			g[y] = row.String()
		}
		glyphs[c] = g
	}

	return bigtext.NewFont(glyphs)
}

func isSet(mask image.Image, p image.Point, threshold uint8) bool {
	if mask == nil {
		return false
	}
	a := color.AlphaModel.Convert(mask.At(p.X, p.Y)).(color.Alpha)
	return a.A >= threshold
}

// ASCII returns the printable ASCII characters, from space to tilde.
func ASCII() []rune {
	chars := make([]rune, 0, 0x7f-0x20)
	for c := rune(0x20); c < 0x7f; c++ {
		chars = append(chars, c)
	}
	return chars
}

// Basic returns a 13-row font for the printable ASCII characters, made from
// the 7x13 face in golang.org/x/image/font/basicfont.
//
// The font is created on first use and shared by all callers.
func Basic() *bigtext.Font {
	return basic()
}

var basic = sync.OnceValue(func() *bigtext.Font {
	f, err := FromFace(basicfont.Face7x13, ASCII(), nil)
	if err != nil {
		panic("raster: cannot convert basicfont.Face7x13: " + err.Error())
	}
	return f
})
