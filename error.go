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

import "fmt"

// InvalidFontError indicates a glyph table which violates the structural
// requirements of a [Font].
type InvalidFontError struct {
	Reason string
}

func (err *InvalidFontError) Error() string {
	return "bigtext: " + err.Reason
}

// invalidf returns an [InvalidFontError] with a formatted reason.
func invalidf(format string, a ...any) error {
	return &InvalidFontError{Reason: fmt.Sprintf(format, a...)}
}

var (
	errNoGlyphs   = &InvalidFontError{Reason: "font has no glyphs"}
	errZeroHeight = &InvalidFontError{Reason: "glyph height must be positive"}
)
