// seehuhn.de/go/fixture - generate PDF test fixtures
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

package fixture

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/font/standard"
)

// Line is a single run of text at a fixed position on the page.
type Line struct {
	Font standard.Font
	Size float64  // font size in PDF points
	Pos  vec.Vec2 // start of the baseline, origin at the bottom-left corner
	Text string
}

// Bullet is prepended to every entry of the fact list.
const Bullet = "• "

// Positions in PDF points.
const (
	leftMargin = 100
	listIndent = 120

	titleY = 750
	introY = 720
	listY  = 670

	introStep   = 20
	listStep    = 20
	headingSkip = 20 // below the position after the last list entry
	identSkip   = 40 // likewise, for the identifier line
)

// Layout returns the lines of the document, in drawing order.
func (c *Content) Layout() []Line {
	regular := func(x, y float64, text string) Line {
		return Line{Font: standard.Helvetica, Size: 12, Pos: vec.Vec2{X: x, Y: y}, Text: text}
	}

	lines := make([]Line, 0, len(c.Intro)+len(c.Facts)+3)
	lines = append(lines, Line{
		Font: standard.HelveticaBold,
		Size: 16,
		Pos:  vec.Vec2{X: leftMargin, Y: titleY},
		Text: c.Title,
	})

	y := float64(introY)
	for _, text := range c.Intro {
		lines = append(lines, regular(leftMargin, y, text))
		y -= introStep
	}

	y = listY
	for _, fact := range c.Facts {
		lines = append(lines, regular(listIndent, y, Bullet+fact))
		y -= listStep
	}

	lines = append(lines, Line{
		Font: standard.HelveticaBold,
		Size: 14,
		Pos:  vec.Vec2{X: leftMargin, Y: y - headingSkip},
		Text: c.Heading,
	})
	lines = append(lines, regular(leftMargin, y-identSkip, c.Identifier))

	return lines
}
