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

// Content holds the text of a fixture document.
type Content struct {
	Title      string   // shown in bold at the top of the page
	Intro      []string // body lines below the title
	Facts      []string // bullet list entries, without the bullet
	Heading    string   // bold section heading after the list
	Identifier string   // the line carrying the unique marker
}

// Marker is the unique string which downstream retrieval tests search for.
const Marker = "TEST-ID-12345"

// TestDocument is the content of the standard test PDF.
var TestDocument = &Content{
	Title: "Test PDF Document",
	Intro: []string{
		"This is a test PDF file created for testing the PDF analysis functionality.",
		"The document contains specific information that we can test with questions:",
	},
	Facts: []string{
		"The capital of France is Paris.",
		"The speed of light is approximately 299,792 kilometers per second.",
		"Water freezes at 0 degrees Celsius.",
		"The Earth completes one rotation around its axis in 24 hours.",
		"The human body has 206 bones.",
	},
	Heading:    "Testing Section",
	Identifier: "This section contains a unique identifier: " + Marker,
}
