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

// Package fixture writes a small, fixed-content PDF file which other
// programs use as test input for text extraction and retrieval.
//
// The document is a single US Letter page using the standard Helvetica
// fonts.  All text is placed at absolute positions, see [Content.Layout].
package fixture

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/standard"
)

// outputMode is the permission of files written by [Generate].
const outputMode = 0o644

// Generate writes the test document to the file with the given name.
// An existing file is replaced.  If an error occurs, the previous contents
// of the file (if any) are left untouched.
func Generate(fileName string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(fileName), ".fixture-*.pdf")
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", fileName))
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	buf := bufio.NewWriter(tmp)
	err = Write(buf, TestDocument)
	if err != nil {
		return goerr.Wrap(err, "failed to write PDF", goerr.V("path", fileName))
	}
	err = buf.Flush()
	if err != nil {
		return goerr.Wrap(err, "failed to write PDF", goerr.V("path", fileName))
	}

	// CreateTemp uses mode 0600, which would survive the rename.
	err = tmp.Chmod(outputMode)
	if err != nil {
		return goerr.Wrap(err, "failed to set file mode", goerr.V("path", fileName))
	}
	err = tmp.Close()
	if err != nil {
		return goerr.Wrap(err, "failed to close output file", goerr.V("path", fileName))
	}

	err = os.Rename(tmpName, fileName)
	if err != nil {
		return goerr.Wrap(err, "failed to move output file into place",
			goerr.V("path", fileName), goerr.V("tmp", tmpName))
	}
	return nil
}

// Write renders c as a single-page PDF document and writes it to w.
func Write(w io.Writer, c *Content) error {
	page, err := document.WriteSinglePage(w, document.Letter, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	fonts := make(map[standard.Font]font.Layouter)
	seq := &font.GlyphSeq{}
	for _, line := range c.Layout() {
		F, ok := fonts[line.Font]
		if !ok {
			F = line.Font.New()
			fonts[line.Font] = F
		}

		// The builder only emits a new Tf operator if font or size change.
		page.TextSetFont(F, line.Size)
		page.TextBegin()
		page.TextFirstLine(line.Pos.X, line.Pos.Y)
		page.TextShowGlyphs(plainGlyphs(seq, F, line.Size, line.Text))
		page.TextEnd()
	}

	return page.Close()
}

// plainGlyphs lays out s one character at a time.  This gives one glyph per
// character and nominal advance widths: no ligatures and no kerning.
func plainGlyphs(seq *font.GlyphSeq, F font.Layouter, size float64, s string) *font.GlyphSeq {
	seq.Seq = seq.Seq[:0]
	for _, r := range s {
		F.Layout(seq, size, string(r))
	}
	return seq
}
