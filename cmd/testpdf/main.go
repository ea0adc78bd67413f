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

// Command testpdf writes the test fixture "test.pdf" into the current
// directory.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"seehuhn.de/go/fixture"
)

const outputFile = "test.pdf"

func main() {
	if err := newCommand(outputFile).Run(context.Background(), os.Args); err != nil {
		slog.Error("failed to generate test PDF", slog.Any("error", err))
		os.Exit(1)
	}
}

func newCommand(output string) *cli.Command {
	return &cli.Command{
		Name:  "testpdf",
		Usage: "write the PDF test fixture to " + output,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return goerr.New("unexpected arguments", goerr.V("args", cmd.Args().Slice()))
			}

			err := fixture.Generate(output)
			if err != nil {
				return err
			}
			slog.Info("wrote test PDF", slog.String("path", output))
			return nil
		},
	}
}
