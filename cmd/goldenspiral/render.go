// seehuhn.de/go/fractal - golden spiral fractals
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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/goldenspiral"
	"seehuhn.de/go/fractal/internal/config"
	"seehuhn.de/go/fractal/metrics"
	"seehuhn.de/go/fractal/pdfdoc"
	"seehuhn.de/go/fractal/raster"
	"seehuhn.de/go/fractal/surface"
	"seehuhn.de/go/fractal/svg"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw a figure and write it to a file",
	Long: `Draws the figure at the configured depth and writes it as SVG, PNG, PDF or
as the JSON form of the element tree.  Without --out the output goes to
stdout, which is not possible for PDF.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		scale, _ := cmd.Flags().GetFloat64("scale")
		withMetrics, _ := cmd.Flags().GetBool("metrics")

		var rec *metrics.Recorder
		var hooks fractal.Hooks
		if withMetrics {
			rec = metrics.New()
			hooks = rec.Hooks()
		}

		root, err := drawFigure(cfg, log, hooks)
		if err != nil {
			return err
		}
		if err := writeFigure(cmd.OutOrStdout(), out, root, cfg.Format, scale); err != nil {
			return err
		}
		if out != "" {
			log.Info("figure written", "file", out, "format", cfg.Format, "nodes", root.Count())
		}

		if rec != nil {
			return rec.WriteText(cmd.ErrOrStderr())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("format", "f", "svg", "output format (svg, png, pdf, json)")
	renderCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	renderCmd.Flags().Float64("scale", 1, "pixels per unit for PNG output")
	renderCmd.Flags().Bool("metrics", false, "print engine metrics to stderr")
}

// drawFigure creates the tree for a configuration.
func drawFigure(cfg *config.Config, log *slog.Logger, hooks fractal.Hooks) (*surface.Node, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	root := surface.NewRoot(cfg.Width, cfg.Height)
	e, err := fractal.New(root, goldenspiral.New(opts),
		fractal.WithDepth(cfg.Depth),
		fractal.WithLogger(log),
		fractal.WithHooks(hooks))
	if err != nil {
		return nil, err
	}
	if err := e.Draw(); err != nil {
		return nil, err
	}
	return root, nil
}

var errPDFStdout = errors.New("PDF output requires --out")

// writeFigure writes root to the file fname, or to stdout if fname is empty.
func writeFigure(stdout io.Writer, fname string, root *surface.Node, format string, scale float64) (err error) {
	if format == "pdf" {
		if fname == "" {
			return errPDFStdout
		}
		return pdfdoc.Write(fname, root, goldenspiral.Styles)
	}
	if fname == "" {
		return encodeFigure(stdout, root, format, scale)
	}

	f, err := createFile(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encodeFigure(f, root, format, scale)
}

// createFile opens output files.  Tests replace it to observe errors.
var createFile = func(fname string) (io.WriteCloser, error) {
	return os.Create(fname)
}

func encodeFigure(w io.Writer, root *surface.Node, format string, scale float64) error {
	switch format {
	case "svg":
		return svg.Write(w, root, &svg.Options{Styles: goldenspiral.Styles, Indent: "  "})
	case "png":
		img, err := raster.Render(root, &raster.Options{Styles: goldenspiral.Styles, Scale: scale})
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(root)
	}
	return fmt.Errorf("unknown format %q", format)
}
