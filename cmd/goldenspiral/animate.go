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
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"seehuhn.de/go/fractal/goldenspiral"
	"seehuhn.de/go/fractal/internal/preview"
	"seehuhn.de/go/fractal/metrics"
	"seehuhn.de/go/fractal/surface"
)

var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Animate the figure in the terminal",
	Long: `Shows the figure in the terminal, drawn with braille characters.  The
depth of the figure goes up and down between --min and --max.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		opts, err := cfg.Options()
		if err != nil {
			return err
		}
		minDepth, _ := cmd.Flags().GetInt("min")
		maxDepth, _ := cmd.Flags().GetInt("max")
		interval, _ := cmd.Flags().GetDuration("interval")
		addr, _ := cmd.Flags().GetString("metrics-addr")

		popts := preview.Options{
			MinDepth: minDepth,
			MaxDepth: maxDepth,
			Interval: interval,
			Styles:   goldenspiral.Styles,
		}
		if addr != "" {
			rec := metrics.New()
			popts.Hooks = rec.Hooks()
			srv := &http.Server{Addr: addr, Handler: rec.Handler()}
			go func() {
				log.Info("serving metrics", "addr", addr)
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					log.Error("metrics server failed", "error", err)
				}
			}()
			defer srv.Close()
		}

		root := surface.NewRoot(cfg.Width, cfg.Height)
		m, err := preview.New(root, goldenspiral.New(opts), popts)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(animateCmd)

	animateCmd.Flags().Int("min", 1, "smallest depth")
	animateCmd.Flags().Int("max", 10, "largest depth")
	animateCmd.Flags().Duration("interval", 300*time.Millisecond, "time between frames")
	animateCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address")
}
