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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/fractal/internal/config"
	"seehuhn.de/go/fractal/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "goldenspiral",
	Short: "goldenspiral draws golden spiral fractals",
	Long: `goldenspiral recursively subdivides a golden rectangle into a square and a
smaller golden rectangle, and draws the resulting figure.`,
	SilenceUsage: true,
}

// Execute runs the command line interface.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "YAML or JSON configuration file")
	flags.StringArray("set", nil, "override a setting, e.g. --set driver.glyphs.square=true")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Float64("width", 400, "width of the figure")
	flags.Float64("height", 250, "height of the figure; reduced to width/φ")
	flags.IntP("depth", "d", 0, "number of levels (default 5)")
}

// setup reads the configuration and creates the logger for a command.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	flags := cmd.Flags()

	levelName, _ := flags.GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}
	log := logging.NewWriter(cmd.ErrOrStderr(), level)

	cfg := config.Default()
	if fname, _ := flags.GetString("config"); fname != "" {
		cfg, err = config.Load(fname)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("loaded configuration", "file", fname)
	}

	if flags.Changed("width") {
		cfg.Width, _ = flags.GetFloat64("width")
	}
	if flags.Changed("height") {
		cfg.Height, _ = flags.GetFloat64("height")
	}
	if flags.Changed("depth") {
		cfg.Depth, _ = flags.GetInt("depth")
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}

	sets, _ := flags.GetStringArray("set")
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, nil, fmt.Errorf("--set %q: expected key=value", kv)
		}
		if err := cfg.Set(key, value); err != nil {
			return nil, nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
