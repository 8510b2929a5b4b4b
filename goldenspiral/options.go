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

package goldenspiral

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Options control which glyphs the driver draws and how the figure
// recurses.
type Options struct {
	Glyphs GlyphOptions `mapstructure:"glyphs"`

	// SecondarySpiral adds a second child region to every region, which
	// makes the figure branch.
	SecondarySpiral bool `mapstructure:"secondarySpiral"`
}

// GlyphOptions select the glyphs drawn in every region.
type GlyphOptions struct {
	Square    SquareOptions    `mapstructure:"square"`
	Rectangle RectangleOptions `mapstructure:"rectangle"`
	Spiral    SpiralOptions    `mapstructure:"spiral"`
}

// SquareOptions configure the outline of the square part of a region.
type SquareOptions struct {
	Enabled  bool `mapstructure:"enabled"`
	LastOnly bool `mapstructure:"lastOnly"` // only draw at the deepest level
}

// RectangleOptions configure the outline of the rectangular part of a
// region.
type RectangleOptions struct {
	Enabled  bool `mapstructure:"enabled"`
	LastOnly bool `mapstructure:"lastOnly"` // only draw at the deepest level

	// NoLastHighlight suppresses the extra class which marks rectangles at
	// the deepest level.
	NoLastHighlight bool `mapstructure:"noLastHighlight"`
}

// SpiralOptions configure the spiral segments.
type SpiralOptions struct {
	Enabled  bool `mapstructure:"enabled"`
	LastOnly bool `mapstructure:"lastOnly"` // only draw at the deepest level

	// Bezier selects a quadratic Bézier curve instead of a circular arc.
	Bezier bool `mapstructure:"bezier"`

	// PathAttrs are set on every spiral segment, after all other
	// attributes.  A "stroke" entry overrides StrokeFn.
	PathAttrs map[string]string `mapstructure:"pathAttrs"`

	// StrokeFn computes the stroke colour of a segment from the datum of
	// its region.  If StrokeFn is nil, segments are black.
	StrokeFn StrokeFunc `mapstructure:"-"`

	// Ramp is the configuration file form of StrokeFn, see DecodeOptions.
	Ramp Ramp `mapstructure:"strokeFn"`
}

// DefaultOptions returns the default configuration: spirals only, drawn
// as circular arcs coloured by [DefaultStroke], with secondary spirals.
func DefaultOptions() Options {
	return Options{
		Glyphs: GlyphOptions{
			Spiral: SpiralOptions{
				Enabled:  true,
				StrokeFn: DefaultStroke,
			},
		},
		SecondarySpiral: true,
	}
}

// DecodeOptions builds options from a generic map, as read from a
// configuration file.  Keys which are not present keep their values from
// [DefaultOptions].
//
// Each of glyphs.square, glyphs.rectangle and glyphs.spiral may be given
// either as a boolean, or as a map of options which implies that the glyph
// is enabled.  The value of glyphs.spiral.strokeFn may be false (plain
// black), true or "log" (the default ramp), or a list of two colours
// which are the end points of a logarithmic ramp.
func DecodeOptions(m map[string]any) (Options, error) {
	opts := DefaultOptions()
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       glyphHook,
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           &opts,
	})
	if err != nil {
		return Options{}, err
	}
	if err := dec.Decode(m); err != nil {
		return Options{}, fmt.Errorf("golden spiral options: %w", err)
	}
	if len(md.Unused) > 0 {
		return Options{}, fmt.Errorf("golden spiral options: unknown keys %v", md.Unused)
	}

	spiral := &opts.Glyphs.Spiral
	if spiral.Ramp != nil {
		fn, err := spiral.Ramp.Func()
		if err != nil {
			return Options{}, fmt.Errorf("golden spiral options: strokeFn: %w", err)
		}
		spiral.StrokeFn = fn
	}
	return opts, nil
}

var (
	glyphTypes = []reflect.Type{
		reflect.TypeOf(SquareOptions{}),
		reflect.TypeOf(RectangleOptions{}),
		reflect.TypeOf(SpiralOptions{}),
	}
	rampType = reflect.TypeOf(Ramp(nil))
)

// glyphHook allows booleans in place of glyph option maps, and the short
// forms of strokeFn.
func glyphHook(from, to reflect.Type, data any) (any, error) {
	if to == rampType {
		switch v := data.(type) {
		case bool:
			if !v {
				return Ramp{}, nil
			}
			return Ramp{defaultRampFrom, defaultRampTo}, nil
		case string:
			if v != "log" {
				return nil, fmt.Errorf("unknown stroke function %q", v)
			}
			return Ramp{defaultRampFrom, defaultRampTo}, nil
		}
		return data, nil
	}

	isGlyph := false
	for _, t := range glyphTypes {
		if to == t {
			isGlyph = true
		}
	}
	if !isGlyph {
		return data, nil
	}

	switch v := data.(type) {
	case bool:
		return map[string]any{"enabled": v}, nil
	case map[string]any:
		if _, ok := v["enabled"]; ok {
			return v, nil
		}
		res := make(map[string]any, len(v)+1)
		for key, val := range v {
			res[key] = val
		}
		res["enabled"] = true
		return res, nil
	}
	return data, nil
}
