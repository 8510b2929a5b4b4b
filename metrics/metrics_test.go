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

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/goldenspiral"
	"seehuhn.de/go/fractal/surface"
)

func TestRecorder(t *testing.T) {
	rec := New()
	opts := goldenspiral.DefaultOptions()
	opts.SecondarySpiral = false
	root := surface.NewRoot(400, 250)
	e, err := fractal.New(root, goldenspiral.New(opts),
		fractal.WithDepth(3),
		fractal.WithHooks(rec.Hooks()))
	require.NoError(t, err)
	require.NoError(t, e.Draw())

	// three spiral segments and two nested regions
	assert.Equal(t, 3.0, testutil.ToFloat64(rec.nodes.WithLabelValues("enter", "glyph")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.nodes.WithLabelValues("enter", "region")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.draws))
	assert.Equal(t, 3.0, testutil.ToFloat64(rec.depth))
	assert.Equal(t, float64(root.Count()), testutil.ToFloat64(rec.size))

	e.SetDepth(2)
	require.NoError(t, e.Draw())
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.nodes.WithLabelValues("exit", "region")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.nodes.WithLabelValues("update", "glyph")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.nodes.WithLabelValues("update", "region")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.draws))

	var buf strings.Builder
	require.NoError(t, rec.WriteText(&buf))
	assert.Contains(t, buf.String(), "fractal_draw_duration_seconds_count 2")
}

func TestExport(t *testing.T) {
	rec := New()
	h := rec.Hooks()
	h.OnDraw(fractal.DrawStats{Depth: 4, Nodes: 17})

	var buf strings.Builder
	require.NoError(t, rec.WriteText(&buf))
	assert.Contains(t, buf.String(), "fractal_tree_nodes 17")
	assert.Contains(t, buf.String(), "fractal_depth 4")

	families, err := rec.Registry().Gather()
	require.NoError(t, err)
	types := make(map[string]dto.MetricType)
	for _, mf := range families {
		types[mf.GetName()] = mf.GetType()
	}
	assert.Equal(t, dto.MetricType_HISTOGRAM, types["fractal_draw_duration_seconds"])
	assert.Equal(t, dto.MetricType_GAUGE, types["fractal_tree_nodes"])

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
