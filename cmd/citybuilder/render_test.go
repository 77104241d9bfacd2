package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/isocity/internal/game"
	"github.com/annel0/isocity/internal/iso"
	"github.com/annel0/isocity/internal/world"
	"github.com/annel0/isocity/internal/world/structure"
)

// seaGenerator оставляет всё поле на уровне воды
type seaGenerator struct{}

func (seaGenerator) Generate(*world.Heightfield) {}

func TestRenderMap(t *testing.T) {
	board := world.NewBoard(4, 3, seaGenerator{}, world.CommitAtomic)
	s := game.NewSession(board, game.Options{Focal: world.Vertex{X: 2, Y: 1}})
	vp := iso.NewViewport(480, 480, 160, iso.NewProjector(iso.DefaultParams()))
	ctx := context.Background()

	_, err := s.Apply(ctx, game.SelectTool{Tool: game.ToolTerrain})
	require.NoError(t, err)
	_, err = s.Apply(ctx, game.RaiseTerrain{At: game.At(1, 1)})
	require.NoError(t, err)
	_, err = s.Apply(ctx, game.SelectStructure{Structure: structure.Of(structure.Forest)})
	require.NoError(t, err)
	_, err = s.Apply(ctx, game.PlaceStructure{At: game.At(3, 2)})
	require.NoError(t, err)

	lines := strings.Split(renderMap(s, vp), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "11~~", lines[0])
	assert.Equal(t, "11~~", lines[1])
	assert.Equal(t, "~~~F", lines[2])
	assert.Contains(t, lines[3], "structures 1")
}

func TestBlockGlyph_Height(t *testing.T) {
	board := world.NewBoard(12, 12, world.FixtureGenerator{}, world.CommitAtomic)
	assert.Equal(t, byte('1'), blockGlyph(board, world.Block{X: 0, Y: 0}))
	assert.Equal(t, byte('2'), blockGlyph(board, world.Block{X: 5, Y: 3}))
	assert.Equal(t, byte('3'), blockGlyph(board, world.Block{X: 7, Y: 4}))
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := metricsHandler(reg)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "isocity_http_request_duration_seconds")
}
