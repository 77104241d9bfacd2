package game

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/isocity/internal/world"
	"github.com/annel0/isocity/internal/world/structure"
)

const testScript = `
- type: tool
  tool: terrain
- type: raise
  block: {x: 12, y: 12}
- type: lower
  block: {x: 0, y: 5}
- type: structure
  structure: mine
  mineral: gold
- type: place
  block: {x: 2, y: 2}
- type: rotate
- type: space
- type: cursor_move
  x: 10
  y: 10
- type: place
  block: {x: 2, y: 2}
`

func TestParseScript(t *testing.T) {
	steps, err := ParseScript([]byte(testScript))
	require.NoError(t, err)
	require.Len(t, steps, 9)
	assert.Equal(t, "raise", steps[1].Type)
	assert.Equal(t, &BlockRef{X: 12, Y: 12}, steps[1].Block)

	_, action, err := steps[3].decode()
	require.NoError(t, err)
	assert.Equal(t, SelectStructure{Structure: structure.MineOf(structure.Gold)}, action)
}

func TestParseScript_Invalid(t *testing.T) {
	_, err := ParseScript([]byte("- type: jump"))
	assert.ErrorContains(t, err, "step 1")

	_, err = ParseScript([]byte("- type: structure\n  structure: castle"))
	assert.ErrorIs(t, err, ErrUnknownStructure)

	_, err = ParseScript([]byte("- type: tool\n  tool: hammer"))
	assert.Error(t, err)

	_, err = ParseScript([]byte("{not a list"))
	assert.Error(t, err)
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScript), 0o644))

	steps, err := LoadScript(path)
	require.NoError(t, err)
	assert.Len(t, steps, 9)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestController_Replay(t *testing.T) {
	c := newTestController(t)
	steps, err := ParseScript([]byte(testScript))
	require.NoError(t, err)

	report, err := c.Replay(context.Background(), steps)
	require.NoError(t, err)

	assert.Equal(t, 9, report.Steps)
	assert.Equal(t, 6, report.Applied)
	assert.Equal(t, 1, report.Ignored)
	require.Len(t, report.Rejected, 2)
	assert.Equal(t, 3, report.Rejected[0].Step)
	assert.ErrorIs(t, report.Rejected[0].Err, world.ErrImmutableEdge)
	assert.Equal(t, 9, report.Rejected[1].Step)
	assert.ErrorIs(t, report.Rejected[1].Err, world.ErrCollision)

	s := c.Session()
	assert.Equal(t, world.Height(2), s.Board().VertexHeight(world.Vertex{X: 12, Y: 12}))
	assert.Equal(t, PlaceMode{Structure: structure.MineOf(structure.Gold), Orientation: world.South}, s.Mode())
	st, ok := s.Board().StructureAt(world.Block{X: 3, Y: 3})
	require.True(t, ok)
	assert.Equal(t, structure.MineOf(structure.Gold), st)
}

func TestController_ReplayStops(t *testing.T) {
	c := newTestController(t)

	_, err := c.Replay(context.Background(), []Step{{Type: "rotate"}, {Type: "jump"}})
	var stepErr StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 2, stepErr.Step)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := c.Replay(ctx, []Step{{Type: "rotate"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Applied)
}
