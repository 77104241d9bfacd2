package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/isocity/internal/physics"
	"github.com/annel0/isocity/internal/world"
	"github.com/annel0/isocity/internal/world/structure"
)

func TestParseTool(t *testing.T) {
	tests := []struct {
		in   string
		want Tool
	}{
		{"navigation", ToolNavigation},
		{"Building", ToolBuilding},
		{" terrain ", ToolTerrain},
		{"sculpt", ToolTerrain},
	}
	for _, tt := range tests {
		got, err := ParseTool(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseTool("bulldozer")
	assert.Error(t, err)
}

func TestTool_Mode(t *testing.T) {
	assert.Equal(t, FocusMode{}, ToolNavigation.Mode())
	assert.Equal(t, SculptMode{}, ToolTerrain.Mode())
	assert.Equal(t, PlaceMode{Structure: structure.Of(structure.TrainStation), Orientation: world.North}, ToolBuilding.Mode())
	assert.Equal(t, "terrain", ToolTerrain.String())
}

func TestSelection_Blocks(t *testing.T) {
	board := physics.NewRect(0, 0, 20, 20)

	sel := SelectionFor(PlaceMode{Structure: structure.Of(structure.TrainStation), Orientation: world.North})
	assert.Equal(t, SelectBlocks{W: 4, H: 2}, sel)
	assert.Len(t, sel.Blocks(world.Block{X: 2, Y: 2}, board), 8)

	sel = SelectionFor(PlaceMode{Structure: structure.Of(structure.TrainStation), Orientation: world.East})
	assert.Equal(t, SelectBlocks{W: 2, H: 4}, sel)

	// У края поля подсветка обрезается
	blocks := sel.Blocks(world.Block{X: 19, Y: 18}, board)
	assert.ElementsMatch(t, []world.Block{{X: 19, Y: 18}, {X: 19, Y: 19}}, blocks)

	assert.Nil(t, SelectionFor(FocusMode{}).Blocks(world.Block{}, board))
}

func TestSelection_Vertices(t *testing.T) {
	hf := world.NewHeightfield(10, 10)

	sel := SelectionFor(SculptMode{Radius: 1})
	assert.Len(t, sel.Vertices(world.Vertex{X: 5, Y: 5}, hf), 9)
	assert.Len(t, sel.Vertices(world.Vertex{X: 0, Y: 0}, hf), 4)
	assert.Len(t, sel.Vertices(world.Vertex{X: 10, Y: 10}, hf), 4)

	assert.Equal(t, []world.Vertex{{X: 3, Y: 3}}, SelectionFor(SculptMode{}).Vertices(world.Vertex{X: 3, Y: 3}, hf))
	assert.Nil(t, SelectionFor(PlaceMode{Structure: structure.Of(structure.Forest)}).Vertices(world.Vertex{}, hf))
}
