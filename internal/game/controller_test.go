package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/isocity/internal/iso"
	"github.com/annel0/isocity/internal/world"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(newTestSession(t, DefaultOptions()), newTestViewport())
}

// pixelOf возвращает пиксель окна над центром блока
func pixelOf(c *Controller, x, y int) (int, int) {
	px := c.HitTester().Viewport().ToViewport(c.Session().FocalPoint(), iso.Point(float64(x)+0.5, float64(y)+0.5))
	return px.X, px.Y
}

func input(kind InputKind, x, y int) Input {
	return Input{Kind: kind, X: x, Y: y}
}

func TestController_SidebarIgnored(t *testing.T) {
	c := newTestController(t)

	for _, kind := range []InputKind{CursorMove, LeftClick, RightClick} {
		_, ok := c.Map(input(kind, 100, 200))
		assert.False(t, ok, "%s над боковой панелью", kind)
	}

	m, err := c.Handle(context.Background(), input(LeftClick, 20, 20))
	require.NoError(t, err)
	assert.IsType(t, NoOp{}, m)
}

func TestController_CursorMove(t *testing.T) {
	c := newTestController(t)

	x, y := pixelOf(c, 3, 4)
	a, ok := c.Map(input(CursorMove, x, y))
	require.True(t, ok)
	assert.Equal(t, Hover{Block: world.Block{X: 3, Y: 4}, OK: true}, a)

	_, err := c.Handle(context.Background(), input(CursorMove, x, y))
	require.NoError(t, err)
	b, ok := c.Session().Highlight()
	require.True(t, ok)
	assert.Equal(t, world.Block{X: 3, Y: 4}, b)

	// Отрицательные координаты мира дают Hover без блока
	x, y = pixelOf(c, -3, 4)
	a, ok = c.Map(input(CursorMove, x, y))
	require.True(t, ok)
	assert.Equal(t, Hover{}, a)

	_, ok = c.Map(input(LeftClick, x, y))
	assert.False(t, ok, "Клик вне поля ничего не делает")
}

func TestController_RoutesByMode(t *testing.T) {
	c := newTestController(t)
	s := c.Session()
	ctx := context.Background()

	x, y := pixelOf(c, 12, 12)
	a, ok := c.Map(input(LeftClick, x, y))
	require.True(t, ok)
	assert.Equal(t, Focus{At: At(12, 12)}, a)
	_, ok = c.Map(input(RightClick, x, y))
	assert.False(t, ok, "Правый клик вне режима рельефа не используется")

	_, err := s.Apply(ctx, SelectTool{Tool: ToolTerrain})
	require.NoError(t, err)
	a, _ = c.Map(input(LeftClick, x, y))
	assert.Equal(t, RaiseTerrain{At: At(12, 12)}, a)
	a, _ = c.Map(input(RightClick, x, y))
	assert.Equal(t, LowerTerrain{At: At(12, 12)}, a)

	_, err = s.Apply(ctx, SelectTool{Tool: ToolBuilding})
	require.NoError(t, err)
	a, _ = c.Map(input(LeftClick, x, y))
	assert.Equal(t, PlaceStructure{At: At(12, 12)}, a)

	a, ok = c.Map(Input{Kind: PressSpace})
	require.True(t, ok)
	assert.Equal(t, RotateStructure{}, a)
}

func TestController_Handle(t *testing.T) {
	c := newTestController(t)
	s := c.Session()
	ctx := context.Background()

	x, y := pixelOf(c, 6, 6)
	_, err := c.Handle(ctx, input(LeftClick, x, y))
	require.NoError(t, err)
	assert.Equal(t, world.Vertex{X: 6, Y: 6}, s.Focal())

	_, err = s.Apply(ctx, SelectTool{Tool: ToolTerrain})
	require.NoError(t, err)

	// Фокус сменился, пиксель пересчитывается
	x, y = pixelOf(c, 12, 12)
	m, err := c.Handle(ctx, input(LeftClick, x, y))
	require.NoError(t, err)
	assert.Equal(t, Sculpt{Vertex: world.Vertex{X: 12, Y: 12}, Direction: world.Raise}, m)
	assert.Equal(t, world.Height(2), s.Board().VertexHeight(world.Vertex{X: 12, Y: 12}))

	m, err = c.Handle(ctx, Input{Kind: PressSpace})
	require.NoError(t, err)
	assert.IsType(t, NoOp{}, m, "Поворот вне режима размещения")
}
