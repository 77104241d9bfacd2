package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightfield_Creation(t *testing.T) {
	hf := NewHeightfield(4, 3)

	w, h := hf.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	assert.Len(t, hf.Snapshot(), 5*4, "Узлов должно быть (w+1)*(h+1)")

	hf.ForEachVertex(func(v Vertex, height Height) {
		assert.Equal(t, WaterLevel, height, "Новое поле должно быть на уровне воды в %v", v)
	})

	assert.Panics(t, func() { NewHeightfield(0, 3) }, "Нулевой размер недопустим")
}

func TestHeightfield_BoundaryRule(t *testing.T) {
	// Узел на поле: 0 <= X <= W, 0 <= Y <= H. Край: X или Y равен 0 либо W/H.
	hf := NewHeightfield(10, 8)

	tests := []struct {
		v      Vertex
		inside bool
		edge   bool
	}{
		{Vertex{0, 0}, true, true},
		{Vertex{10, 8}, true, true},
		{Vertex{10, 4}, true, true},
		{Vertex{5, 8}, true, true},
		{Vertex{0, 5}, true, true},
		{Vertex{1, 1}, true, false},
		{Vertex{9, 7}, true, false},
		{Vertex{11, 4}, false, false},
		{Vertex{4, 9}, false, false},
		{Vertex{-1, 0}, false, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.inside, hf.InBounds(tt.v), "InBounds(%v)", tt.v)
		if tt.inside {
			assert.Equal(t, tt.edge, hf.IsEdge(tt.v), "IsEdge(%v)", tt.v)
		}
	}

	// Блоки на единицу меньше узлов по каждой оси
	assert.True(t, hf.ContainsBlock(Block{9, 7}))
	assert.False(t, hf.ContainsBlock(Block{10, 7}))
	assert.False(t, hf.ContainsBlock(Block{9, 8}))
}

func TestHeightfield_OutOfRangePanics(t *testing.T) {
	hf := NewHeightfield(3, 3)

	assert.Panics(t, func() { hf.Height(Vertex{4, 0}) })
	assert.Panics(t, func() { hf.SetHeight(Vertex{0, -1}, 1) })
	assert.NotPanics(t, func() { hf.Height(Vertex{3, 3}) })
}

func TestHeightfield_LandType(t *testing.T) {
	hf := NewHeightfield(3, 3)
	assert.Equal(t, LandWater, hf.LandType(Block{1, 1}))

	// Любой поднятый угол делает блок сушей
	hf.SetHeight(Vertex{2, 2}, 1)
	assert.Equal(t, LandGround, hf.LandType(Block{1, 1}))
	assert.Equal(t, LandGround, hf.LandType(Block{2, 2}))
	assert.Equal(t, LandWater, hf.LandType(Block{0, 0}))
}

func TestHeightfield_NeighboursClipped(t *testing.T) {
	hf := NewHeightfield(5, 5)

	// Внутренний узел: 8 соседей построчно
	n := hf.Neighbours(Vertex{2, 2})
	require.Len(t, n, 8)
	assert.Equal(t, []Vertex{
		{1, 1}, {2, 1}, {3, 1},
		{1, 2}, {3, 2},
		{1, 3}, {2, 3}, {3, 3},
	}, n)

	// Угол: только 3 соседа внутри поля
	assert.Equal(t, []Vertex{{1, 0}, {0, 1}, {1, 1}}, hf.Neighbours(Vertex{0, 0}))

	// Дальний угол
	assert.Equal(t, []Vertex{{4, 4}, {5, 4}, {4, 5}}, hf.Neighbours(Vertex{5, 5}))

	// Середина края: 5 соседей
	assert.Len(t, hf.Neighbours(Vertex{0, 3}), 5)
}

func TestHeightfield_Clone(t *testing.T) {
	hf := NewHeightfield(3, 3)
	hf.SetHeight(Vertex{1, 1}, 2)

	clone := hf.Clone()
	clone.SetHeight(Vertex{1, 1}, 4)

	assert.Equal(t, Height(2), hf.Height(Vertex{1, 1}), "Клон не должен разделять память с оригиналом")
	assert.Equal(t, Height(4), clone.Height(Vertex{1, 1}))
}

func TestBlock_Corners(t *testing.T) {
	b := Block{X: 3, Y: 7}
	assert.Equal(t, [4]Vertex{{3, 7}, {4, 7}, {4, 8}, {3, 8}}, b.Corners())
	assert.Equal(t, b, b.Vertex().Block())
	assert.Equal(t, "b(3,7)", b.String())
	assert.Equal(t, "v(3,7)", b.Vertex().String())
}
