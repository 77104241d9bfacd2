package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/isocity/internal/physics"
	"github.com/annel0/isocity/internal/world/structure"
)

func TestRegistry_PlaceRotatedStation(t *testing.T) {
	r := NewRegistry(100, 100)

	idx, err := r.Place(structure.Of(structure.TrainStation), East, Block{10, 10})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 8, r.Occupancy().Count(), "Станция 4x2 занимает ровно 8 блоков")

	// При ориентации East станция 2 блока в ширину и 4 в высоту
	for y := 10; y <= 13; y++ {
		for x := 10; x <= 11; x++ {
			got, ok := r.Occupancy().Get(Block{x, y})
			require.True(t, ok, "Блок (%d,%d) должен быть занят", x, y)
			assert.Equal(t, idx, got)
		}
	}

	_, ok := r.StructureAt(Block{12, 10})
	assert.False(t, ok, "Блок справа от повёрнутой станции свободен")
	_, ok = r.StructureAt(Block{10, 14})
	assert.False(t, ok, "Блок под повёрнутой станцией свободен")

	s, ok := r.StructureAt(Block{11, 13})
	require.True(t, ok)
	assert.Equal(t, structure.TrainStation, s.Kind)
}

func TestRegistry_Collision(t *testing.T) {
	r := NewRegistry(20, 20)

	_, err := r.Place(structure.Of(structure.TennisCourt), North, Block{4, 4})
	require.NoError(t, err)

	// Пересечение с углом корта (5,5)
	_, err = r.Place(structure.Of(structure.University), North, Block{5, 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCollision))

	var collision *CollisionError
	require.True(t, errors.As(err, &collision))
	assert.Equal(t, Block{5, 5}, collision.Block)
	assert.Equal(t, 0, collision.Placement)

	assert.Equal(t, 1, r.Len(), "Отклонённое размещение не добавляется")
	assert.Equal(t, 4, r.Occupancy().Count(), "Отклонённое размещение ничего не записывает")

	// Соседний свободный участок принимается
	idx, err := r.Place(structure.Of(structure.University), North, Block{6, 4})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []int{0, 1}, r.Occupancy().Occupied(physics.NewRect(4, 4, 5, 1)))
}

func TestRegistry_OutOfBounds(t *testing.T) {
	r := NewRegistry(10, 10)

	tests := []struct {
		name   string
		kind   structure.Kind
		o      Orientation
		origin Block
	}{
		{"правый край", structure.TrainStation, North, Block{7, 0}},
		{"нижний край после поворота", structure.TrainStation, West, Block{0, 7}},
		{"отрицательный угол", structure.Forest, North, Block{-1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Place(structure.Of(tt.kind), tt.o, tt.origin)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}

	// Вплотную к краю помещается
	_, err := r.Place(structure.Of(structure.TrainStation), North, Block{6, 8})
	assert.NoError(t, err)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_UnknownKind(t *testing.T) {
	r := NewRegistry(10, 10)
	_, err := r.Place(structure.Of(structure.Kind(999)), North, Block{1, 1})
	assert.Error(t, err)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Lookups(t *testing.T) {
	r := NewRegistry(10, 10)

	_, err := r.Place(structure.MineOf(structure.Gold), North, Block{2, 2})
	require.NoError(t, err)

	p, idx, ok := r.PlacementAt(Block{3, 3})
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, structure.Gold, p.Structure.Mineral)
	assert.Equal(t, physics.NewRect(2, 2, 2, 2), p.Bounds())

	_, _, ok = r.PlacementAt(Block{-1, 3})
	assert.False(t, ok, "Блок вне поля не занят")
	_, ok = r.Placement(5)
	assert.False(t, ok)

	list := r.Placements()
	list[0].Origin = Block{9, 9}
	got, _ := r.Placement(0)
	assert.Equal(t, Block{2, 2}, got.Origin, "Placements возвращает копию")
}

func TestOrientation_RotationCycle(t *testing.T) {
	for _, start := range []Orientation{North, East, South, West} {
		p := Placement{Structure: structure.Of(structure.TrainStation), Orientation: start}
		w, h := p.EffectiveFootprint()

		o := start
		for i := 0; i < 4; i++ {
			o = o.Rotate()
		}
		assert.Equal(t, start, o, "Четыре поворота возвращают исходную ориентацию")

		p.Orientation = o
		w2, h2 := p.EffectiveFootprint()
		assert.Equal(t, w, w2)
		assert.Equal(t, h, h2)
	}

	assert.Equal(t, East, North.Rotate())
	assert.Equal(t, North, West.Rotate())
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("E")
	require.NoError(t, err)
	assert.Equal(t, East, o)

	o, err = ParseOrientation("west")
	require.NoError(t, err)
	assert.Equal(t, West, o)

	_, err = ParseOrientation("up")
	assert.Error(t, err)
}

func TestOccupancyIndex_Stats(t *testing.T) {
	oi := NewOccupancyIndex(4, 4)
	oi.Fill(physics.NewRect(0, 0, 2, 2), 3)
	oi.Set(Block{0, 0}, 5)

	assert.Equal(t, 4, oi.Count(), "Перезапись не увеличивает счётчик")
	assert.Contains(t, oi.GetStats(), "4/16")

	b, idx, ok := oi.FirstOccupied(physics.NewRect(1, 0, 3, 3))
	require.True(t, ok)
	assert.Equal(t, Block{1, 0}, b)
	assert.Equal(t, 3, idx)

	assert.Panics(t, func() { oi.Get(Block{4, 0}) })
}
