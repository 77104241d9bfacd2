package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/isocity/internal/iso"
	"github.com/annel0/isocity/internal/vec"
	"github.com/annel0/isocity/internal/world"
)

func newTestViewport() *iso.Viewport {
	return iso.NewViewport(480, 480, 160, iso.NewProjector(iso.DefaultParams()))
}

func TestHitTester_BlockUnder(t *testing.T) {
	hit := NewHitTester(newTestViewport())
	focal := iso.WorldPoint{X: 10, Y: 10, H: 1}

	tests := []struct {
		name string
		x, y float64
		want world.Block
	}{
		{"центр блока", 3.5, 4.5, world.Block{X: 3, Y: 4}},
		{"у начала координат", 0.2, 0.7, world.Block{X: 0, Y: 0}},
		{"рядом с фокусом", 10.4, 9.6, world.Block{X: 10, Y: 9}},
		{"за дальним краем", 25.5, 2.5, world.Block{X: 25, Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px := hit.Viewport().ToViewport(focal, iso.Point(tt.x, tt.y))
			b, ok := hit.BlockUnder(focal, px)
			require.True(t, ok)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestHitTester_NegativeWorldIsNone(t *testing.T) {
	hit := NewHitTester(newTestViewport())
	focal := iso.WorldPoint{X: 2, Y: 2, H: 1}

	for _, p := range []iso.WorldPoint{iso.Point(-0.5, 3.5), iso.Point(3.5, -0.5), iso.Point(-1.5, -1.5)} {
		px := hit.Viewport().ToViewport(focal, p)
		_, ok := hit.BlockUnder(focal, px)
		assert.False(t, ok, "Точка %v вне поля", p)
	}
}

func TestHitTester_VertexPixel(t *testing.T) {
	hit := NewHitTester(newTestViewport())
	focal := iso.WorldPoint{X: 10, Y: 10, H: 2}

	// Фокальная точка всегда в центре области
	assert.Equal(t, vec.Vec2{X: 400, Y: 240}, hit.VertexPixel(focal, world.Vertex{X: 10, Y: 10}, 2))

	low := hit.VertexPixel(focal, world.Vertex{X: 10, Y: 10}, 0)
	assert.Equal(t, 400, low.X)
	assert.Equal(t, 260, low.Y, "Меньшая высота рисуется ниже")
}

func BenchmarkHitTester_BlockUnder(b *testing.B) {
	hit := NewHitTester(newTestViewport())
	focal := iso.WorldPoint{X: 50, Y: 50, H: 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hit.BlockUnder(focal, vec.Vec2{X: 160 + i%480, Y: i % 480})
	}
}
