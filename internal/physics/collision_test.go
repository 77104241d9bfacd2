package physics

import (
	"testing"

	"github.com/annel0/isocity/internal/vec"
	"github.com/stretchr/testify/assert"
)

func TestRect_IsPointInside(t *testing.T) {
	r := NewRect(10, 10, 2, 4)

	assert.True(t, r.IsPointInside(vec.Vec2{X: 10, Y: 10}), "Угол должен входить в прямоугольник")
	assert.True(t, r.IsPointInside(vec.Vec2{X: 11, Y: 13}), "Дальний угол должен входить в прямоугольник")
	assert.False(t, r.IsPointInside(vec.Vec2{X: 12, Y: 10}), "Правая граница исключительна")
	assert.False(t, r.IsPointInside(vec.Vec2{X: 10, Y: 14}), "Нижняя граница исключительна")
	assert.Equal(t, 8, r.Area())
}

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"перекрытие", NewRect(0, 0, 3, 3), NewRect(2, 2, 3, 3), true},
		{"касание по краю", NewRect(0, 0, 2, 2), NewRect(2, 0, 2, 2), false},
		{"вложенный", NewRect(0, 0, 5, 5), NewRect(1, 1, 1, 1), true},
		{"пустой", NewRect(0, 0, 0, 5), NewRect(0, 0, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}

func TestRect_ContainsAndClip(t *testing.T) {
	board := NewRect(0, 0, 100, 100)

	assert.True(t, board.ContainsRect(NewRect(95, 95, 5, 5)))
	assert.False(t, board.ContainsRect(NewRect(96, 95, 5, 5)))
	assert.False(t, board.ContainsRect(NewRect(-1, 0, 2, 2)))

	clipped := NewRect(-2, 98, 5, 5).Clip(board)
	assert.Equal(t, NewRect(0, 98, 3, 2), clipped)

	outside := NewRect(200, 200, 3, 3).Clip(board)
	assert.True(t, outside.Empty())
	assert.Nil(t, outside.Cells())
}

func TestRect_Cells(t *testing.T) {
	cells := NewRect(1, 2, 2, 2).Cells()

	assert.Equal(t, []vec.Vec2{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}}, cells,
		"Клетки должны перечисляться построчно")
}
