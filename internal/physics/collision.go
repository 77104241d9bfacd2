package physics

import (
	"github.com/annel0/isocity/internal/vec"
)

// Rect представляет прямоугольник из блоков с левым верхним углом Min.
// Ширина растёт вдоль оси X, высота вдоль оси Y.
type Rect struct {
	Min    vec.Vec2
	Width  int
	Height int
}

// NewRect создаёт прямоугольник с указанным углом и размерами
func NewRect(x, y, width, height int) Rect {
	return Rect{Min: vec.Vec2{X: x, Y: y}, Width: width, Height: height}
}

// Max возвращает координаты за пределами прямоугольника (исключительно)
func (r Rect) Max() vec.Vec2 {
	return vec.Vec2{X: r.Min.X + r.Width, Y: r.Min.Y + r.Height}
}

// Empty сообщает, что прямоугольник не содержит ни одного блока
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area возвращает количество блоков в прямоугольнике
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// IsPointInside проверяет, находится ли блок внутри прямоугольника
func (r Rect) IsPointInside(p vec.Vec2) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X < max.X &&
		p.Y >= r.Min.Y && p.Y < max.Y
}

// ContainsRect проверяет, что other целиком лежит внутри r
func (r Rect) ContainsRect(other Rect) bool {
	if other.Empty() {
		return true
	}
	max, otherMax := r.Max(), other.Max()
	return other.Min.X >= r.Min.X && other.Min.Y >= r.Min.Y &&
		otherMax.X <= max.X && otherMax.Y <= max.Y
}

// Intersects проверяет пересечение двух прямоугольников
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	max, otherMax := r.Max(), other.Max()
	return r.Min.X < otherMax.X && other.Min.X < max.X &&
		r.Min.Y < otherMax.Y && other.Min.Y < max.Y
}

// Clip возвращает пересечение r с bounds (может быть пустым)
func (r Rect) Clip(bounds Rect) Rect {
	max, bmax := r.Max(), bounds.Max()
	minX, minY := maxInt(r.Min.X, bounds.Min.X), maxInt(r.Min.Y, bounds.Min.Y)
	maxX, maxY := minInt(max.X, bmax.X), minInt(max.Y, bmax.Y)
	if maxX <= minX || maxY <= minY {
		return Rect{Min: vec.Vec2{X: minX, Y: minY}}
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// Cells возвращает все блоки прямоугольника построчно (y снаружи, x внутри)
func (r Rect) Cells() []vec.Vec2 {
	if r.Empty() {
		return nil
	}
	cells := make([]vec.Vec2, 0, r.Area())
	for y := r.Min.Y; y < r.Min.Y+r.Height; y++ {
		for x := r.Min.X; x < r.Min.X+r.Width; x++ {
			cells = append(cells, vec.Vec2{X: x, Y: y})
		}
	}
	return cells
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
