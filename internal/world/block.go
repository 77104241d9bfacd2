package world

import (
	"fmt"

	"github.com/annel0/isocity/internal/vec"
)

// Vertex представляет узел сетки (пересечение линий), несущий одну высоту
type Vertex struct {
	X, Y int
}

// Block представляет единичную клетку сетки, ограниченную четырьмя узлами.
// Блоки не хранятся: тип земли и занятость вычисляются по запросу.
type Block struct {
	X, Y int
}

// String возвращает строковое представление узла
func (v Vertex) String() string {
	return fmt.Sprintf("v(%d,%d)", v.X, v.Y)
}

// Block возвращает блок, у которого этот узел является левым верхним углом
func (v Vertex) Block() Block {
	return Block{X: v.X, Y: v.Y}
}

// String возвращает строковое представление блока
func (b Block) String() string {
	return fmt.Sprintf("b(%d,%d)", b.X, b.Y)
}

// Vertex возвращает левый верхний угол блока
func (b Block) Vertex() Vertex {
	return Vertex{X: b.X, Y: b.Y}
}

// Corners возвращает четыре угла блока
func (b Block) Corners() [4]Vertex {
	return [4]Vertex{
		{X: b.X, Y: b.Y},
		{X: b.X + 1, Y: b.Y},
		{X: b.X + 1, Y: b.Y + 1},
		{X: b.X, Y: b.Y + 1},
	}
}

// Vec преобразует блок в целочисленный вектор
func (b Block) Vec() vec.Vec2 {
	return vec.Vec2{X: b.X, Y: b.Y}
}

// BlockAt создаёт блок из целочисленного вектора
func BlockAt(p vec.Vec2) Block {
	return Block{X: p.X, Y: p.Y}
}

// LandType определяет тип поверхности блока
type LandType uint8

const (
	LandWater LandType = iota
	LandGround
)

// String возвращает строковое представление типа поверхности
func (t LandType) String() string {
	switch t {
	case LandWater:
		return "water"
	case LandGround:
		return "land"
	default:
		return "unknown"
	}
}
