package world

import (
	"fmt"

	"github.com/annel0/isocity/internal/physics"
)

// Height хранит высоту узла
type Height uint8

// Ограничения высот
const (
	MinHeight  Height = 0
	MaxHeight  Height = 6
	WaterLevel Height = 0
)

// Heightfield хранит плотную сетку высот для (width+1)*(height+1) узлов.
//
// Граница поля: узел на поле, если 0 <= X <= width и 0 <= Y <= height;
// крайний (неизменяемый) узел, если X или Y равен 0 либо width/height.
type Heightfield struct {
	width   int // Ширина поля в блоках
	height  int // Высота поля в блоках
	heights []Height
}

// NewHeightfield создаёт поле указанного размера в блоках, все узлы на уровне воды
func NewHeightfield(width, height int) *Heightfield {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("world: недопустимый размер поля %dx%d", width, height))
	}

	heights := make([]Height, (width+1)*(height+1))
	for i := range heights {
		heights[i] = WaterLevel
	}

	return &Heightfield{
		width:   width,
		height:  height,
		heights: heights,
	}
}

// Size возвращает размер поля в блоках
func (hf *Heightfield) Size() (int, int) {
	return hf.width, hf.height
}

// Bounds возвращает прямоугольник всех блоков поля
func (hf *Heightfield) Bounds() physics.Rect {
	return physics.NewRect(0, 0, hf.width, hf.height)
}

// InBounds проверяет, что узел лежит на поле
func (hf *Heightfield) InBounds(v Vertex) bool {
	return v.X >= 0 && v.Y >= 0 && v.X <= hf.width && v.Y <= hf.height
}

// IsEdge проверяет, что узел лежит на периметре поля
func (hf *Heightfield) IsEdge(v Vertex) bool {
	return v.X == 0 || v.Y == 0 || v.X == hf.width || v.Y == hf.height
}

// ContainsBlock проверяет, что блок лежит на поле
func (hf *Heightfield) ContainsBlock(b Block) bool {
	return b.X >= 0 && b.Y >= 0 && b.X < hf.width && b.Y < hf.height
}

func (hf *Heightfield) index(v Vertex) int {
	if !hf.InBounds(v) {
		panic(fmt.Sprintf("world: узел %v вне поля %dx%d", v, hf.width, hf.height))
	}
	return v.Y*(hf.width+1) + v.X
}

// Height возвращает высоту узла. Узел вне поля - ошибка вызывающего (паника).
func (hf *Heightfield) Height(v Vertex) Height {
	return hf.heights[hf.index(v)]
}

// SetHeight записывает высоту узла без проверки ограничений
func (hf *Heightfield) SetHeight(v Vertex, h Height) {
	hf.heights[hf.index(v)] = h
}

// LandType возвращает воду, если все четыре угла блока на уровне воды
func (hf *Heightfield) LandType(b Block) LandType {
	for _, corner := range b.Corners() {
		if hf.Height(corner) > WaterLevel {
			return LandGround
		}
	}
	return LandWater
}

// Neighbours возвращает соседей узла по Чебышёву (3x3 без центра) построчно:
// y от v.Y-1 до v.Y+1, внутри x от v.X-1 до v.X+1. Узлы вне поля отбрасываются.
func (hf *Heightfield) Neighbours(v Vertex) []Vertex {
	out := make([]Vertex, 0, 8)
	for y := v.Y - 1; y <= v.Y+1; y++ {
		for x := v.X - 1; x <= v.X+1; x++ {
			n := Vertex{X: x, Y: y}
			if n == v || !hf.InBounds(n) {
				continue
			}
			out = append(out, n)
		}
	}
	return out
}

// ForEachVertex обходит все узлы построчно
func (hf *Heightfield) ForEachVertex(fn func(v Vertex, h Height)) {
	for y := 0; y <= hf.height; y++ {
		for x := 0; x <= hf.width; x++ {
			fn(Vertex{X: x, Y: y}, hf.heights[y*(hf.width+1)+x])
		}
	}
}

// Snapshot возвращает копию всех высот
func (hf *Heightfield) Snapshot() []Height {
	out := make([]Height, len(hf.heights))
	copy(out, hf.heights)
	return out
}

// Clone создаёт независимую копию поля
func (hf *Heightfield) Clone() *Heightfield {
	return &Heightfield{
		width:   hf.width,
		height:  hf.height,
		heights: hf.Snapshot(),
	}
}
