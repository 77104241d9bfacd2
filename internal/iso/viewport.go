package iso

import (
	"math"

	"github.com/annel0/isocity/internal/vec"
)

// Viewport описывает область окна, в которой рисуется мир.
// Слева от неё находится боковая панель шириной OffsetLeft пикселей.
//
// Панорамирование сводится к смене фокальной точки: центр области всегда
// соответствует проекции фокальной точки, остальная геометрия не пересчитывается.
type Viewport struct {
	Width      int
	Height     int
	OffsetLeft int
	proj       *Projector
}

// NewViewport создаёт область отображения
func NewViewport(width, height, offsetLeft int, proj *Projector) *Viewport {
	return &Viewport{
		Width:      width,
		Height:     height,
		OffsetLeft: offsetLeft,
		proj:       proj,
	}
}

// Projector возвращает проектор области
func (vp *Viewport) Projector() *Projector {
	return vp.proj
}

// Center возвращает центр области в её собственных координатах
func (vp *Viewport) Center() vec.Vec2 {
	return vec.Vec2{X: vp.Width / 2, Y: vp.Height / 2}
}

// ToViewport переводит точку мира в пиксель окна с учётом фокальной точки и панели
func (vp *Viewport) ToViewport(focal, p WorldPoint) vec.Vec2 {
	offset := vp.proj.Forward(p).Sub(vp.proj.Forward(focal))
	pixel := vp.Center().ToFloat().Add(offset)
	pixel.X += float64(vp.OffsetLeft)
	return pixel.Round()
}

// ToWorld переводит пиксель окна в точку мира (на нулевой высоте)
func (vp *Viewport) ToWorld(focal WorldPoint, px vec.Vec2) WorldPoint {
	return vp.panelToWorld(focal, vec.Vec2{X: px.X - vp.OffsetLeft, Y: px.Y})
}

func (vp *Viewport) panelToWorld(focal WorldPoint, local vec.Vec2) WorldPoint {
	screen := local.Sub(vp.Center()).ToFloat().Add(vp.proj.Forward(focal))
	return vp.proj.Inverse(screen)
}

// InPanel проверяет, что пиксель окна попадает в область мира, а не в боковую панель
func (vp *Viewport) InPanel(px vec.Vec2) bool {
	return px.X >= vp.OffsetLeft && px.X < vp.OffsetLeft+vp.Width &&
		px.Y >= 0 && px.Y < vp.Height
}

// Bounds - выровненный по осям прямоугольник на плоскости мира
type Bounds struct {
	Min vec.Vec2Float
	Max vec.Vec2Float
}

// Contains проверяет, что точка попадает в прямоугольник (включая границы)
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Min.X && x <= b.Max.X && y >= b.Min.Y && y <= b.Max.Y
}

// VisibleBounds возвращает прямоугольник мира, охватывающий четыре угла области.
// Видимая область - четырёхугольник внутри него, поэтому прямоугольник
// годится для отсечения, но захватывает лишнее.
func (vp *Viewport) VisibleBounds(focal WorldPoint) Bounds {
	corners := [4]vec.Vec2{
		{X: 0, Y: 0},
		{X: vp.Width, Y: 0},
		{X: 0, Y: vp.Height},
		{X: vp.Width, Y: vp.Height},
	}

	b := Bounds{
		Min: vec.Vec2Float{X: math.Inf(1), Y: math.Inf(1)},
		Max: vec.Vec2Float{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, c := range corners {
		w := vp.panelToWorld(focal, c)
		b.Min.X = math.Min(b.Min.X, w.X)
		b.Min.Y = math.Min(b.Min.Y, w.Y)
		b.Max.X = math.Max(b.Max.X, w.X)
		b.Max.Y = math.Max(b.Max.Y, w.Y)
	}
	return b
}
