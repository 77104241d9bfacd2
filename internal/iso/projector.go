// Package iso реализует изометрическую проекцию мира на экран и обратно.
package iso

import (
	"errors"
	"fmt"
	"math"

	"github.com/annel0/isocity/internal/vec"
)

// Параметры проекции по умолчанию
const (
	DefaultAngleDeg   = 26.22
	DefaultGridScale  = 30.0
	DefaultHeightUnit = 10.0
)

// Params задаёт фиксированный угол и масштабы проекции
type Params struct {
	AngleDeg   float64 // Угол наклона сетки, градусы
	GridScale  float64 // Пикселей на единицу мира
	HeightUnit float64 // Пикселей на единицу высоты
}

// DefaultParams возвращает параметры классической изометрии
func DefaultParams() Params {
	return Params{
		AngleDeg:   DefaultAngleDeg,
		GridScale:  DefaultGridScale,
		HeightUnit: DefaultHeightUnit,
	}
}

// Validate проверяет, что проекция обратима
func (p Params) Validate() error {
	if p.AngleDeg <= 0 || p.AngleDeg >= 90 {
		return fmt.Errorf("angle must be in (0, 90) degrees, got %v", p.AngleDeg)
	}
	if p.GridScale <= 0 {
		return errors.New("grid scale must be positive")
	}
	if p.HeightUnit < 0 {
		return errors.New("height unit must not be negative")
	}
	return nil
}

// WorldPoint - точка на непрерывной плоскости мира плюс дискретная высота
type WorldPoint struct {
	X, Y float64
	H    int
}

// Point создаёт точку мира на нулевой высоте
func Point(x, y float64) WorldPoint {
	return WorldPoint{X: x, Y: y}
}

// Projector выполняет аффинное отображение мира на экран с фиксированным углом
type Projector struct {
	params Params
	cos    float64
	sin    float64
}

// NewProjector создаёт проектор с указанными параметрами
func NewProjector(params Params) *Projector {
	rad := params.AngleDeg / 180 * math.Pi
	return &Projector{
		params: params,
		cos:    math.Cos(rad),
		sin:    math.Sin(rad),
	}
}

// Params возвращает параметры проектора
func (p *Projector) Params() Params {
	return p.params
}

// Forward переводит точку мира в экранное смещение (без панорамирования)
func (p *Projector) Forward(w WorldPoint) vec.Vec2Float {
	x := w.X * p.params.GridScale
	y := w.Y * p.params.GridScale

	return vec.Vec2Float{
		X: (x - y) * p.cos,
		Y: (x+y)*p.sin - float64(w.H)*p.params.HeightUnit,
	}
}

// Inverse переводит экранную точку обратно в мир. Высоту по 2D восстановить
// нельзя, поэтому результат всегда на нулевой высоте.
func (p *Projector) Inverse(s vec.Vec2Float) WorldPoint {
	a := s.X / (2 * p.cos)
	b := s.Y / (2 * p.sin)

	return WorldPoint{
		X: (a + b) / p.params.GridScale,
		Y: (-a + b) / p.params.GridScale,
	}
}
