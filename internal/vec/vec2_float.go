package vec

import "math"

// Vec2Float представляет точку на непрерывной плоскости
type Vec2Float struct {
	X, Y float64
}

// Round округляет координаты до ближайших целых пикселей
func (v Vec2Float) Round() Vec2 {
	return Vec2{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// Add складывает два вектора
func (v Vec2Float) Add(other Vec2Float) Vec2Float {
	return Vec2Float{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub вычитает вектор
func (v Vec2Float) Sub(other Vec2Float) Vec2Float {
	return Vec2Float{X: v.X - other.X, Y: v.Y - other.Y}
}
