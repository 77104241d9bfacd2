package vec

// Vec2 представляет целочисленную точку на экране (пиксели)
type Vec2 struct {
	X, Y int
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub вычитает вектор
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// ToFloat преобразует в вектор с плавающей точкой
func (v Vec2) ToFloat() Vec2Float {
	return Vec2Float{X: float64(v.X), Y: float64(v.Y)}
}
