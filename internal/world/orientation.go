package world

import (
	"fmt"
	"strings"
)

// Orientation определяет поворот сооружения
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

// Rotate возвращает следующую ориентацию по кругу N→E→S→W→N
func (o Orientation) Rotate() Orientation {
	switch o {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Swaps сообщает, меняются ли ширина и высота местами при этой ориентации
func (o Orientation) Swaps() bool {
	return o == East || o == West
}

// String возвращает строковое представление ориентации
func (o Orientation) String() string {
	switch o {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// ParseOrientation разбирает ориентацию по имени или первой букве
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	default:
		return North, fmt.Errorf("unknown orientation %q", s)
	}
}

// Oriented применяет ориентацию к номинальному размеру
func Oriented(w, h int, o Orientation) (int, int) {
	if o.Swaps() {
		return h, w
	}
	return w, h
}
