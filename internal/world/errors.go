package world

import (
	"errors"
	"fmt"
)

// Ожидаемые, восстанавливаемые исходы операций над миром.
// Вызывающий не выполняет изменение и может показать сообщение.
var (
	ErrAtMaxHeight   = errors.New("vertex already at max height")
	ErrAtMinHeight   = errors.New("vertex already at min height")
	ErrImmutableEdge = errors.New("edge vertex cannot be changed")
	ErrSculptDepth   = errors.New("sculpt prerequisite chain too deep")
	ErrCollision     = errors.New("footprint collides with existing structure")
	ErrOutOfBounds   = errors.New("footprint leaves the board")
)

// CollisionError описывает первый занятый блок, помешавший размещению
type CollisionError struct {
	Block     Block // Занятый блок
	Placement int   // Индекс размещения, которое его занимает
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%v: block %v occupied by placement %d", ErrCollision, e.Block, e.Placement)
}

// Unwrap позволяет сравнивать через errors.Is(err, ErrCollision)
func (e *CollisionError) Unwrap() error {
	return ErrCollision
}
