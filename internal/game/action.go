package game

import (
	"errors"
	"fmt"

	"github.com/annel0/isocity/internal/world"
	"github.com/annel0/isocity/internal/world/structure"
)

// Ошибки уровня сессии. Все восстанавливаемые: изменение не выполняется.
var (
	ErrNoTarget         = errors.New("no target block")
	ErrOffBoard         = errors.New("target block is off the board")
	ErrUnknownStructure = errors.New("unknown structure")
)

// Action - дискретный запрос игрока.
// Закрытый набор: Hover, Focus, RaiseTerrain, LowerTerrain, PlaceStructure,
// RotateStructure, SelectTool, SelectStructure.
//
// Действия с целью принимают явный блок At; без него берётся подсвеченный блок.
type Action interface {
	isAction()
	Name() string
}

// Hover - курсор над блоком (OK=false - курсор вне мира)
type Hover struct {
	Block world.Block
	OK    bool
}

// Focus - перенести фокальную точку в блок
type Focus struct{ At *world.Block }

// RaiseTerrain - поднять угол блока
type RaiseTerrain struct{ At *world.Block }

// LowerTerrain - опустить угол блока
type LowerTerrain struct{ At *world.Block }

// PlaceStructure - разместить выбранное сооружение с углом в блоке
type PlaceStructure struct{ At *world.Block }

// RotateStructure - повернуть выбранное сооружение
type RotateStructure struct{}

// SelectTool - выбрать инструмент боковой панели
type SelectTool struct{ Tool Tool }

// SelectStructure - выбрать сооружение для размещения
type SelectStructure struct{ Structure structure.Structure }

func (Hover) isAction()           {}
func (Focus) isAction()           {}
func (RaiseTerrain) isAction()    {}
func (LowerTerrain) isAction()    {}
func (PlaceStructure) isAction()  {}
func (RotateStructure) isAction() {}
func (SelectTool) isAction()      {}
func (SelectStructure) isAction() {}

func (Hover) Name() string           { return "hover" }
func (Focus) Name() string           { return "focus" }
func (RaiseTerrain) Name() string    { return "raise" }
func (LowerTerrain) Name() string    { return "lower" }
func (PlaceStructure) Name() string  { return "place" }
func (RotateStructure) Name() string { return "rotate" }
func (SelectTool) Name() string      { return "tool" }
func (SelectStructure) Name() string { return "structure" }

// At возвращает указатель на блок для явной цели действия
func At(x, y int) *world.Block {
	return &world.Block{X: x, Y: y}
}

// Mutation - типизированный запрос на изменение состояния сессии.
// Закрытый набор: SetHighlight, SetFocus, Sculpt, Place, SetMode, NoOp.
type Mutation interface {
	isMutation()
	String() string
}

// SetHighlight меняет подсвеченный блок
type SetHighlight struct {
	Block world.Block
	OK    bool
}

// SetFocus переносит фокальную точку
type SetFocus struct{ Vertex world.Vertex }

// Sculpt меняет высоту узла на единицу
type Sculpt struct {
	Vertex    world.Vertex
	Direction world.Direction
}

// Place добавляет размещение сооружения
type Place struct {
	Structure   structure.Structure
	Orientation world.Orientation
	Origin      world.Block
}

// SetMode меняет режим игрока
type SetMode struct{ Mode Mode }

// NoOp - действие не имеет смысла в текущем режиме
type NoOp struct{ Reason string }

func (SetHighlight) isMutation() {}
func (SetFocus) isMutation()     {}
func (Sculpt) isMutation()       {}
func (Place) isMutation()        {}
func (SetMode) isMutation()      {}
func (NoOp) isMutation()         {}

func (m SetHighlight) String() string {
	if !m.OK {
		return "highlight(none)"
	}
	return fmt.Sprintf("highlight(%v)", m.Block)
}

func (m SetFocus) String() string { return fmt.Sprintf("focus(%v)", m.Vertex) }

func (m Sculpt) String() string { return fmt.Sprintf("%s(%v)", m.Direction, m.Vertex) }

func (m Place) String() string {
	return fmt.Sprintf("place(%s, %s, %v)", m.Structure, m.Orientation, m.Origin)
}

func (m SetMode) String() string { return fmt.Sprintf("mode(%s)", m.Mode) }

func (m NoOp) String() string { return fmt.Sprintf("noop(%s)", m.Reason) }
