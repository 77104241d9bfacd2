package game

import (
	"context"
	"fmt"

	"github.com/annel0/isocity/internal/iso"
	"github.com/annel0/isocity/internal/vec"
)

// InputKind определяет вид первичного ввода
type InputKind uint8

const (
	CursorMove InputKind = iota
	LeftClick
	RightClick
	PressSpace
)

// String возвращает имя вида ввода
func (k InputKind) String() string {
	switch k {
	case CursorMove:
		return "cursor_move"
	case LeftClick:
		return "left_click"
	case RightClick:
		return "right_click"
	case PressSpace:
		return "space"
	default:
		return fmt.Sprintf("InputKind(%d)", uint8(k))
	}
}

// Input - первичное событие окна в пикселях
type Input struct {
	Kind InputKind
	X, Y int
}

// Controller переводит ввод в действия сессии с учётом текущего режима
type Controller struct {
	session *Session
	hit     *HitTester
}

// NewController создаёт контроллер сессии для области отображения
func NewController(session *Session, viewport *iso.Viewport) *Controller {
	return &Controller{
		session: session,
		hit:     NewHitTester(viewport),
	}
}

// Session возвращает сессию контроллера
func (c *Controller) Session() *Session {
	return c.session
}

// HitTester возвращает определитель блоков
func (c *Controller) HitTester() *HitTester {
	return c.hit
}

// Map возвращает действие для ввода; false - ввод ничего не значит.
// Пиксели боковой панели не относятся к полю.
func (c *Controller) Map(in Input) (Action, bool) {
	if in.Kind == PressSpace {
		return RotateStructure{}, true
	}

	px := vec.Vec2{X: in.X, Y: in.Y}
	if in.X < c.hit.Viewport().OffsetLeft {
		return nil, false
	}

	block, ok := c.hit.BlockUnder(c.session.FocalPoint(), px)
	if in.Kind == CursorMove {
		return Hover{Block: block, OK: ok}, true
	}
	if !ok {
		return nil, false
	}
	at := &block

	switch in.Kind {
	case LeftClick:
		switch c.session.Mode().(type) {
		case FocusMode:
			return Focus{At: at}, true
		case SculptMode:
			return RaiseTerrain{At: at}, true
		case PlaceMode:
			return PlaceStructure{At: at}, true
		}
	case RightClick:
		if _, sculpting := c.session.Mode().(SculptMode); sculpting {
			return LowerTerrain{At: at}, true
		}
	}
	return nil, false
}

// Handle переводит ввод в действие и применяет его
func (c *Controller) Handle(ctx context.Context, in Input) (Mutation, error) {
	action, ok := c.Map(in)
	if !ok {
		return NoOp{Reason: "input " + in.Kind.String() + " ignored"}, nil
	}
	return c.session.Apply(ctx, action)
}
