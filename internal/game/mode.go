package game

import (
	"fmt"
	"strings"

	"github.com/annel0/isocity/internal/physics"
	"github.com/annel0/isocity/internal/world"
	"github.com/annel0/isocity/internal/world/structure"
)

// Mode - режим игрока, определяющий смысл кликов по полю.
// Закрытый набор: FocusMode, SculptMode, PlaceMode.
type Mode interface {
	isMode()
	String() string
}

// FocusMode - клик переносит фокальную точку
type FocusMode struct{}

// SculptMode - левый клик поднимает рельеф, правый опускает
type SculptMode struct {
	Radius int // Радиус подсветки в узлах
}

// PlaceMode - клик размещает выбранное сооружение
type PlaceMode struct {
	Structure   structure.Structure
	Orientation world.Orientation
}

func (FocusMode) isMode()  {}
func (SculptMode) isMode() {}
func (PlaceMode) isMode()  {}

func (FocusMode) String() string { return "focus" }

func (m SculptMode) String() string { return fmt.Sprintf("sculpt(r=%d)", m.Radius) }

func (m PlaceMode) String() string {
	return fmt.Sprintf("place(%s, %s)", m.Structure, m.Orientation)
}

// Tool - инструмент боковой панели
type Tool uint8

const (
	ToolNavigation Tool = iota
	ToolBuilding
	ToolTerrain
)

// String возвращает имя инструмента
func (t Tool) String() string {
	switch t {
	case ToolNavigation:
		return "navigation"
	case ToolBuilding:
		return "building"
	case ToolTerrain:
		return "terrain"
	default:
		return fmt.Sprintf("Tool(%d)", uint8(t))
	}
}

// ParseTool разбирает имя инструмента
func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "navigation", "focus":
		return ToolNavigation, nil
	case "building", "build":
		return ToolBuilding, nil
	case "terrain", "sculpt":
		return ToolTerrain, nil
	default:
		return ToolNavigation, fmt.Errorf("unknown tool %q", s)
	}
}

// Mode возвращает режим, в который переводит выбор инструмента
func (t Tool) Mode() Mode {
	switch t {
	case ToolBuilding:
		return PlaceMode{Structure: structure.Of(structure.TrainStation), Orientation: world.North}
	case ToolTerrain:
		return SculptMode{Radius: 0}
	default:
		return FocusMode{}
	}
}

// Selection - геометрия подсветки под курсором для текущего режима
type Selection interface {
	// Blocks возвращает подсвеченные блоки, обрезанные по полю
	Blocks(anchor world.Block, board physics.Rect) []world.Block
	// Vertices возвращает подсвеченные узлы, обрезанные по полю
	Vertices(anchor world.Vertex, terrain *world.Heightfield) []world.Vertex
}

// SelectNone - без подсветки
type SelectNone struct{}

// SelectBlocks - прямоугольник блоков (площадь размещения с учётом ориентации)
type SelectBlocks struct {
	W, H int
}

// SelectVertices - квадрат узлов радиуса Radius вокруг якоря
type SelectVertices struct {
	Radius int
}

// SelectionFor возвращает подсветку для режима
func SelectionFor(m Mode) Selection {
	switch m := m.(type) {
	case PlaceMode:
		w, h := m.Structure.Size()
		w, h = world.Oriented(w, h, m.Orientation)
		return SelectBlocks{W: w, H: h}
	case SculptMode:
		return SelectVertices{Radius: m.Radius}
	default:
		return SelectNone{}
	}
}

func (SelectNone) Blocks(world.Block, physics.Rect) []world.Block { return nil }

func (SelectNone) Vertices(world.Vertex, *world.Heightfield) []world.Vertex { return nil }

func (s SelectBlocks) Blocks(anchor world.Block, board physics.Rect) []world.Block {
	area := physics.NewRect(anchor.X, anchor.Y, s.W, s.H).Clip(board)
	cells := area.Cells()
	out := make([]world.Block, 0, len(cells))
	for _, c := range cells {
		out = append(out, world.BlockAt(c))
	}
	return out
}

func (SelectBlocks) Vertices(world.Vertex, *world.Heightfield) []world.Vertex { return nil }

func (SelectVertices) Blocks(world.Block, physics.Rect) []world.Block { return nil }

func (s SelectVertices) Vertices(anchor world.Vertex, terrain *world.Heightfield) []world.Vertex {
	out := make([]world.Vertex, 0, (2*s.Radius+1)*(2*s.Radius+1))
	for y := anchor.Y - s.Radius; y <= anchor.Y+s.Radius; y++ {
		for x := anchor.X - s.Radius; x <= anchor.X+s.Radius; x++ {
			v := world.Vertex{X: x, Y: y}
			if terrain.InBounds(v) {
				out = append(out, v)
			}
		}
	}
	return out
}
