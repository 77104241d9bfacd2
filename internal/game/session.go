package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/annel0/isocity/internal/eventbus"
	"github.com/annel0/isocity/internal/iso"
	"github.com/annel0/isocity/internal/logging"
	"github.com/annel0/isocity/internal/world"
	"github.com/annel0/isocity/internal/world/structure"
)

const (
	tracerName  = "github.com/annel0/isocity/internal/game"
	eventSource = "session"
)

// Options задаёт начальное состояние и зависимости сессии
type Options struct {
	Focal          world.Vertex        // Начальная фокальная точка
	Tool           Tool                // Начальный инструмент
	Bus            eventbus.EventBus   // Шина событий мира (может быть nil)
	TracerProvider trace.TracerProvider // По умолчанию глобальный провайдер
}

// DefaultOptions возвращает параметры новой игры
func DefaultOptions() Options {
	return Options{
		Focal: world.Vertex{X: 10, Y: 20},
		Tool:  ToolNavigation,
	}
}

// Session - явный контекст игры: поле, фокальная точка, подсветка и режим.
// Каждое входное событие порождает не больше одного изменения, которое
// применяется до следующей отрисовки; доступ однопоточный.
type Session struct {
	id           string
	board        *world.Board
	focal        world.Vertex
	highlight    world.Block
	hasHighlight bool
	mode         Mode

	bus    eventbus.EventBus
	tracer trace.Tracer
	log    *logging.Logger
}

// NewSession создаёт сессию над полем
func NewSession(board *world.Board, opts Options) *Session {
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	s := &Session{
		id:     uuid.NewString(),
		board:  board,
		focal:  opts.Focal,
		mode:   opts.Tool.Mode(),
		bus:    opts.Bus,
		tracer: tp.Tracer(tracerName),
		log:    logging.GetComponentLogger("game"),
	}

	if !board.Terrain().InBounds(s.focal) {
		w, h := board.Size()
		s.focal = world.Vertex{X: w / 2, Y: h / 2}
	}

	s.log.Info("🎮 Сессия %s: поле %s, фокус %v, режим %s", s.id, sizeString(board), s.focal, s.mode)
	return s
}

func sizeString(b *world.Board) string {
	w, h := b.Size()
	return fmt.Sprintf("%dx%d", w, h)
}

// ID возвращает идентификатор сессии
func (s *Session) ID() string { return s.id }

// Board возвращает поле сессии
func (s *Session) Board() *world.Board { return s.board }

// Focal возвращает фокальную точку
func (s *Session) Focal() world.Vertex { return s.focal }

// FocalPoint возвращает фокальную точку как точку мира с её реальной высотой
func (s *Session) FocalPoint() iso.WorldPoint {
	return iso.WorldPoint{
		X: float64(s.focal.X),
		Y: float64(s.focal.Y),
		H: int(s.board.VertexHeight(s.focal)),
	}
}

// Highlight возвращает подсвеченный блок
func (s *Session) Highlight() (world.Block, bool) { return s.highlight, s.hasHighlight }

// Mode возвращает текущий режим
func (s *Session) Mode() Mode { return s.mode }

// Selection возвращает геометрию подсветки текущего режима
func (s *Session) Selection() Selection { return SelectionFor(s.mode) }

// HighlightedBlocks возвращает подсвеченные блоки (для режима размещения)
func (s *Session) HighlightedBlocks() []world.Block {
	if !s.hasHighlight {
		return nil
	}
	return s.Selection().Blocks(s.highlight, s.board.Terrain().Bounds())
}

// HighlightedVertices возвращает подсвеченные узлы (для режима рельефа)
func (s *Session) HighlightedVertices() []world.Vertex {
	if !s.hasHighlight {
		return nil
	}
	return s.Selection().Vertices(s.highlight.Vertex(), s.board.Terrain())
}

// target выбирает цель действия: явный блок или подсвеченный
func (s *Session) target(at *world.Block) (world.Block, error) {
	b := s.highlight
	if at != nil {
		b = *at
	} else if !s.hasHighlight {
		return world.Block{}, ErrNoTarget
	}

	if !s.board.Terrain().ContainsBlock(b) {
		return b, fmt.Errorf("%v: %w", b, ErrOffBoard)
	}
	return b, nil
}

// Plan переводит действие в изменение, не трогая состояние
func (s *Session) Plan(action Action) (Mutation, error) {
	switch a := action.(type) {
	case Hover:
		if !a.OK || !s.board.Terrain().ContainsBlock(a.Block) {
			return SetHighlight{}, nil
		}
		return SetHighlight{Block: a.Block, OK: true}, nil

	case Focus:
		b, err := s.target(a.At)
		if err != nil {
			return nil, err
		}
		return SetFocus{Vertex: b.Vertex()}, nil

	case RaiseTerrain:
		b, err := s.target(a.At)
		if err != nil {
			return nil, err
		}
		return Sculpt{Vertex: b.Vertex(), Direction: world.Raise}, nil

	case LowerTerrain:
		b, err := s.target(a.At)
		if err != nil {
			return nil, err
		}
		return Sculpt{Vertex: b.Vertex(), Direction: world.Lower}, nil

	case PlaceStructure:
		m, ok := s.mode.(PlaceMode)
		if !ok {
			return NoOp{Reason: "no structure selected"}, nil
		}
		b, err := s.target(a.At)
		if err != nil {
			return nil, err
		}
		return Place{Structure: m.Structure, Orientation: m.Orientation, Origin: b}, nil

	case RotateStructure:
		m, ok := s.mode.(PlaceMode)
		if !ok {
			return NoOp{Reason: "nothing to rotate"}, nil
		}
		return SetMode{Mode: PlaceMode{Structure: m.Structure, Orientation: m.Orientation.Rotate()}}, nil

	case SelectTool:
		return SetMode{Mode: a.Tool.Mode()}, nil

	case SelectStructure:
		if !structureKnown(a.Structure) {
			return nil, fmt.Errorf("%v: %w", a.Structure.Kind, ErrUnknownStructure)
		}
		orientation := world.North
		if m, ok := s.mode.(PlaceMode); ok {
			orientation = m.Orientation
		}
		return SetMode{Mode: PlaceMode{Structure: a.Structure, Orientation: orientation}}, nil

	default:
		return nil, fmt.Errorf("unsupported action %T", action)
	}
}

// Commit применяет изменение к сессии
func (s *Session) Commit(ctx context.Context, m Mutation) error {
	switch m := m.(type) {
	case SetHighlight:
		s.highlight, s.hasHighlight = m.Block, m.OK

	case SetFocus:
		s.focal = m.Vertex

	case Sculpt:
		edit, err := s.board.Sculpt(m.Vertex, m.Direction)
		if len(edit.Changes) > 0 {
			// При частичной фиксации изменения записаны и при ошибке
			s.publish(ctx, world.TerrainEvent{Edit: edit})
		}
		if err != nil {
			return err
		}

	case Place:
		idx, err := s.board.Place(m.Structure, m.Orientation, m.Origin)
		if err != nil {
			return err
		}
		p, _ := s.board.Structures().Placement(idx)
		s.publish(ctx, world.PlacementEvent{Index: idx, Placement: p})

	case SetMode:
		s.mode = m.Mode

	case NoOp:
		s.log.Trace("Пропуск: %s", m.Reason)

	default:
		return fmt.Errorf("unsupported mutation %T", m)
	}
	return nil
}

// Apply планирует и применяет действие. Ошибки восстанавливаемые:
// при ошибке состояние не меняется (кроме частичной фиксации скульптора).
func (s *Session) Apply(ctx context.Context, action Action) (Mutation, error) {
	ctx, span := s.tracer.Start(ctx, "session.apply", trace.WithAttributes(
		attribute.String("session.id", s.id),
		attribute.String("action", action.Name()),
		attribute.String("mode", s.mode.String()),
	))
	defer span.End()

	m, err := s.Plan(action)
	if err == nil {
		span.SetAttributes(attribute.String("mutation", m.String()))
		err = s.Commit(ctx, m)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Debug("Действие %s отклонено: %v", action.Name(), err)
		return m, err
	}

	if _, quiet := m.(SetHighlight); !quiet {
		s.log.Debug("Действие %s → %s", action.Name(), m)
	}
	return m, nil
}

// publish отправляет событие мира в шину, если она подключена
func (s *Session) publish(ctx context.Context, ev world.Event) {
	if s.bus == nil {
		return
	}

	env := eventbus.NewEnvelope(eventSource, ev.GetType().String(), ev.Attributes())
	env.CorrelationID = s.id
	if err := s.bus.Publish(ctx, env); err != nil {
		s.log.Warn("Не удалось опубликовать %s: %v", env.EventType, err)
	}
}

func structureKnown(st structure.Structure) bool {
	return structure.IsValidKind(st.Kind)
}
