package game

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/annel0/isocity/internal/world"
	"github.com/annel0/isocity/internal/world/structure"
)

// BlockRef - явная цель шага сценария
type BlockRef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Step - один шаг сценария ввода.
//
// Шаги окна: cursor_move, left_click, right_click (с x, y в пикселях), space.
// Шаги действий: tool (tool), structure (structure, mineral),
// focus, raise, lower, place (с block или по подсветке), rotate.
type Step struct {
	Type      string    `yaml:"type"`
	X         int       `yaml:"x,omitempty"`
	Y         int       `yaml:"y,omitempty"`
	Tool      string    `yaml:"tool,omitempty"`
	Structure string    `yaml:"structure,omitempty"`
	Mineral   string    `yaml:"mineral,omitempty"`
	Block     *BlockRef `yaml:"block,omitempty"`
}

// ParseScript разбирает YAML-список шагов
func ParseScript(data []byte) ([]Step, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, st := range steps {
		if _, _, err := st.decode(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return steps, nil
}

// LoadScript читает сценарий из файла
func LoadScript(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}

func (st Step) target() *world.Block {
	if st.Block == nil {
		return nil
	}
	return &world.Block{X: st.Block.X, Y: st.Block.Y}
}

// decode возвращает либо ввод окна, либо действие
func (st Step) decode() (*Input, Action, error) {
	switch st.Type {
	case "cursor_move", "move":
		return &Input{Kind: CursorMove, X: st.X, Y: st.Y}, nil, nil
	case "left_click", "click":
		return &Input{Kind: LeftClick, X: st.X, Y: st.Y}, nil, nil
	case "right_click":
		return &Input{Kind: RightClick, X: st.X, Y: st.Y}, nil, nil
	case "space":
		return &Input{Kind: PressSpace}, nil, nil

	case "tool":
		tool, err := ParseTool(st.Tool)
		if err != nil {
			return nil, nil, err
		}
		return nil, SelectTool{Tool: tool}, nil
	case "structure":
		spec, ok := structure.ByName(st.Structure)
		if !ok {
			return nil, nil, fmt.Errorf("%q: %w", st.Structure, ErrUnknownStructure)
		}
		s := structure.Of(spec.Kind)
		if st.Mineral != "" {
			mineral, err := structure.ParseMineral(st.Mineral)
			if err != nil {
				return nil, nil, err
			}
			s.Mineral = mineral
		}
		return nil, SelectStructure{Structure: s}, nil

	case "focus":
		return nil, Focus{At: st.target()}, nil
	case "raise":
		return nil, RaiseTerrain{At: st.target()}, nil
	case "lower":
		return nil, LowerTerrain{At: st.target()}, nil
	case "place":
		return nil, PlaceStructure{At: st.target()}, nil
	case "rotate":
		return nil, RotateStructure{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown step type %q", st.Type)
	}
}

// StepError описывает отклонённый шаг
type StepError struct {
	Step int // Номер шага, начиная с 1
	Err  error
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Err)
}

// ReplayReport подводит итог воспроизведения
type ReplayReport struct {
	Steps    int
	Applied  int // Шаги, приведшие к изменению
	Ignored  int // Шаги без изменения (ввод вне поля, NoOp)
	Rejected []StepError
}

// Replay подаёт шаги через контроллер в сессию. Отклонённые действия
// (коллизия, край поля, предел высоты) не прерывают воспроизведение.
func (c *Controller) Replay(ctx context.Context, steps []Step) (ReplayReport, error) {
	report := ReplayReport{Steps: len(steps)}

	for i, st := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		input, action, err := st.decode()
		if err != nil {
			return report, StepError{Step: i + 1, Err: err}
		}

		var m Mutation
		if input != nil {
			m, err = c.Handle(ctx, *input)
		} else {
			m, err = c.session.Apply(ctx, action)
		}

		switch {
		case err != nil:
			report.Rejected = append(report.Rejected, StepError{Step: i + 1, Err: err})
		case isNoOp(m):
			report.Ignored++
		default:
			report.Applied++
		}
	}
	return report, nil
}

func isNoOp(m Mutation) bool {
	_, ok := m.(NoOp)
	return ok || m == nil
}
