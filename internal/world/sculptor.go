package world

import (
	"fmt"
	"strings"
)

// Direction задаёт направление изменения высоты
type Direction int8

const (
	Lower Direction = -1
	Raise Direction = 1
)

// String возвращает строковое представление направления
func (d Direction) String() string {
	if d == Raise {
		return "raise"
	}
	return "lower"
}

// CommitPolicy определяет, что делать с уже выполненными подшагами при ошибке
type CommitPolicy uint8

const (
	// CommitAtomic проверяет всю цепочку и ничего не записывает при ошибке
	CommitAtomic CommitPolicy = iota
	// CommitPartial записывает завершённые подшаги даже при ошибке
	CommitPartial
)

// String возвращает строковое представление политики
func (p CommitPolicy) String() string {
	switch p {
	case CommitAtomic:
		return "atomic"
	case CommitPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// ParseCommitPolicy разбирает название политики из конфигурации
func ParseCommitPolicy(s string) (CommitPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "atomic":
		return CommitAtomic, nil
	case "partial":
		return CommitPartial, nil
	default:
		return CommitAtomic, fmt.Errorf("unknown commit policy %q", s)
	}
}

// maxSculptFrames ограничивает глубину цепочки: каждый уровень строго
// уменьшает (увеличивает) исходную высоту, поэтому уровней не больше диапазона высот.
const maxSculptFrames = int(MaxHeight-MinHeight) + 1

// VertexChange описывает одну запись высоты
type VertexChange struct {
	Vertex Vertex
	From   Height
	To     Height
}

// Edit описывает результат операции скульптора
type Edit struct {
	Origin    Vertex
	Direction Direction
	Changes   []VertexChange // Записанные узлы в порядке фиксации
}

// Sculptor изменяет высоту узла ровно на единицу, сохраняя инвариант:
// высоты соседних по Чебышёву узлов отличаются не больше чем на 1.
type Sculptor struct {
	field  *Heightfield
	policy CommitPolicy
}

// NewSculptor создаёт скульптор над указанным полем
func NewSculptor(field *Heightfield, policy CommitPolicy) *Sculptor {
	return &Sculptor{
		field:  field,
		policy: policy,
	}
}

// Policy возвращает текущую политику фиксации
func (s *Sculptor) Policy() CommitPolicy {
	return s.policy
}

// Raise поднимает узел на единицу, предварительно поднимая более низких соседей
func (s *Sculptor) Raise(v Vertex) (Edit, error) {
	return s.Apply(v, Raise)
}

// Lower опускает узел на единицу, предварительно опуская более высоких соседей
func (s *Sculptor) Lower(v Vertex) (Edit, error) {
	return s.Apply(v, Lower)
}

// sculptFrame - кадр явного стека, заменяющего рекурсию
type sculptFrame struct {
	vertex     Vertex
	prior      Height // Высота узла до изменения (на момент входа в кадр)
	next       int    // Индекс следующего проверяемого соседа
	neighbours []Vertex
}

// Apply выполняет подъём или опускание узла.
//
// Кадр для узла сначала проверяет край поля, затем предел высоты. Потом соседи
// обходятся построчно; каждый сосед ниже (выше) исходной высоты узла сначала
// обрабатывается своим кадром. Когда все соседи пройдены, узел меняется на единицу.
// Все чтения идут через черновик, поэтому план видит собственные записи.
func (s *Sculptor) Apply(origin Vertex, dir Direction) (Edit, error) {
	edit := Edit{Origin: origin, Direction: dir}
	if !s.field.InBounds(origin) {
		return edit, fmt.Errorf("%s %v: %w", dir, origin, ErrOutOfBounds)
	}

	overlay := make(map[Vertex]Height)
	read := func(v Vertex) Height {
		if h, ok := overlay[v]; ok {
			return h
		}
		return s.field.Height(v)
	}

	var changes []VertexChange
	stack := make([]sculptFrame, 0, maxSculptFrames)

	push := func(v Vertex) error {
		if s.field.IsEdge(v) {
			return fmt.Errorf("%s %v: %w", dir, v, ErrImmutableEdge)
		}
		prior := read(v)
		if dir == Raise && prior >= MaxHeight {
			return fmt.Errorf("%s %v: %w", dir, v, ErrAtMaxHeight)
		}
		if dir == Lower && prior <= MinHeight {
			return fmt.Errorf("%s %v: %w", dir, v, ErrAtMinHeight)
		}
		if len(stack) >= maxSculptFrames {
			return fmt.Errorf("%s %v: %w", dir, v, ErrSculptDepth)
		}
		stack = append(stack, sculptFrame{
			vertex:     v,
			prior:      prior,
			neighbours: s.field.Neighbours(v),
		})
		return nil
	}

	err := push(origin)
	for err == nil && len(stack) > 0 {
		top := &stack[len(stack)-1]

		descended := false
		for top.next < len(top.neighbours) {
			n := top.neighbours[top.next]
			top.next++
			if needsPrerequisite(dir, read(n), top.prior) {
				err = push(n)
				descended = true
				break
			}
		}
		if descended {
			continue
		}

		to := Height(int(top.prior) + int(dir))
		overlay[top.vertex] = to
		changes = append(changes, VertexChange{Vertex: top.vertex, From: top.prior, To: to})
		stack = stack[:len(stack)-1]
	}

	if err != nil && s.policy == CommitAtomic {
		return edit, err
	}

	for _, c := range changes {
		s.field.SetHeight(c.Vertex, c.To)
	}
	edit.Changes = changes
	return edit, err
}

// needsPrerequisite сообщает, что соседа нужно изменить раньше узла
func needsPrerequisite(dir Direction, neighbour, prior Height) bool {
	if dir == Raise {
		return neighbour < prior
	}
	return neighbour > prior
}
