package world

import (
	"fmt"

	"github.com/annel0/isocity/internal/physics"
	"github.com/annel0/isocity/internal/world/structure"
)

// Placement описывает размещённое сооружение
type Placement struct {
	Structure   structure.Structure
	Orientation Orientation
	Origin      Block // Левый верхний блок области
}

// EffectiveFootprint возвращает размер с учётом ориентации (E/W меняют стороны)
func (p Placement) EffectiveFootprint() (int, int) {
	w, h := p.Structure.Size()
	return Oriented(w, h, p.Orientation)
}

// Bounds возвращает прямоугольник блоков, занимаемых размещением
func (p Placement) Bounds() physics.Rect {
	w, h := p.EffectiveFootprint()
	return physics.NewRect(p.Origin.X, p.Origin.Y, w, h)
}

// Registry владеет списком размещений и индексом занятости блоков.
// Размещения только добавляются: пути удаления нет.
type Registry struct {
	bounds     physics.Rect
	placements []Placement
	occupancy  *OccupancyIndex
}

// NewRegistry создаёт пустой реестр для поля width x height блоков
func NewRegistry(width, height int) *Registry {
	return &Registry{
		bounds:     physics.NewRect(0, 0, width, height),
		placements: make([]Placement, 0),
		occupancy:  NewOccupancyIndex(width, height),
	}
}

// Check проверяет, можно ли разместить сооружение, ничего не изменяя
func (r *Registry) Check(s structure.Structure, o Orientation, origin Block) error {
	if !structure.IsValidKind(s.Kind) {
		return fmt.Errorf("place %v: unknown structure kind %d", origin, s.Kind)
	}

	area := Placement{Structure: s, Orientation: o, Origin: origin}.Bounds()
	if !r.bounds.ContainsRect(area) {
		return fmt.Errorf("place %s at %v (%dx%d): %w", s, origin, area.Width, area.Height, ErrOutOfBounds)
	}

	if b, idx, occupied := r.occupancy.FirstOccupied(area); occupied {
		return &CollisionError{Block: b, Placement: idx}
	}

	return nil
}

// Place добавляет размещение и записывает его индекс во все блоки области.
// При пересечении с другим размещением или выходе за поле ничего не записывается.
func (r *Registry) Place(s structure.Structure, o Orientation, origin Block) (int, error) {
	if err := r.Check(s, o, origin); err != nil {
		return 0, err
	}

	idx := len(r.placements)
	placement := Placement{Structure: s, Orientation: o, Origin: origin}
	r.placements = append(r.placements, placement)
	r.occupancy.Fill(placement.Bounds(), idx)

	return idx, nil
}

// StructureAt возвращает сооружение, занимающее блок
func (r *Registry) StructureAt(b Block) (structure.Structure, bool) {
	p, _, ok := r.PlacementAt(b)
	if !ok {
		return structure.Structure{}, false
	}
	return p.Structure, true
}

// PlacementAt возвращает размещение и его индекс для блока
func (r *Registry) PlacementAt(b Block) (Placement, int, bool) {
	if !r.bounds.IsPointInside(b.Vec()) {
		return Placement{}, 0, false
	}
	idx, ok := r.occupancy.Get(b)
	if !ok {
		return Placement{}, 0, false
	}
	return r.placements[idx], idx, true
}

// Placement возвращает размещение по индексу
func (r *Registry) Placement(idx int) (Placement, bool) {
	if idx < 0 || idx >= len(r.placements) {
		return Placement{}, false
	}
	return r.placements[idx], true
}

// Placements возвращает копию списка размещений
func (r *Registry) Placements() []Placement {
	out := make([]Placement, len(r.placements))
	copy(out, r.placements)
	return out
}

// Len возвращает количество размещений
func (r *Registry) Len() int {
	return len(r.placements)
}

// Occupancy возвращает индекс занятости (только для чтения)
func (r *Registry) Occupancy() *OccupancyIndex {
	return r.occupancy
}
