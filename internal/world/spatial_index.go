package world

import (
	"fmt"

	"github.com/annel0/isocity/internal/physics"
)

// noOccupant отмечает свободный блок
const noOccupant int32 = -1

// OccupancyIndex отображает блок на индекс размещения, которое его покрывает.
// Индекс не владеет размещениями: он хранит только номер в списке реестра.
type OccupancyIndex struct {
	width  int
	height int
	cells  []int32
	filled int // Количество занятых блоков
}

// NewOccupancyIndex создаёт пустой индекс для поля width x height блоков
func NewOccupancyIndex(width, height int) *OccupancyIndex {
	cells := make([]int32, width*height)
	for i := range cells {
		cells[i] = noOccupant
	}

	return &OccupancyIndex{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func (oi *OccupancyIndex) index(b Block) int {
	if b.X < 0 || b.Y < 0 || b.X >= oi.width || b.Y >= oi.height {
		panic(fmt.Sprintf("world: блок %v вне индекса %dx%d", b, oi.width, oi.height))
	}
	return b.Y*oi.width + b.X
}

// Get возвращает индекс размещения в блоке, если он занят
func (oi *OccupancyIndex) Get(b Block) (int, bool) {
	idx := oi.cells[oi.index(b)]
	if idx == noOccupant {
		return 0, false
	}
	return int(idx), true
}

// Set записывает индекс размещения в блок, перезаписывая прежнего владельца
func (oi *OccupancyIndex) Set(b Block, placement int) {
	i := oi.index(b)
	if oi.cells[i] == noOccupant {
		oi.filled++
	}
	oi.cells[i] = int32(placement)
}

// Fill записывает индекс размещения во все блоки прямоугольника
func (oi *OccupancyIndex) Fill(r physics.Rect, placement int) {
	for _, cell := range r.Cells() {
		oi.Set(BlockAt(cell), placement)
	}
}

// FirstOccupied возвращает первый (построчно) занятый блок прямоугольника
func (oi *OccupancyIndex) FirstOccupied(r physics.Rect) (Block, int, bool) {
	for _, cell := range r.Cells() {
		b := BlockAt(cell)
		if idx, ok := oi.Get(b); ok {
			return b, idx, true
		}
	}
	return Block{}, 0, false
}

// Occupied возвращает уникальные индексы размещений в прямоугольнике в порядке обхода
func (oi *OccupancyIndex) Occupied(r physics.Rect) []int {
	seen := make(map[int]struct{})
	result := make([]int, 0)

	for _, cell := range r.Cells() {
		if idx, ok := oi.Get(BlockAt(cell)); ok {
			if _, wasSeen := seen[idx]; !wasSeen {
				seen[idx] = struct{}{}
				result = append(result, idx)
			}
		}
	}

	return result
}

// Count возвращает количество занятых блоков
func (oi *OccupancyIndex) Count() int {
	return oi.filled
}

// GetStats возвращает статистику индекса
func (oi *OccupancyIndex) GetStats() string {
	total := oi.width * oi.height
	ratio := 0.0
	if total > 0 {
		ratio = float64(oi.filled) / float64(total) * 100
	}
	return fmt.Sprintf("OccupancyIndex Stats: %d/%d blocks occupied (%.2f%%)", oi.filled, total, ratio)
}
