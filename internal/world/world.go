package world

import (
	"github.com/annel0/isocity/internal/logging"
	"github.com/annel0/isocity/internal/world/structure"
)

// Board объединяет поле высот, скульптор и реестр сооружений одной игровой сессии.
// Доступ однопоточный: одно изменение на входное событие, до следующей отрисовки.
type Board struct {
	terrain    *Heightfield
	sculptor   *Sculptor
	structures *Registry
	log        *logging.Logger
}

// NewBoard создаёт поле width x height блоков, заполненное генератором
func NewBoard(width, height int, gen Generator, policy CommitPolicy) *Board {
	terrain := NewHeightfield(width, height)
	if gen == nil {
		gen = FixtureGenerator{}
	}
	gen.Generate(terrain)

	return &Board{
		terrain:    terrain,
		sculptor:   NewSculptor(terrain, policy),
		structures: NewRegistry(width, height),
		log:        logging.GetComponentLogger("world"),
	}
}

// Size возвращает размер поля в блоках
func (b *Board) Size() (int, int) {
	return b.terrain.Size()
}

// Terrain возвращает поле высот
func (b *Board) Terrain() *Heightfield {
	return b.terrain
}

// Structures возвращает реестр сооружений
func (b *Board) Structures() *Registry {
	return b.structures
}

// Policy возвращает политику фиксации скульптора
func (b *Board) Policy() CommitPolicy {
	return b.sculptor.Policy()
}

// VertexHeight возвращает высоту узла
func (b *Board) VertexHeight(v Vertex) Height {
	return b.terrain.Height(v)
}

// LandType возвращает тип поверхности блока
func (b *Board) LandType(block Block) LandType {
	return b.terrain.LandType(block)
}

// StructureAt возвращает сооружение в блоке
func (b *Board) StructureAt(block Block) (structure.Structure, bool) {
	return b.structures.StructureAt(block)
}

// Sculpt поднимает или опускает узел
func (b *Board) Sculpt(v Vertex, dir Direction) (Edit, error) {
	edit, err := b.sculptor.Apply(v, dir)
	if err != nil {
		b.log.Debug("%s %v не выполнено: %v (записано узлов: %d)", dir, v, err, len(edit.Changes))
		return edit, err
	}
	b.log.Trace("%s %v: изменено узлов %d", dir, v, len(edit.Changes))
	return edit, nil
}

// Raise поднимает узел на единицу
func (b *Board) Raise(v Vertex) (Edit, error) {
	return b.Sculpt(v, Raise)
}

// Lower опускает узел на единицу
func (b *Board) Lower(v Vertex) (Edit, error) {
	return b.Sculpt(v, Lower)
}

// Place размещает сооружение
func (b *Board) Place(s structure.Structure, o Orientation, origin Block) (int, error) {
	idx, err := b.structures.Place(s, o, origin)
	if err != nil {
		b.log.Debug("Размещение %s в %v отклонено: %v", s, origin, err)
		return 0, err
	}
	b.log.Trace("Размещено %s (%s) в %v, индекс %d", s, o, origin, idx)
	return idx, nil
}
