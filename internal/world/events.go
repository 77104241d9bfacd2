package world

import (
	"strconv"
)

// EventType определяет тип события изменения мира
type EventType uint8

const (
	EventTypeTerrainRaised   EventType = iota // Подъём рельефа
	EventTypeTerrainLowered                   // Опускание рельефа
	EventTypeStructurePlaced                  // Размещение сооружения
)

// String возвращает имя типа события
func (t EventType) String() string {
	switch t {
	case EventTypeTerrainRaised:
		return "TerrainRaised"
	case EventTypeTerrainLowered:
		return "TerrainLowered"
	case EventTypeStructurePlaced:
		return "StructurePlaced"
	default:
		return "Unknown"
	}
}

// Event представляет собой интерфейс для всех событий мира
type Event interface {
	GetType() EventType
	// Attributes возвращает плоское описание события для шины и логов
	Attributes() map[string]string
}

// TerrainEvent описывает успешную операцию скульптора
type TerrainEvent struct {
	Edit Edit
}

// GetType возвращает тип события
func (e TerrainEvent) GetType() EventType {
	if e.Edit.Direction == Raise {
		return EventTypeTerrainRaised
	}
	return EventTypeTerrainLowered
}

// Attributes возвращает описание события
func (e TerrainEvent) Attributes() map[string]string {
	return map[string]string{
		"vertex_x": strconv.Itoa(e.Edit.Origin.X),
		"vertex_y": strconv.Itoa(e.Edit.Origin.Y),
		"changed":  strconv.Itoa(len(e.Edit.Changes)),
	}
}

// PlacementEvent описывает успешное размещение сооружения
type PlacementEvent struct {
	Index     int
	Placement Placement
}

// GetType возвращает тип события
func (e PlacementEvent) GetType() EventType {
	return EventTypeStructurePlaced
}

// Attributes возвращает описание события
func (e PlacementEvent) Attributes() map[string]string {
	w, h := e.Placement.EffectiveFootprint()
	return map[string]string{
		"index":       strconv.Itoa(e.Index),
		"structure":   e.Placement.Structure.String(),
		"orientation": e.Placement.Orientation.String(),
		"origin_x":    strconv.Itoa(e.Placement.Origin.X),
		"origin_y":    strconv.Itoa(e.Placement.Origin.Y),
		"width":       strconv.Itoa(w),
		"height":      strconv.Itoa(h),
	}
}
