package structure

import (
	"fmt"
	"sort"
)

// Category группирует сооружения каталога
type Category uint8

const (
	CategoryNature Category = iota
	CategoryCity
	CategoryCivic
	CategoryResource
	CategoryTransport
	CategoryTerminal
	CategoryProduction
	CategoryRetail
)

// String возвращает строковое представление категории
func (c Category) String() string {
	switch c {
	case CategoryNature:
		return "nature"
	case CategoryCity:
		return "city"
	case CategoryCivic:
		return "civic"
	case CategoryResource:
		return "resource"
	case CategoryTransport:
		return "transport"
	case CategoryTerminal:
		return "terminal"
	case CategoryProduction:
		return "production"
	case CategoryRetail:
		return "retail"
	default:
		return "unknown"
	}
}

// Spec описывает сооружение каталога
type Spec struct {
	Kind     Kind
	Name     string
	Category Category
	Width    int // Номинальная ширина (вдоль X при ориентации North)
	Height   int // Номинальная высота (вдоль Y при ориентации North)
}

// Mineral определяет добываемый минерал для шахты
type Mineral uint8

const (
	NoMineral Mineral = iota
	Gold
	Silver
	Diamonds
)

// String возвращает строковое представление минерала
func (m Mineral) String() string {
	switch m {
	case Gold:
		return "gold"
	case Silver:
		return "silver"
	case Diamonds:
		return "diamonds"
	default:
		return "none"
	}
}

// ParseMineral разбирает имя минерала
func ParseMineral(s string) (Mineral, error) {
	switch s {
	case "", "none":
		return NoMineral, nil
	case "gold":
		return Gold, nil
	case "silver":
		return Silver, nil
	case "diamonds":
		return Diamonds, nil
	default:
		return NoMineral, fmt.Errorf("unknown mineral %q", s)
	}
}

// Structure представляет конкретное сооружение: вид плюс параметры вида.
// Mineral имеет смысл только для Mine.
type Structure struct {
	Kind    Kind
	Mineral Mineral
}

// Of создаёт сооружение без параметров
func Of(kind Kind) Structure {
	return Structure{Kind: kind}
}

// MineOf создаёт шахту для указанного минерала
func MineOf(mineral Mineral) Structure {
	return Structure{Kind: Mine, Mineral: mineral}
}

// Size возвращает номинальный размер сооружения
func (s Structure) Size() (int, int) {
	return Footprint(s.Kind)
}

// String возвращает имя сооружения
func (s Structure) String() string {
	if s.Kind == Mine && s.Mineral != NoMineral {
		return s.Kind.String() + "(" + s.Mineral.String() + ")"
	}
	return s.Kind.String()
}

// All возвращает описания каталога, отсортированные по виду
func All() []Spec {
	specs := make([]Spec, 0, len(registry))
	for _, spec := range registry {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Kind < specs[j].Kind })
	return specs
}

// ByName ищет сооружение по имени каталога
func ByName(name string) (Spec, bool) {
	for _, spec := range registry {
		if spec.Name == name {
			return spec, true
		}
	}
	return Spec{}, false
}

// Регистрируем весь каталог при импорте пакета
func init() {
	for _, spec := range []Spec{
		{Forest, "forest", CategoryNature, 1, 1},

		{CityRoad, "city_road", CategoryCity, 1, 1},
		{ApartmentBuilding, "apartment_building", CategoryCity, 1, 1},

		{CulturalCenter, "cultural_center", CategoryCivic, 1, 1},
		{TennisCourt, "tennis_court", CategoryCivic, 2, 2},
		{SwimmingPool, "swimming_pool", CategoryCivic, 2, 2},
		{SportsStadium, "sports_stadium", CategoryCivic, 2, 3},
		{RaceTrack, "race_track", CategoryCivic, 3, 3},
		{University, "university", CategoryCivic, 3, 3},
		{AmusementPark, "amusement_park", CategoryCivic, 5, 5},

		{LumberMill, "lumber_mill", CategoryResource, 4, 4},
		{ChemicalPlant, "chemical_plant", CategoryResource, 5, 5},
		{SteelMill, "steel_mill", CategoryResource, 5, 5},
		{Mine, "mine", CategoryResource, 2, 2},

		{Street, "street", CategoryTransport, 1, 1},
		{Rails, "rails", CategoryTransport, 1, 1},
		{Bridge, "bridge", CategoryTransport, 1, 1},
		{Tunnel, "tunnel", CategoryTransport, 1, 1},

		{TruckDepot, "truck_depot", CategoryTerminal, 1, 1},
		{TrainStation, "train_station", CategoryTerminal, 4, 2},
		{TrainPlatform, "train_platform", CategoryTerminal, 4, 1},
		{Harbor, "harbor", CategoryTerminal, 3, 3},
		{Airport, "airport", CategoryTerminal, 5, 5},

		{AutomobileFactory, "automobile_factory", CategoryProduction, 5, 5},
		{Woodshop, "woodshop", CategoryProduction, 4, 4},
		{ElectronicsFactory, "electronics_factory", CategoryProduction, 4, 4},
		{SportsEquipmentFactory, "sports_equipment_factory", CategoryProduction, 4, 4},
		{ToyFactory, "toy_factory", CategoryProduction, 4, 4},
		{JewelryFactory, "jewelry_factory", CategoryProduction, 3, 3},
		{Warehouse, "warehouse", CategoryProduction, 4, 4},
		{BuildingEquipmentFactory, "building_equipment_factory", CategoryProduction, 4, 4},
		{PaperFactory, "paper_factory", CategoryProduction, 4, 4},
		{PrintingPress, "printing_press", CategoryProduction, 4, 4},

		{ToyStore, "toy_store", CategoryRetail, 2, 2},
		{SportingGoodsStore, "sporting_goods_store", CategoryRetail, 2, 2},
		{FurnitureStore, "furniture_store", CategoryRetail, 2, 2},
		{Jeweler, "jeweler", CategoryRetail, 2, 2},
		{ElectronicsStore, "electronics_store", CategoryRetail, 2, 2},
		{CarDealership, "car_dealership", CategoryRetail, 2, 2},
		{BuildingEquipmentStore, "building_equipment_store", CategoryRetail, 3, 3},
		{StationaryStore, "stationary_store", CategoryRetail, 2, 2},
	} {
		Register(spec)
	}
}
