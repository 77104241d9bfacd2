package structure

import "fmt"

var registry = make(map[Kind]Spec)

// Register добавляет описание сооружения в каталог
func Register(spec Spec) {
	registry[spec.Kind] = spec
}

// Get возвращает описание для указанного вида
func Get(kind Kind) (Spec, bool) {
	spec, exists := registry[kind]
	return spec, exists
}

// MustGet возвращает описание или паникует для незарегистрированного вида.
// Каталог закрыт, поэтому отсутствие записи означает ошибку программиста.
func MustGet(kind Kind) Spec {
	spec, exists := registry[kind]
	if !exists {
		panic(fmt.Sprintf("structure: вид %d не зарегистрирован", kind))
	}
	return spec
}

// IsValidKind проверяет, является ли вид допустимым
func IsValidKind(kind Kind) bool {
	_, exists := registry[kind]
	return exists
}

// Footprint возвращает номинальный размер (ширина, высота) в блоках
func Footprint(kind Kind) (int, int) {
	spec := MustGet(kind)
	return spec.Width, spec.Height
}

// Kind представляет идентификатор вида сооружения
type Kind uint16

// Константы видов сооружений
const (
	// Природа
	Forest Kind = iota // 0

	// Город (с промежутками между категориями для расширения)
	CityRoad          Kind = 100
	ApartmentBuilding Kind = 101

	// Город, строится игроком
	CulturalCenter Kind = 200
	TennisCourt    Kind = 201
	SwimmingPool   Kind = 202
	SportsStadium  Kind = 203
	RaceTrack      Kind = 204
	University     Kind = 205
	AmusementPark  Kind = 206

	// Ресурсы
	LumberMill    Kind = 300
	ChemicalPlant Kind = 301
	SteelMill     Kind = 302
	Mine          Kind = 303

	// Транспорт
	Street Kind = 400
	Rails  Kind = 401
	Bridge Kind = 402
	Tunnel Kind = 403

	// Терминалы
	TruckDepot    Kind = 500
	TrainStation  Kind = 501
	TrainPlatform Kind = 502
	Harbor        Kind = 503
	Airport       Kind = 504

	// Производство
	AutomobileFactory        Kind = 600
	Woodshop                 Kind = 601
	ElectronicsFactory       Kind = 602
	SportsEquipmentFactory   Kind = 603
	ToyFactory               Kind = 604
	JewelryFactory           Kind = 605
	Warehouse                Kind = 606
	BuildingEquipmentFactory Kind = 607
	PaperFactory             Kind = 608
	PrintingPress            Kind = 609

	// Розница
	ToyStore               Kind = 700
	SportingGoodsStore     Kind = 701
	FurnitureStore         Kind = 702
	Jeweler                Kind = 703
	ElectronicsStore       Kind = 704
	CarDealership          Kind = 705
	BuildingEquipmentStore Kind = 706
	StationaryStore        Kind = 707
)

// String возвращает имя вида из каталога
func (k Kind) String() string {
	if spec, ok := Get(k); ok {
		return spec.Name
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
