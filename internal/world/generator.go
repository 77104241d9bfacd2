package world

import (
	"math"

	"github.com/annel0/isocity/internal/util"
)

// Generator заполняет поле высот начальными значениями
type Generator interface {
	Generate(hf *Heightfield)
}

// FixtureGenerator воспроизводит детерминированный стартовый рельеф:
// внутренние узлы на единицу выше воды, периметр на уровне воды,
// плюс холм из двух ступеней в районе (5..9, 3..6).
type FixtureGenerator struct{}

// fixturePatches - прямоугольники узлов, поднимаемые на единицу поверх базового уровня
var fixturePatches = [][4]int{
	{5, 3, 9, 6}, // minX, minY, maxX, maxY (включительно)
	{7, 4, 8, 5},
}

// Generate заполняет поле стартовым рельефом
func (FixtureGenerator) Generate(hf *Heightfield) {
	w, h := hf.Size()
	hf.ForEachVertex(func(v Vertex, _ Height) {
		hf.SetHeight(v, WaterLevel)
	})

	for y := 1; y < h; y++ {
		for x := 1; x < w; x++ {
			hf.SetHeight(Vertex{X: x, Y: y}, WaterLevel+1)
		}
	}

	// На маленьком поле участки, задевающие периметр, пропускаются
	for _, p := range fixturePatches {
		for y := p[1]; y <= p[3]; y++ {
			for x := p[0]; x <= p[2]; x++ {
				v := Vertex{X: x, Y: y}
				if !hf.InBounds(v) || hf.IsEdge(v) {
					continue
				}
				hf.SetHeight(v, hf.Height(v)+1)
			}
		}
	}

	// Обрезанный холм может оказаться вплотную к воде
	relaxSlopes(hf)
}

// NoiseGenerator строит рельеф по шуму Перлина, затем сглаживает его
// так, чтобы соседние узлы отличались не больше чем на 1, а периметр был водой.
type NoiseGenerator struct {
	Seed  int64   // Сид для генерации шума
	Scale float64 // Масштаб шума (меньше - более пологий рельеф)
}

// NewNoiseGenerator создаёт генератор с указанным сидом и масштабом
func NewNoiseGenerator(seed int64, scale float64) *NoiseGenerator {
	if scale <= 0 {
		scale = 0.05
	}
	return &NoiseGenerator{Seed: seed, Scale: scale}
}

// Generate заполняет поле рельефом по шуму
func (g *NoiseGenerator) Generate(hf *Heightfield) {
	noise := util.NewNoise(g.Seed)

	hf.ForEachVertex(func(v Vertex, _ Height) {
		if hf.IsEdge(v) {
			hf.SetHeight(v, WaterLevel)
			return
		}
		value := noise.At(float64(v.X)*g.Scale, float64(v.Y)*g.Scale)
		target := Height(math.Round(value * float64(MaxHeight)))
		if target < MinHeight {
			target = MinHeight
		}
		if target > MaxHeight {
			target = MaxHeight
		}
		hf.SetHeight(v, target)
	})

	relaxSlopes(hf)
}

// relaxSlopes опускает узлы, пока каждый не превышает минимум соседей больше чем на 1.
// Высоты только уменьшаются, поэтому процесс конечен.
func relaxSlopes(hf *Heightfield) {
	for changed := true; changed; {
		changed = false
		hf.ForEachVertex(func(v Vertex, h Height) {
			for _, n := range hf.Neighbours(v) {
				limit := hf.Height(n) + 1
				if h > limit {
					h = limit
					hf.SetHeight(v, h)
					changed = true
				}
			}
		})
	}
}
