package game

import (
	"github.com/annel0/isocity/internal/iso"
	"github.com/annel0/isocity/internal/vec"
	"github.com/annel0/isocity/internal/world"
)

// HitTester определяет блок под пикселем окна и проецирует узлы на экран
type HitTester struct {
	viewport *iso.Viewport
}

// NewHitTester создаёт определитель блоков для области отображения
func NewHitTester(viewport *iso.Viewport) *HitTester {
	return &HitTester{viewport: viewport}
}

// Viewport возвращает область отображения
func (h *HitTester) Viewport() *iso.Viewport {
	return h.viewport
}

// BlockUnder возвращает блок под пикселем окна.
// Отрицательные координаты мира означают "вне поля"; иначе координаты
// отбрасывают дробную часть. Блоки за дальним краем поля возвращаются как есть.
func (h *HitTester) BlockUnder(focal iso.WorldPoint, px vec.Vec2) (world.Block, bool) {
	p := h.viewport.ToWorld(focal, px)
	if p.X < 0 || p.Y < 0 {
		return world.Block{}, false
	}
	return world.Block{X: int(p.X), Y: int(p.Y)}, true
}

// VertexPixel возвращает пиксель окна, в который проецируется узел с его высотой
func (h *HitTester) VertexPixel(focal iso.WorldPoint, v world.Vertex, height world.Height) vec.Vec2 {
	return h.viewport.ToViewport(focal, iso.WorldPoint{X: float64(v.X), Y: float64(v.Y), H: int(height)})
}
