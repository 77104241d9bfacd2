package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/annel0/isocity/internal/game"
	"github.com/annel0/isocity/internal/iso"
	"github.com/annel0/isocity/internal/world"
)

// renderMap рисует видимую часть поля построчно: вода "~", суша - наибольшая
// высота углов блока, сооружение - первая буква имени в верхнем регистре.
func renderMap(s *game.Session, vp *iso.Viewport) string {
	board := s.Board()
	w, h := board.Size()
	vis := vp.VisibleBounds(s.FocalPoint())

	minX := clamp(int(math.Floor(vis.Min.X)), 0, w)
	minY := clamp(int(math.Floor(vis.Min.Y)), 0, h)
	maxX := clamp(int(math.Ceil(vis.Max.X)), 0, w)
	maxY := clamp(int(math.Ceil(vis.Max.Y)), 0, h)

	var sb strings.Builder
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			sb.WriteByte(blockGlyph(board, world.Block{X: x, Y: y}))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "blocks x %d..%d, y %d..%d; focus %v; mode %s; structures %d\n",
		minX, maxX-1, minY, maxY-1, s.Focal(), s.Mode(), board.Structures().Len())
	return sb.String()
}

func blockGlyph(board *world.Board, b world.Block) byte {
	if st, ok := board.StructureAt(b); ok {
		return strings.ToUpper(st.Kind.String())[0]
	}
	if board.LandType(b) == world.LandWater {
		return '~'
	}

	var peak world.Height
	for _, c := range b.Corners() {
		if hv := board.VertexHeight(c); hv > peak {
			peak = hv
		}
	}
	if peak > 9 {
		return '+'
	}
	return '0' + byte(peak)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
