package tilegrid

import (
	"fmt"
	"io"
)

// Render glyphs. Two columns per tile keep the console aspect ratio near
// square.
const (
	glyphStart   = "S "
	glyphOpen    = "  "
	glyphBlocked = "██"
	glyphPath    = "##"
)

// Render writes the bare grid to w: the origin as "S ", blocked tiles as
// solid blocks, open tiles as spaces.
func (m *TileMap) Render(w io.Writer) error {
	return m.render(w, nil)
}

// RenderPath writes the grid with every tile in path highlighted as "##".
// The origin keeps its "S " marker even when on the path.
func (m *TileMap) RenderPath(w io.Writer, path map[Vec2]struct{}) error {
	return m.render(w, path)
}

func (m *TileMap) render(w io.Writer, path map[Vec2]struct{}) error {
	for y := int64(0); y < m.Height; y++ {
		for x := int64(0); x < m.Width; x++ {
			pos := Vec2{X: x, Y: y}
			glyph := glyphOpen
			switch {
			case x == 0 && y == 0:
				glyph = glyphStart
			case pathContains(path, pos):
				glyph = glyphPath
			case m.At(pos) == KindBlocked:
				glyph = glyphBlocked
			}
			if _, err := io.WriteString(w, glyph); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

func pathContains(path map[Vec2]struct{}, pos Vec2) bool {
	if path == nil {
		return false
	}
	_, ok := path[pos]

	return ok
}
