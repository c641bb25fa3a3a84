package world

import (
	"github.com/jakecoffman/cp"
)

// BuildSpace creates the static geometry of a level.
func BuildSpace(level *Level) *Space {
	s := NewSpace()
	if level == nil {
		return s
	}

	for i, layer := range level.Layers {
		if len(layer) != level.Width*level.Height || !level.layerHasPhysics(i) {
			continue
		}
		s.addLayerTiles(level, layer, level.layerCategory(i))
	}

	for _, seg := range level.Segments {
		s.AddSegment(seg.A.Vector(), seg.B.Vector(), seg.Radius, seg.Category)
	}

	// world bounds matching the level size
	size := level.Size()
	if size.X > 0 && size.Y > 0 {
		corners := []cp.Vector{{X: 0, Y: 0}, {X: size.X, Y: 0}, {X: size.X, Y: size.Y}, {X: 0, Y: size.Y}}
		for i := range corners {
			s.AddSegment(corners[i], corners[(i+1)%len(corners)], 0, LayerSolid)
		}
	}
	return s
}

// addLayerTiles merges contiguous solid tiles into larger rectangles so the
// space holds fewer static boxes. Ramps stay individual triangles.
func (s *Space) addLayerTiles(level *Level, layer []int, category uint) {
	w, h := level.Width, level.Height
	ts := level.Tile()
	processed := make([]bool, w*h)

	// bottom edge in world space of tile row y
	rowBottom := func(y int) float64 {
		return float64(h-1-y) * ts
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if processed[idx] {
				continue
			}
			tile := layer[idx]
			processed[idx] = true

			x0 := float64(x) * ts
			y0 := rowBottom(y)
			switch tile {
			case TileSolid:
			case TileRampRight:
				s.AddPolygon([]cp.Vector{{X: x0, Y: y0}, {X: x0 + ts, Y: y0}, {X: x0 + ts, Y: y0 + ts}}, category)
				continue
			case TileRampLeft:
				s.AddPolygon([]cp.Vector{{X: x0, Y: y0}, {X: x0 + ts, Y: y0}, {X: x0, Y: y0 + ts}}, category)
				continue
			default:
				continue
			}

			// greedily expand a rectangle: width first, then downwards
			rw := 1
			for x+rw < w {
				idx2 := y*w + (x + rw)
				if processed[idx2] || layer[idx2] != TileSolid {
					break
				}
				rw++
			}

			rh := 1
		heightLoop:
			for y+rh < h {
				for xi := x; xi < x+rw; xi++ {
					idx2 := (y+rh)*w + xi
					if processed[idx2] || layer[idx2] != TileSolid {
						break heightLoop
					}
				}
				rh++
			}

			for yy := y; yy < y+rh; yy++ {
				for xx := x; xx < x+rw; xx++ {
					processed[yy*w+xx] = true
				}
			}

			bb := cp.BB{L: x0, B: rowBottom(y + rh - 1), R: x0 + float64(rw)*ts, T: y0 + ts}
			s.AddBox(bb, category)
		}
	}
}
