package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jakecoffman/cp"
)

const (
	TileEmpty     = 0
	TileSolid     = 1
	TileRampRight = 2 // rises towards +x
	TileRampLeft  = 3 // rises towards -x
)

var ErrInvalidLevel = errors.New("world: invalid level")

// Level is a tile map stored as JSON. Row 0 of every layer is the top row;
// the level is flipped into y-up world space when the space is built.
type Level struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	TileSize float64 `json:"tile_size,omitempty"`
	// Layers is a list of flat row-major arrays of length Width*Height.
	Layers    [][]int     `json:"layers,omitempty"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	// Segments are free-standing surfaces in world units, used for slopes
	// that do not fit the tile grid.
	Segments []Segment `json:"segments,omitempty"`

	// player spawn in tile coordinates
	SpawnX int `json:"spawn_x,omitempty"`
	SpawnY int `json:"spawn_y,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
	// Category is the collision layer bit of the layer's tiles; 0 means LayerSolid.
	Category uint   `json:"category,omitempty"`
	Color    string `json:"color,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

type Segment struct {
	A        Point   `json:"a"`
	B        Point   `json:"b"`
	Radius   float64 `json:"radius,omitempty"`
	Category uint    `json:"category,omitempty"`
}

// LoadLevel loads a level from a JSON file at path.
func LoadLevel(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLevel(b)
}

func LoadLevelFS(fsys fs.FS, name string) (*Level, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("world: read level %s: %w", name, err)
	}
	return ParseLevel(b)
}

func ParseLevel(b []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("world: unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("world: dimensions %dx%d: %w", l.Width, l.Height, ErrInvalidLevel)
	}
	if l.TileSize < 0 {
		return fmt.Errorf("world: tile size %v: %w", l.TileSize, ErrInvalidLevel)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("world: layer %d has %d tiles, want %d: %w", i, len(layer), l.Width*l.Height, ErrInvalidLevel)
		}
		for j, tile := range layer {
			if tile < TileEmpty || tile > TileRampLeft {
				return fmt.Errorf("world: layer %d tile %d has unknown id %d: %w", i, j, tile, ErrInvalidLevel)
			}
		}
	}
	return nil
}

// Tile returns the world size of one tile.
func (l *Level) Tile() float64 {
	if l == nil || l.TileSize <= 0 {
		return 1
	}
	return l.TileSize
}

// SpawnPosition is the bottom center of the spawn tile in world space.
func (l *Level) SpawnPosition() cp.Vector {
	if l == nil {
		return cp.Vector{}
	}
	ts := l.Tile()
	return cp.Vector{X: (float64(l.SpawnX) + 0.5) * ts, Y: float64(l.Height-1-l.SpawnY) * ts}
}

// Size is the level extent in world units.
func (l *Level) Size() cp.Vector {
	if l == nil {
		return cp.Vector{}
	}
	ts := l.Tile()
	return cp.Vector{X: float64(l.Width) * ts, Y: float64(l.Height) * ts}
}

func (l *Level) layerHasPhysics(i int) bool {
	// a level without metadata treats every layer as solid
	if len(l.LayerMeta) == 0 {
		return true
	}
	return i < len(l.LayerMeta) && l.LayerMeta[i].Physics
}

func (l *Level) layerCategory(i int) uint {
	if i < len(l.LayerMeta) && l.LayerMeta[i].Category != 0 {
		return l.LayerMeta[i].Category
	}
	return LayerSolid
}
