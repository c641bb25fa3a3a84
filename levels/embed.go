package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/rayphysics/world"
)

// Default is the level the demo and the simulator start with.
const Default = "slopes.json"

//go:embed *.json
var LevelsFS embed.FS

// Load reads a level from levels/<name> on disk when present, falling back
// to the embedded copy.
func Load(name string) (*world.Level, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return world.ParseLevel(data)
	}
	return world.LoadLevelFS(LevelsFS, clean)
}

func cleanLevelPath(name string) string {
	if name == "" {
		return Default
	}
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}
