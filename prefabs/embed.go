package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml *.toml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// DefaultActor is the prefab the demo and the simulator load when none is given.
const DefaultActor = "player.yaml"

// Kind is what a prefab file holds, judged by its extension.
type Kind int

const (
	KindUnknown Kind = iota
	KindActor
	KindScript
)

func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}

func KindOf(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".toml":
		return KindActor
	case ".tengo":
		return KindScript
	}
	return KindUnknown
}

// Load reads an actor prefab. A copy under prefabs/ on disk wins over the
// embedded one so edits show up without a rebuild.
func Load(name string) ([]byte, error) {
	return readAsset(PrefabsFS, prefabName(name))
}

// LoadScript reads a tengo script the same way from prefabs/scripts.
func LoadScript(name string) ([]byte, error) {
	return readAsset(ScriptsFS, scriptName(name))
}

func readAsset(embedded fs.FS, name string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(name))); err == nil {
		return data, nil
	}
	return fs.ReadFile(embedded, name)
}

// prefabName is name relative to the prefabs dir.
func prefabName(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimPrefix(path.Clean(filepath.ToSlash(name)), "prefabs/")
}

// scriptName is name relative to the prefabs dir, always under scripts/.
func scriptName(name string) string {
	if name == "" {
		return ""
	}
	s := strings.TrimPrefix(prefabName(name), "scripts/")
	return path.Join("scripts", s)
}
