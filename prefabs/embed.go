package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is where on-disk overrides of the embedded prefabs live.
const Dir = "prefabs"

// Load returns a prefab file, preferring an on-disk copy under Dir so edits
// take effect without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript returns a script by name (embedded) or by path (disk). Names
// without a directory and extension refer to scripts/<name>.tengo.
func LoadScript(name string) ([]byte, error) {
	if strings.ContainsAny(name, `/\`) || strings.HasSuffix(name, ".tengo") {
		if data, err := os.ReadFile(name); err == nil {
			return data, nil
		}
	}
	return ScriptsFS.ReadFile(cleanScriptPath(name))
}

func cleanPrefabPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, Dir+"/")
	s = strings.TrimPrefix(s, "scripts/")
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return "scripts/" + s
}
