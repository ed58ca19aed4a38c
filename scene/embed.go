package scene

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scenes/*.yaml
var scenesFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// LoadFile reads a scene YAML by name, preferring a disk copy under scene/
// (so edits hot-reload during development) and falling back to the embedded
// build.
func LoadFile(name string) ([]byte, error) {
	clean := cleanScenePath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scenesFS.ReadFile(clean)
}

// SceneFiles lists the embedded scene file names.
func SceneFiles() ([]string, error) {
	entries, err := scenesFS.ReadDir("scenes")
	if err != nil {
		return nil, fmt.Errorf("scene: read embedded scenes: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// LoadScript reads a lifecycle hook script, disk first then embedded.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

func cleanScenePath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "scene/")
	if !strings.HasPrefix(s, "scenes/") {
		s = "scenes/" + s
	}
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "scene/")
	if !strings.HasPrefix(s, "scripts/") {
		s = "scripts/" + s
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join("scene", filepath.FromSlash(clean))
}
