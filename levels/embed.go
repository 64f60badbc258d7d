package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json *.tengo
var LevelsFS embed.FS

// Dir is checked before the embedded copies.
var Dir = "levels"

// DefaultLevel is loaded when no level is named.
const DefaultLevel = "hills"

func readFile(name string) ([]byte, error) {
	clean := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(clean, "levels/"); ok {
		clean = after
	}
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}
