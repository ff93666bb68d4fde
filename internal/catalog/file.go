package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bustimel/routebot/internal/engine"
)

// FileLoader reads the catalog from a routes.json on disk.
type FileLoader struct {
	Path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

func (l *FileLoader) Load(_ context.Context) ([]engine.Route, error) {
	raw, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", l.Path, err)
	}
	var routes []engine.Route
	if err := json.Unmarshal(raw, &routes); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", l.Path, err)
	}
	return routes, nil
}
