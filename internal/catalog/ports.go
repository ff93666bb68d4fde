package catalog

import (
	"context"

	"github.com/bustimel/routebot/internal/engine"
)

// Loader — джерело каталогу маршрутів. The engine does not care whether
// records come from a file or a document store; it only needs the shape.
type Loader interface {
	Load(ctx context.Context) ([]engine.Route, error)
}
