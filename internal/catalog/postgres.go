package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bustimel/routebot/internal/engine"
)

// PostgresLoader reads route documents from a jsonb table. One row per
// route, same document shape as routes.json.
type PostgresLoader struct {
	db *sql.DB
}

func NewPostgresLoader(db *sql.DB) *PostgresLoader {
	return &PostgresLoader{db: db}
}

func (l *PostgresLoader) Load(ctx context.Context) ([]engine.Route, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT doc
		FROM routes
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("catalog: query routes: %w", err)
	}
	defer rows.Close()

	var out []engine.Route
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("catalog: scan route: %w", err)
		}
		var r engine.Route
		if err := json.Unmarshal(doc, &r); err != nil {
			return nil, fmt.Errorf("catalog: parse route doc: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
