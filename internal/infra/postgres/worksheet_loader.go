package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/mj-jones15/pastProjects/internal/domain"
	"github.com/pkg/errors"
)

// WorksheetLoader reads worksheet JSONB from Postgres.
type WorksheetLoader struct {
	pool *pgxpool.Pool
}

func NewWorksheetLoader(pool *pgxpool.Pool) *WorksheetLoader {
	return &WorksheetLoader{pool: pool}
}

func (l *WorksheetLoader) LoadWorksheet(ctx context.Context, id string) (domain.Worksheet, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM worksheets WHERE id=$1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Worksheet{}, domain.ErrWorksheetNotFound
	}
	if err != nil {
		return domain.Worksheet{}, errors.Wrapf(err, "load worksheet %s", id)
	}

	var ws domain.Worksheet
	if err := json.Unmarshal(raw, &ws); err != nil {
		return domain.Worksheet{}, errors.Wrapf(err, "decode worksheet %s", id)
	}
	if ws.ID == "" {
		ws.ID = id
	}
	return ws, nil
}
