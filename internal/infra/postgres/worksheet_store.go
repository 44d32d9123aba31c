package postgres

import (
	"context"
	"time"

	"github.com/mj-jones15/pastProjects/internal/domain"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type worksheetRow struct {
	bun.BaseModel `bun:"table:worksheets"`

	ID        string           `bun:"id,pk"`
	Data      domain.Worksheet `bun:"data,type:jsonb"`
	UpdatedAt time.Time        `bun:"updated_at"`
}

// WorksheetStore writes worksheets so the loader can serve them.
type WorksheetStore struct {
	db *bun.DB
}

func NewWorksheetStore(db *bun.DB) *WorksheetStore {
	return &WorksheetStore{db: db}
}

// Save validates ws and inserts it, replacing any sheet with the same ID.
func (s *WorksheetStore) Save(ctx context.Context, ws domain.Worksheet) error {
	if err := ws.Validate(); err != nil {
		return err
	}
	row := &worksheetRow{ID: ws.ID, Data: ws, UpdatedAt: time.Now().UTC()}
	_, err := s.db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return errors.Wrapf(err, "save worksheet %s", ws.ID)
}
