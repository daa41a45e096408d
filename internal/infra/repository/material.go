package repository

import (
	"context"
	"time"

	"facility-booking/internal/domain/material"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const materialColumns = `id, name, description, quantity_available, created_at, updated_at`

type MaterialRepository struct {
	db  db.DBTX
	now func() time.Time
}

func NewMaterialRepository(dbtx db.DBTX, now func() time.Time) *MaterialRepository {
	return &MaterialRepository{db: dbtx, now: now}
}

var _ shared.MaterialRepository = (*MaterialRepository)(nil)

func (r *MaterialRepository) FindByID(ctx context.Context, id uuid.UUID) (*material.Material, error) {
	rows, err := r.db.Query(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id)
	if err != nil {
		return nil, classify("failed to find material", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanMaterial)
	if err != nil {
		return nil, classify("failed to find material", err)
	}
	return m, nil
}

func (r *MaterialRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*material.Material, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+materialColumns+` FROM materials
		WHERE id = ANY($1::uuid[])
		ORDER BY id`, ids)
	if err != nil {
		return nil, classify("failed to find materials", err)
	}
	out, err := pgx.CollectRows(rows, scanMaterial)
	if err != nil {
		return nil, classify("failed to scan materials", err)
	}
	return out, nil
}

func (r *MaterialRepository) Create(ctx context.Context, m *material.Material) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO materials (`+materialColumns+`)
		VALUES ($1, $2, $3, $4, $5, $5)`,
		m.ID(), m.Name(), m.Description(), m.QuantityAvailable(), r.now(),
	)
	if err != nil {
		return classify("failed to create material", err)
	}
	return nil
}

func (r *MaterialRepository) UpdateDetails(ctx context.Context, m *material.Material) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE materials SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`,
		m.ID(), m.Name(), m.Description(), r.now(),
	)
	if err != nil {
		return classify("failed to update material", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("material not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanMaterial(row pgx.CollectableRow) (*material.Material, error) {
	var (
		id                   uuid.UUID
		name, description    string
		quantity             int
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &description, &quantity, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return material.ReconstructMaterial(id, name, description, quantity, createdAt.UTC(), updatedAt.UTC()), nil
}
