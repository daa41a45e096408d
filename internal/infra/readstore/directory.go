package readstore

import (
	"context"

	"facility-booking/internal/infra/db"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DirectoryReadStore struct {
	db db.DBTX
}

func NewDirectoryReadStore(dbtx db.DBTX) *DirectoryReadStore {
	return &DirectoryReadStore{db: dbtx}
}

var _ queries.DirectoryViewRepo = (*DirectoryReadStore)(nil)

const (
	locationViewColumns = `id, name, capacity, type, created_at, updated_at`
	materialViewColumns = `id, name, description, quantity_available, created_at, updated_at`
)

func (r *DirectoryReadStore) FindLocation(ctx context.Context, id uuid.UUID) (*queries.LocationView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+locationViewColumns+` FROM locations WHERE id = $1`, id)
	if err != nil {
		return nil, classify("", "failed to find location", err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanLocationView)
	if err != nil {
		return nil, classify("location not found", "failed to find location", err)
	}
	return v, nil
}

func (r *DirectoryReadStore) ListLocations(ctx context.Context, filter queries.LocationFilter) ([]*queries.LocationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+locationViewColumns+` FROM locations
		WHERE ($1::text IS NULL OR type = $1)
		ORDER BY name, id`, filter.Type)
	if err != nil {
		return nil, classify("", "failed to list locations", err)
	}
	out, err := pgx.CollectRows(rows, scanLocationView)
	if err != nil {
		return nil, classify("", "failed to scan locations", err)
	}
	return out, nil
}

func (r *DirectoryReadStore) FindMaterial(ctx context.Context, id uuid.UUID) (*queries.MaterialView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+materialViewColumns+` FROM materials WHERE id = $1`, id)
	if err != nil {
		return nil, classify("", "failed to find material", err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanMaterialView)
	if err != nil {
		return nil, classify("material not found", "failed to find material", err)
	}
	return v, nil
}

func (r *DirectoryReadStore) ListMaterials(ctx context.Context) ([]*queries.MaterialView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+materialViewColumns+` FROM materials ORDER BY name, id`)
	if err != nil {
		return nil, classify("", "failed to list materials", err)
	}
	out, err := pgx.CollectRows(rows, scanMaterialView)
	if err != nil {
		return nil, classify("", "failed to scan materials", err)
	}
	return out, nil
}

func scanLocationView(row pgx.CollectableRow) (*queries.LocationView, error) {
	var v queries.LocationView
	if err := row.Scan(&v.ID, &v.Name, &v.Capacity, &v.Type, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.CreatedAt, v.UpdatedAt = v.CreatedAt.UTC(), v.UpdatedAt.UTC()
	return &v, nil
}

func scanMaterialView(row pgx.CollectableRow) (*queries.MaterialView, error) {
	var v queries.MaterialView
	if err := row.Scan(&v.ID, &v.Name, &v.Description, &v.QuantityAvailable, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.CreatedAt, v.UpdatedAt = v.CreatedAt.UTC(), v.UpdatedAt.UTC()
	return &v, nil
}
