package repository

import (
	"context"
	"time"

	"facility-booking/internal/domain/location"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LocationRepository struct {
	db  db.DBTX
	now func() time.Time
}

func NewLocationRepository(dbtx db.DBTX, now func() time.Time) *LocationRepository {
	return &LocationRepository{db: dbtx, now: now}
}

var _ shared.LocationRepository = (*LocationRepository)(nil)

func (r *LocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	return r.find(ctx, id, "")
}

// Lock takes the row lock that orders approvals and reschedules on the location.
func (r *LocationRepository) Lock(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	return r.find(ctx, id, " FOR UPDATE")
}

func (r *LocationRepository) find(ctx context.Context, id uuid.UUID, suffix string) (*location.Location, error) {
	var (
		name                 string
		capacity             int
		kind                 string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, capacity, type, created_at, updated_at
		FROM locations WHERE id = $1`+suffix, id,
	).Scan(&id, &name, &capacity, &kind, &createdAt, &updatedAt)
	if err != nil {
		return nil, classify("failed to find location", err)
	}
	t, err := location.ParseType(kind)
	if err != nil {
		return nil, infra.WrapRepoErr("stored location has an invalid type", err)
	}
	return location.ReconstructLocation(id, name, capacity, t, createdAt.UTC(), updatedAt.UTC()), nil
}

func (r *LocationRepository) Create(ctx context.Context, loc *location.Location) error {
	now := r.now()
	_, err := r.db.Exec(ctx, `
		INSERT INTO locations (id, name, capacity, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`,
		loc.ID(), loc.Name(), loc.Capacity(), loc.Type().String(), now,
	)
	if err != nil {
		return classify("failed to create location", err)
	}
	return nil
}

func (r *LocationRepository) Update(ctx context.Context, loc *location.Location) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE locations SET name = $2, capacity = $3, type = $4, updated_at = $5
		WHERE id = $1`,
		loc.ID(), loc.Name(), loc.Capacity(), loc.Type().String(), r.now(),
	)
	if err != nil {
		return classify("failed to update location", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return nil
}
