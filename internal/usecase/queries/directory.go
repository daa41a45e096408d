package queries

import (
	"context"

	"facility-booking/internal/domain/location"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLocationNotFound = errs.New("location view not found")
	ErrMaterialNotFound = errs.New("material view not found")
)

type DirectoryQueries interface {
	GetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error)
	ListLocations(ctx context.Context, filter LocationFilter) ([]*LocationView, error)
	GetMaterial(ctx context.Context, id uuid.UUID) (*MaterialView, error)
	ListMaterials(ctx context.Context) ([]*MaterialView, error)
}

type DirectoryViewRepo interface {
	FindLocation(ctx context.Context, id uuid.UUID) (*LocationView, error)
	ListLocations(ctx context.Context, filter LocationFilter) ([]*LocationView, error)
	FindMaterial(ctx context.Context, id uuid.UUID) (*MaterialView, error)
	ListMaterials(ctx context.Context) ([]*MaterialView, error)
}

type directoryQueriesImpl struct {
	repo DirectoryViewRepo
}

func NewDirectoryQueries(repo DirectoryViewRepo) DirectoryQueries {
	return &directoryQueriesImpl{repo: repo}
}

func (q *directoryQueriesImpl) GetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error) {
	v, err := q.repo.FindLocation(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrLocationNotFound)
	}
	return v, err
}

func (q *directoryQueriesImpl) ListLocations(ctx context.Context, filter LocationFilter) ([]*LocationView, error) {
	if filter.Type != nil {
		kind, err := location.ParseType(*filter.Type)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidFilter)
		}
		normalized := kind.String()
		filter.Type = &normalized
	}
	return q.repo.ListLocations(ctx, filter)
}

func (q *directoryQueriesImpl) GetMaterial(ctx context.Context, id uuid.UUID) (*MaterialView, error) {
	v, err := q.repo.FindMaterial(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrMaterialNotFound)
	}
	return v, err
}

func (q *directoryQueriesImpl) ListMaterials(ctx context.Context) ([]*MaterialView, error) {
	return q.repo.ListMaterials(ctx)
}
