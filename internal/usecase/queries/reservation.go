package queries

import (
	"context"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation view not found")
	ErrAccessDenied        = errs.New("reservation is not visible to this actor")
	ErrInvalidFilter       = errs.New("invalid list filter")
)

//go:generate mockgen -destination=../../../tests/mock/queries/mock_queries.go -package=queriesmock facility-booking/internal/usecase/queries DirectoryQueries,ReservationQueries
type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error)
	// List returns one page and the cursor for the next one (nil on the last page).
	// Non-privileged actors only ever see their own reservations.
	List(ctx context.Context, actor user.Actor, filter ReservationFilter, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	ListMaterials(ctx context.Context, actor user.Actor, id uuid.UUID) ([]*ReservationMaterialView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindMaterials(ctx context.Context, reservationID uuid.UUID) ([]*ReservationMaterialView, error)
	List(ctx context.Context, filter ReservationFilter, after *ListPosition, limit int) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo         ReservationViewRepo
	defaultLimit int
	maxLimit     int
}

func NewReservationQueries(repo ReservationViewRepo, cfg config.BookingConfig) ReservationQueries {
	return &reservationQueriesImpl{
		repo:         repo,
		defaultLimit: cfg.DefaultListLimit,
		maxLimit:     cfg.MaxListLimit,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapViewErr(err)
	}
	if !canSee(actor, view.RequesterID, view.AssigneeID) {
		return nil, ErrAccessDenied
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMaterials(ctx context.Context, actor user.Actor, id uuid.UUID) ([]*ReservationMaterialView, error) {
	view, err := q.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return view.Materials, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, actor user.Actor, filter ReservationFilter, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	for _, s := range filter.Statuses {
		if _, err := reservation.ParseStatus(s); err != nil {
			return nil, nil, errs.Mark(errs.Wrapf(err, "status %q", s), ErrInvalidFilter)
		}
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, nil, errs.Mark(errs.New("from must be before to"), ErrInvalidFilter)
	}
	if !actor.Privileged {
		own := actor.ID
		filter.RequesterID = &own
	}

	var pos *ListPosition
	if after != nil && after.After != "" {
		p, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidFilter)
		}
		pos = &p
	}

	limit = ClampLimit(limit, q.defaultLimit, q.maxLimit)
	// one extra row tells whether another page exists
	rows, err := q.repo.List(ctx, filter, pos, limit+1)
	if err != nil {
		return nil, nil, mapViewErr(err)
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartTime, last.ID)}
	}
	return rows, next, nil
}

func canSee(actor user.Actor, requesterID uuid.UUID, assigneeID *uuid.UUID) bool {
	if actor.OwnsOrPrivileged(requesterID) {
		return true
	}
	return assigneeID != nil && actor.Owns(*assigneeID)
}

func mapViewErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrReservationNotFound)
	}
	return err
}
