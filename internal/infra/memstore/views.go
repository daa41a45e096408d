package memstore

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"facility-booking/internal/infra"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViews struct {
	store *Store
}

func NewReservationViews(store *Store) *ReservationViews {
	return &ReservationViews{store: store}
}

var _ queries.ReservationViewRepo = (*ReservationViews)(nil)

func (v *ReservationViews) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view *queries.ReservationView
		ok   bool
	)
	v.store.read(func(st *state) {
		var row reservationRow
		row, ok = st.reservations[id]
		if ok {
			view = toReservationView(st, row)
		}
	})
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return view, nil
}

func (v *ReservationViews) FindMaterials(ctx context.Context, reservationID uuid.UUID) ([]*queries.ReservationMaterialView, error) {
	view, err := v.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	return view.Materials, nil
}

func (v *ReservationViews) List(_ context.Context, filter queries.ReservationFilter, after *queries.ListPosition, limit int) ([]*queries.ReservationListItem, error) {
	var items []*queries.ReservationListItem
	v.store.read(func(st *state) {
		var rows []reservationRow
		for _, row := range st.reservations {
			if matches(row, filter) {
				rows = append(rows, row)
			}
		}
		sort.Slice(rows, func(i, j int) bool {
			return lessByStart(rows[i].start, rows[i].id, rows[j].start, rows[j].id)
		})

		out := make([]*queries.ReservationListItem, 0, limit)
		for _, row := range rows {
			if after != nil && !lessByStart(after.StartTime, after.ID, row.start, row.id) {
				continue
			}
			loc := st.locations[row.locationID]
			out = append(out, &queries.ReservationListItem{
				ID:           row.id,
				LocationID:   row.locationID,
				LocationName: loc.name,
				RequesterID:  row.requesterID,
				AssigneeID:   row.assigneeID,
				StartTime:    row.start,
				EndTime:      row.end,
				Status:       row.status.String(),
				CreatedAt:    row.createdAt,
			})
			if limit > 0 && len(out) == limit {
				break
			}
		}
		items = out
	})
	return items, nil
}

// lessByStart orders by start time, then id, matching the keyset cursor.
func lessByStart(aStart time.Time, aID uuid.UUID, bStart time.Time, bID uuid.UUID) bool {
	if !aStart.Equal(bStart) {
		return aStart.Before(bStart)
	}
	return aID.String() < bID.String()
}

func matches(row reservationRow, f queries.ReservationFilter) bool {
	if len(f.Statuses) > 0 && !slices.ContainsFunc(f.Statuses, func(s string) bool {
		return strings.EqualFold(strings.TrimSpace(s), row.status.String())
	}) {
		return false
	}
	if f.LocationID != nil && row.locationID != *f.LocationID {
		return false
	}
	if f.RequesterID != nil && row.requesterID != *f.RequesterID {
		return false
	}
	if f.From != nil && !row.end.After(*f.From) {
		return false
	}
	if f.To != nil && !row.start.Before(*f.To) {
		return false
	}
	return true
}

func toReservationView(st *state, row reservationRow) *queries.ReservationView {
	loc := st.locations[row.locationID]
	mats := make([]*queries.ReservationMaterialView, len(row.lines))
	for i, l := range row.lines {
		mats[i] = &queries.ReservationMaterialView{
			MaterialID:        l.MaterialID,
			MaterialName:      st.materials[l.MaterialID].name,
			QuantityRequested: l.Quantity,
		}
	}
	return &queries.ReservationView{
		ID:              row.id,
		LocationID:      row.locationID,
		LocationName:    loc.name,
		LocationType:    loc.kind.String(),
		RequesterID:     row.requesterID,
		AssigneeID:      row.assigneeID,
		StartTime:       row.start,
		EndTime:         row.end,
		Status:          row.status.String(),
		Purpose:         row.purpose,
		ApproverID:      row.approverID,
		ApprovedAt:      copyTime(row.approvedAt),
		RejectionReason: copyString(row.rejectionReason),
		Materials:       mats,
		CreatedAt:       row.createdAt,
		UpdatedAt:       row.updatedAt,
	}
}

type DirectoryViews struct {
	store *Store
}

func NewDirectoryViews(store *Store) *DirectoryViews {
	return &DirectoryViews{store: store}
}

var _ queries.DirectoryViewRepo = (*DirectoryViews)(nil)

func (v *DirectoryViews) FindLocation(_ context.Context, id uuid.UUID) (*queries.LocationView, error) {
	var (
		row locationRow
		ok  bool
	)
	v.store.read(func(st *state) { row, ok = st.locations[id] })
	if !ok {
		return nil, infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return toLocationView(row), nil
}

func (v *DirectoryViews) ListLocations(_ context.Context, filter queries.LocationFilter) ([]*queries.LocationView, error) {
	var out []*queries.LocationView
	v.store.read(func(st *state) {
		for _, row := range st.locations {
			if filter.Type != nil && row.kind.String() != *filter.Type {
				continue
			}
			out = append(out, toLocationView(row))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (v *DirectoryViews) FindMaterial(_ context.Context, id uuid.UUID) (*queries.MaterialView, error) {
	var (
		row materialRow
		ok  bool
	)
	v.store.read(func(st *state) { row, ok = st.materials[id] })
	if !ok {
		return nil, infra.WrapRepoErr("material not found", nil, infra.KindNotFound)
	}
	return toMaterialView(row), nil
}

func (v *DirectoryViews) ListMaterials(_ context.Context) ([]*queries.MaterialView, error) {
	var out []*queries.MaterialView
	v.store.read(func(st *state) {
		for _, row := range st.materials {
			out = append(out, toMaterialView(row))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func toLocationView(row locationRow) *queries.LocationView {
	return &queries.LocationView{
		ID:        row.id,
		Name:      row.name,
		Capacity:  row.capacity,
		Type:      row.kind.String(),
		CreatedAt: row.createdAt,
		UpdatedAt: row.updatedAt,
	}
}

func toMaterialView(row materialRow) *queries.MaterialView {
	return &queries.MaterialView{
		ID:                row.id,
		Name:              row.name,
		Description:       row.description,
		QuantityAvailable: row.quantity,
		CreatedAt:         row.createdAt,
		UpdatedAt:         row.updatedAt,
	}
}
