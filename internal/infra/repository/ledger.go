package repository

import (
	"context"
	"time"

	"facility-booking/internal/domain/material"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaterialLedger locks the material row before every debit, so concurrent
// approvals touching the same material serialize on that row.
type MaterialLedger struct {
	db  db.DBTX
	now func() time.Time
}

func NewMaterialLedger(dbtx db.DBTX, now func() time.Time) *MaterialLedger {
	return &MaterialLedger{db: dbtx, now: now}
}

var _ shared.MaterialLedger = (*MaterialLedger)(nil)

func (l *MaterialLedger) Reserve(ctx context.Context, materialID uuid.UUID, qty int) error {
	if qty <= 0 {
		return material.ErrInvalidQuantity
	}

	var available int
	err := l.db.QueryRow(ctx,
		`SELECT quantity_available FROM materials WHERE id = $1 FOR UPDATE`, materialID,
	).Scan(&available)
	if err != nil {
		return classify("failed to lock material", err)
	}
	if qty > available {
		return &shared.StockShortage{MaterialID: materialID, Requested: qty, Available: available}
	}

	return l.adjust(ctx, materialID, -qty)
}

func (l *MaterialLedger) Release(ctx context.Context, materialID uuid.UUID, qty int) error {
	if qty <= 0 {
		return material.ErrInvalidQuantity
	}
	return l.adjust(ctx, materialID, qty)
}

func (l *MaterialLedger) Restock(ctx context.Context, materialID uuid.UUID, qty int) error {
	return l.Release(ctx, materialID, qty)
}

func (l *MaterialLedger) adjust(ctx context.Context, materialID uuid.UUID, delta int) error {
	var left int
	err := l.db.QueryRow(ctx, `
		UPDATE materials
		SET quantity_available = quantity_available + $2, updated_at = $3
		WHERE id = $1
		RETURNING quantity_available`,
		materialID, delta, l.now(),
	).Scan(&left)
	if err != nil {
		return classify("failed to adjust material stock", err)
	}
	return nil
}
