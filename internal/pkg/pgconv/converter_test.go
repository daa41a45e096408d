//go:build unit

package pgconv_test

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"facility-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestNullableRoundTrip(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, &id, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id)))
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	s := "reason"
	assert.Equal(t, &s, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&s)))
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))

	loc := time.FixedZone("JST", 9*60*60)
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, loc)
	got := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&at))
	if assert.NotNil(t, got) {
		assert.True(t, got.Equal(at))
		assert.Equal(t, time.UTC, got.Location())
	}
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("wrapped: %w", sql.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(fmt.Errorf("other")))
}

func TestErrorCode(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgconv.CodeExclusionViolation})
	assert.Equal(t, pgconv.CodeExclusionViolation, pgconv.ErrorCode(err))
	assert.Empty(t, pgconv.ErrorCode(fmt.Errorf("plain")))
}
