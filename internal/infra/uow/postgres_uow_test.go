//go:build unit

package uow

import (
	"fmt"
	"testing"
	"time"

	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want, "attempt %d", attempt)
		assert.Less(t, got, want+want/5+time.Nanosecond, "attempt %d", attempt)
	}
}

func TestShouldRetry(t *testing.T) {
	serialization := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	deadlock := &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	unique := &pgconn.PgError{Code: "23505"}

	tests := []struct {
		name    string
		err     error
		attempt int
		want    bool
	}{
		{name: "serialization failure", err: serialization, attempt: 0, want: true},
		{name: "deadlock wrapped by repository", err: infra.WrapRepoErr("lock", deadlock), attempt: 1, want: true},
		{name: "marked after commit", err: errs.Mark(fmt.Errorf("commit: %w", serialization), errTransactionCommit), attempt: 2, want: true},
		{name: "last attempt", err: serialization, attempt: 3, want: false},
		{name: "constraint violation", err: unique, attempt: 0, want: false},
		{name: "plain error", err: errs.New("boom"), attempt: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldRetry(tt.err, tt.attempt, 3))
		})
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Zero(t, cryptoRandInt63n(0))
	for i := 0; i < 50; i++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}
