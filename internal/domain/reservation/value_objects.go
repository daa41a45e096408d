package reservation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxPurposeLength         = 1000
	MaxRejectionReasonLength = 1000
)

var (
	ErrEmptyTimeSlot          = errors.New("start time must be before end time")
	ErrStartInPast            = errors.New("start time cannot be in the past")
	ErrPurposeTooLong         = errors.New("purpose is too long (max 1000 characters)")
	ErrRejectionReasonMissing = errors.New("rejection reason is required")
	ErrRejectionReasonTooLong = errors.New("rejection reason is too long (max 1000 characters)")
	ErrInvalidLineQuantity    = errors.New("requested quantity must be positive")
	ErrInvalidLineMaterial    = errors.New("material id is required")
	ErrDuplicateLineMaterial  = errors.New("material requested more than once")
)

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrEmptyTimeSlot
	}
	return TimeSlot{start: start.UTC(), end: end.UTC()}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps treats touching endpoints as free.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

// ValidateStartAt rejects slots that begin earlier than now minus slack.
func (ts TimeSlot) ValidateStartAt(now time.Time, slack time.Duration) error {
	if slack < 0 {
		slack = 0
	}
	if ts.start.Before(now.Add(-slack)) {
		return ErrStartInPast
	}
	return nil
}

func (ts TimeSlot) HasEndedAt(now time.Time) bool {
	return !now.Before(ts.end)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

type Purpose struct {
	value string
}

func NewPurpose(value string) (Purpose, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxPurposeLength {
		return Purpose{}, ErrPurposeTooLong
	}
	return Purpose{value: value}, nil
}

func (p Purpose) String() string {
	return p.value
}

func (p Purpose) IsEmpty() bool {
	return p.value == ""
}

type RejectionReason struct {
	value string
}

func NewRejectionReason(value string) (RejectionReason, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return RejectionReason{}, ErrRejectionReasonMissing
	}
	if utf8.RuneCountInString(value) > MaxRejectionReasonLength {
		return RejectionReason{}, ErrRejectionReasonTooLong
	}
	return RejectionReason{value: value}, nil
}

func (r RejectionReason) String() string {
	return r.value
}

type MaterialLine struct {
	MaterialID uuid.UUID
	Quantity   int
}

// MaterialLines is the full material set of a reservation, sorted by material
// id. The ordering doubles as the lock order for ledger rows.
type MaterialLines struct {
	lines []MaterialLine
}

func NewMaterialLines(in []MaterialLine) (MaterialLines, error) {
	seen := make(map[uuid.UUID]struct{}, len(in))
	out := make([]MaterialLine, 0, len(in))
	for _, l := range in {
		if l.MaterialID == uuid.Nil {
			return MaterialLines{}, ErrInvalidLineMaterial
		}
		if l.Quantity <= 0 {
			return MaterialLines{}, ErrInvalidLineQuantity
		}
		if _, dup := seen[l.MaterialID]; dup {
			return MaterialLines{}, ErrDuplicateLineMaterial
		}
		seen[l.MaterialID] = struct{}{}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MaterialID.String() < out[j].MaterialID.String()
	})
	return MaterialLines{lines: out}, nil
}

func (ml MaterialLines) All() []MaterialLine {
	out := make([]MaterialLine, len(ml.lines))
	copy(out, ml.lines)
	return out
}

func (ml MaterialLines) Len() int {
	return len(ml.lines)
}

func (ml MaterialLines) MaterialIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(ml.lines))
	for i, l := range ml.lines {
		ids[i] = l.MaterialID
	}
	return ids
}

func (ml MaterialLines) QuantityOf(materialID uuid.UUID) int {
	for _, l := range ml.lines {
		if l.MaterialID == materialID {
			return l.Quantity
		}
	}
	return 0
}

func (ml MaterialLines) Equal(other MaterialLines) bool {
	if len(ml.lines) != len(other.lines) {
		return false
	}
	for i := range ml.lines {
		if ml.lines[i] != other.lines[i] {
			return false
		}
	}
	return true
}
