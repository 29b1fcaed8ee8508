package eventlog

import (
	"time"

	"github.com/google/uuid"
)

// Type enumerates the domain event types recorded for a child.
type Type string

const (
	TypeCheckIn     Type = "CHECK_IN"
	TypeCheckOut    Type = "CHECK_OUT"
	TypePunishStart Type = "PUNISH_START"
	TypePunishEnd   Type = "PUNISH_END"
	TypeLoanStart   Type = "LOAN_START"
	TypeLoanEnd     Type = "LOAN_END"
)

// Known reports whether t is one of the recorded event types.
func (t Type) Known() bool {
	switch t {
	case TypeCheckIn, TypeCheckOut, TypePunishStart, TypePunishEnd, TypeLoanStart, TypeLoanEnd:
		return true
	}
	return false
}

// Event is an immutable domain fact about a child. Events are never mutated
// or deleted after append; child and item records are projections that can
// be rebuilt by replaying a child's events.
type Event struct {
	ID      int64     `json:"id"`
	ChildID uuid.UUID `json:"child_id"`
	Type    Type      `json:"type"`
	// Timestamp is assigned at append time when left zero.
	Timestamp time.Time `json:"timestamp"`
	// Label carries an item name for loan events or a free-form note.
	Label string `json:"label,omitempty"`
	// DurationMinutes is populated only on PUNISH_END events.
	DurationMinutes int `json:"duration_minutes,omitempty"`
}
