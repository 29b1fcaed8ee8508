// internal/lifecycle/machine.go
package lifecycle

import (
	"math"
	"time"

	"playroster/internal/eventlog"
	"playroster/internal/roster"
	"playroster/pkg/rejection"
)

// dailyPunishLimit is the number of completed punishments in one calendar
// day that triggers a restriction until the next midnight.
const dailyPunishLimit = 3

// State is the explicit composite state of one child: presence, restriction
// and item custody. The engine derives it from the child projection, feeds
// it through Decide and writes the result back.
type State struct {
	Presence        roster.Presence
	Restricted      bool
	RestrictedUntil *time.Time
	// HeldItem names the item in custody; empty means none.
	HeldItem string
}

// Intent is a validated request to record one domain event.
type Intent struct {
	Type  eventlog.Type
	Label string
	// Now is the decision time; its location defines the calendar day.
	Now time.Time
}

// Facts carry the log- and registry-derived inputs a decision needs, so the
// transition function itself stays pure.
type Facts struct {
	// OpenPunishStart is the timestamp of the most recent PUNISH_START not
	// yet matched by a PUNISH_END; nil when no punishment is open.
	OpenPunishStart *time.Time
	// PunishEndsToday counts PUNISH_END events already recorded since the
	// start of the current calendar day, excluding the one being decided.
	PunishEndsToday int
	// ItemExists and ItemAvailable describe the requested item for
	// LOAN_START intents.
	ItemExists    bool
	ItemAvailable bool
}

// Effect is the outcome of a successful decision: the next state, the
// events to append, and the availability-flag flips to perform.
type Effect struct {
	State State
	// Events to append, primary intent first; synthetic events follow.
	Events []eventlog.Event
	// AcquireItem / ReleaseItem name the item whose availability flag must
	// flip; empty means no flip.
	AcquireItem string
	ReleaseItem string
	// RestrictionTriggered is set when this decision started a restriction
	// window.
	RestrictionTriggered bool
}

// Materialize lazily expires the restriction window. It is idempotent and
// must run before every read and every precondition check.
func Materialize(s State, now time.Time) State {
	if s.Restricted && s.RestrictedUntil != nil && !now.Before(*s.RestrictedUntil) {
		s.Restricted = false
		s.RestrictedUntil = nil
	}
	if !s.Restricted {
		s.RestrictedUntil = nil
	}
	return s
}

// Decide validates the intent against the materialized state and returns
// the effect to apply, or a typed rejection. It performs no I/O.
func Decide(s State, in Intent, f Facts) (Effect, error) {
	s = Materialize(s, in.Now)

	switch in.Type {
	case eventlog.TypeCheckIn:
		s.Presence = roster.Present
		return Effect{State: s, Events: []eventlog.Event{
			{Type: eventlog.TypeCheckIn, Timestamp: in.Now, Label: in.Label},
		}}, nil

	case eventlog.TypeCheckOut:
		s.Presence = roster.Absent
		return Effect{State: s, Events: []eventlog.Event{
			{Type: eventlog.TypeCheckOut, Timestamp: in.Now, Label: in.Label},
		}}, nil

	case eventlog.TypePunishStart:
		// Recorded as a fact; state changes only when the punishment ends.
		return Effect{State: s, Events: []eventlog.Event{
			{Type: eventlog.TypePunishStart, Timestamp: in.Now, Label: in.Label},
		}}, nil

	case eventlog.TypePunishEnd:
		return decidePunishEnd(s, in, f)

	case eventlog.TypeLoanStart:
		return decideLoanStart(s, in, f)

	case eventlog.TypeLoanEnd:
		return decideLoanEnd(s, in)

	default:
		// Includes the retired flat PUNISH type; punishments are recorded
		// as PUNISH_START / PUNISH_END pairs.
		return Effect{}, rejection.Newf(rejection.KindInvalidInput, "unsupported event type %q", in.Type)
	}
}

func decidePunishEnd(s State, in Intent, f Facts) (Effect, error) {
	if f.OpenPunishStart == nil {
		return Effect{}, rejection.New(rejection.KindConflict, "no open punishment to end")
	}

	duration := int(math.Round(in.Now.Sub(*f.OpenPunishStart).Minutes()))
	eff := Effect{
		Events: []eventlog.Event{{
			Type:            eventlog.TypePunishEnd,
			Timestamp:       in.Now,
			Label:           in.Label,
			DurationMinutes: duration,
		}},
	}

	if f.PunishEndsToday+1 >= dailyPunishLimit {
		until := startOfNextDay(in.Now)
		s.Restricted = true
		s.RestrictedUntil = &until
		eff.RestrictionTriggered = true

		if s.HeldItem != "" {
			// Force-return the held item with a synthetic loan end.
			eff.ReleaseItem = s.HeldItem
			eff.Events = append(eff.Events, eventlog.Event{
				Type:      eventlog.TypeLoanEnd,
				Timestamp: in.Now,
				Label:     s.HeldItem,
			})
			s.HeldItem = ""
		}
	}

	eff.State = s
	return eff, nil
}

func decideLoanStart(s State, in Intent, f Facts) (Effect, error) {
	if in.Label == "" {
		return Effect{}, rejection.New(rejection.KindInvalidInput, "item name is required")
	}
	if s.Restricted {
		return Effect{}, rejection.New(rejection.KindForbidden, "restricted today")
	}
	if s.HeldItem != "" {
		return Effect{}, rejection.New(rejection.KindConflict, "child already has an item")
	}
	if !f.ItemExists {
		return Effect{}, rejection.Newf(rejection.KindNotFound, "item %q not found", in.Label)
	}
	if !f.ItemAvailable {
		return Effect{}, rejection.New(rejection.KindConflict, "item not available")
	}

	s.HeldItem = in.Label
	return Effect{
		State:       s,
		AcquireItem: in.Label,
		Events: []eventlog.Event{
			{Type: eventlog.TypeLoanStart, Timestamp: in.Now, Label: in.Label},
		},
	}, nil
}

func decideLoanEnd(s State, in Intent) (Effect, error) {
	if s.HeldItem == "" {
		return Effect{}, rejection.New(rejection.KindConflict, "no item to return")
	}

	returned := s.HeldItem
	s.HeldItem = ""
	return Effect{
		State:       s,
		ReleaseItem: returned,
		Events: []eventlog.Event{
			{Type: eventlog.TypeLoanEnd, Timestamp: in.Now, Label: returned},
		},
	}, nil
}

// Replay folds a child's event log from the empty initial state and must
// reproduce the same (presence, restriction, heldItem) projection the live
// system holds.
func Replay(events []eventlog.Event, now time.Time) State {
	s := State{Presence: roster.Absent}

	var day time.Time
	endsInDay := 0

	for _, e := range events {
		switch e.Type {
		case eventlog.TypeCheckIn:
			s.Presence = roster.Present
		case eventlog.TypeCheckOut:
			s.Presence = roster.Absent
		case eventlog.TypeLoanStart:
			s.HeldItem = e.Label
		case eventlog.TypeLoanEnd:
			s.HeldItem = ""
		case eventlog.TypePunishEnd:
			d := startOfDay(e.Timestamp)
			if !d.Equal(day) {
				day = d
				endsInDay = 0
			}
			endsInDay++
			if endsInDay >= dailyPunishLimit {
				until := startOfNextDay(e.Timestamp)
				s.Restricted = true
				s.RestrictedUntil = &until
			}
		}
	}

	return Materialize(s, now)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func startOfNextDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1)
}

// StateOf extracts the machine state from a child projection.
func StateOf(c *roster.Child) State {
	return State{
		Presence:        c.Status,
		Restricted:      c.IsRestricted,
		RestrictedUntil: c.RestrictedUntil,
		HeldItem:        c.CurrentItem,
	}
}

// WriteState copies a machine state back onto the child projection.
func WriteState(c *roster.Child, s State) {
	c.Status = s.Presence
	c.IsRestricted = s.Restricted
	c.RestrictedUntil = s.RestrictedUntil
	c.CurrentItem = s.HeldItem
}
