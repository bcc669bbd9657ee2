package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

const defaultMaxOccurrences = 60

var rruleWeekdays = [7]rrule.Weekday{
	rrule.MO,
	rrule.TU,
	rrule.WE,
	rrule.TH,
	rrule.FR,
	rrule.SA,
	rrule.SU,
}

// Window bounds an occurrence expansion.
type Window struct {
	// Start is the first instant an occurrence may fall on (inclusive).
	Start time.Time
	// End is the last instant an occurrence may fall on (inclusive).
	End time.Time
	// Limit caps the number of returned occurrences; defaultMaxOccurrences when zero.
	Limit int
}

// BuildRRule converts a weekly rule parameter string into an RRULE anchored at
// dtstart and bounded by until.
func BuildRRule(frequency, params string, dtstart, until time.Time) (*rrule.RRule, error) {
	if frequency != FrequencyWeekly {
		return nil, fmt.Errorf("unsupported rule frequency %q", frequency)
	}
	p, err := ParseParams(params)
	if err != nil {
		return nil, err
	}
	if err := validateParams(p); err != nil {
		return nil, err
	}

	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   dtstart,
		Until:     until,
		Byweekday: []rrule.Weekday{rruleWeekdays[p.Weekday]},
		Byhour:    []int{p.Hour},
		Byminute:  []int{p.Minute},
		Bysecond:  []int{0},
	})
}

// Occurrences expands a stored weekly rule into concrete instants. The rule is
// anchored at dtstart and stops at until; only instants inside w are returned.
func Occurrences(frequency, params string, dtstart, until time.Time, w Window) ([]time.Time, error) {
	if w.End.Before(w.Start) {
		return nil, errors.New("occurrence window ends before it starts")
	}
	r, err := BuildRRule(frequency, params, dtstart, until)
	if err != nil {
		return nil, err
	}

	limit := w.Limit
	if limit <= 0 {
		limit = defaultMaxOccurrences
	}

	times := r.Between(w.Start.In(dtstart.Location()), w.End.In(dtstart.Location()), true)
	if len(times) > limit {
		times = times[:limit]
	}
	return times, nil
}

func validateParams(p Params) error {
	if p.Weekday < 0 || p.Weekday > 6 {
		return fmt.Errorf("%w: weekday %d", ErrInvalidSlot, p.Weekday)
	}
	if p.Hour < 0 || p.Hour > 23 {
		return fmt.Errorf("%w: hour %d", ErrInvalidSlot, p.Hour)
	}
	if p.Minute < 0 || p.Minute > 59 {
		return fmt.Errorf("%w: minute %d", ErrInvalidSlot, p.Minute)
	}
	return nil
}
