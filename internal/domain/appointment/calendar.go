package appointment

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"
)

// LunchRule selects how slot generation treats candidates that run into the break.
type LunchRule string

const (
	// LunchRuleLegacy rejects starts inside the break and the slot right
	// before it only for 60-minute services.
	LunchRuleLegacy LunchRule = "legacy"
	// LunchRuleOverlap rejects every candidate whose interval overlaps the break.
	LunchRuleOverlap LunchRule = "overlap"
)

const legacyBlockedDurationMin = 60

// ===============================
// Business Calendar
// ===============================

type Calendar struct {
	Open        Clock          `toml:"open"`
	Close       Clock          `toml:"close"`
	LunchStart  Clock          `toml:"lunch_start"`
	LunchEnd    Clock          `toml:"lunch_end"`
	Granularity int            `toml:"granularity_min"`
	ClosedDays  []time.Weekday `toml:"closed_days"`
	LunchRule   LunchRule      `toml:"lunch_rule"`
}

func DefaultCalendar() Calendar {
	return Calendar{
		Open:        NewClock(9, 0),
		Close:       NewClock(19, 0),
		LunchStart:  NewClock(12, 0),
		LunchEnd:    NewClock(13, 0),
		Granularity: 30,
		ClosedDays:  []time.Weekday{time.Sunday},
		LunchRule:   LunchRuleLegacy,
	}
}

func (c Calendar) Validate() error {
	if c.Open >= c.Close {
		return errors.New("calendar: open must be before close")
	}
	if c.LunchStart > c.LunchEnd {
		return errors.New("calendar: lunch start must not be after lunch end")
	}
	if c.hasLunch() && (c.LunchStart < c.Open || c.LunchEnd > c.Close) {
		return errors.New("calendar: lunch break must fall within business hours")
	}
	if c.Granularity <= 0 || 60%c.Granularity != 0 {
		return fmt.Errorf("calendar: granularity %d must divide an hour", c.Granularity)
	}
	if int(c.Open)%c.Granularity != 0 {
		return fmt.Errorf("calendar: open %s is not on the %d minute grid", c.Open, c.Granularity)
	}
	for _, d := range c.ClosedDays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("calendar: invalid weekday %d", d)
		}
	}
	switch c.LunchRule {
	case LunchRuleLegacy, LunchRuleOverlap:
	default:
		return fmt.Errorf("calendar: unknown lunch rule %q", c.LunchRule)
	}
	return nil
}

func (c Calendar) hasLunch() bool {
	return c.LunchEnd > c.LunchStart
}

func (c Calendar) IsClosed(day time.Weekday) bool {
	return slices.Contains(c.ClosedDays, day)
}

func (c Calendar) WithinHours(t Clock) bool {
	return t >= c.Open && t < c.Close
}

// StartsDuringLunch reports whether t falls inside [LunchStart, LunchEnd).
func (c Calendar) StartsDuringLunch(t Clock) bool {
	return c.hasLunch() && t >= c.LunchStart && t < c.LunchEnd
}

func (c Calendar) OverlapsLunch(t Clock, durationMin int) bool {
	return c.hasLunch() && t < c.LunchEnd && c.LunchStart < t.Add(durationMin)
}

// ===============================
// Slot generation
// ===============================

// Slots yields the candidate start times of a day for a service of the
// given duration, in ascending order. The sequence can be ranged over
// any number of times.
func (c Calendar) Slots(durationMin int) iter.Seq[Clock] {
	return func(yield func(Clock) bool) {
		if durationMin <= 0 || c.Granularity <= 0 {
			return
		}

		for t := c.Open; t < c.Close; t = t.Add(c.Granularity) {
			if c.hasLunch() && t == c.LunchStart {
				continue
			}

			// ends are monotonic: once past closing, every later start is too
			if t.Add(durationMin) > c.Close {
				return
			}

			if c.rejectsStart(t, durationMin) {
				continue
			}

			if !yield(t) {
				return
			}
		}
	}
}

func (c Calendar) GenerateSlots(durationMin int) []Clock {
	return slices.Collect(c.Slots(durationMin))
}

func (c Calendar) rejectsStart(t Clock, durationMin int) bool {
	if c.StartsDuringLunch(t) {
		return true
	}

	switch c.LunchRule {
	case LunchRuleOverlap:
		return c.OverlapsLunch(t, durationMin)
	default:
		return c.hasLunch() &&
			t.Add(c.Granularity) == c.LunchStart &&
			durationMin == legacyBlockedDurationMin
	}
}
