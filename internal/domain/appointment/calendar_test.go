package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clocks(t *testing.T, values ...string) []Clock {
	t.Helper()
	out := make([]Clock, 0, len(values))
	for _, v := range values {
		c, err := ParseClock(v)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestCalendar_GenerateSlots_Default30(t *testing.T) {
	slots := DefaultCalendar().GenerateSlots(30)

	want := clocks(t,
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
		"16:00", "16:30", "17:00", "17:30", "18:00", "18:30",
	)

	assert.Len(t, slots, 18)
	assert.Equal(t, want, slots)
	assert.NotContains(t, slots, NewClock(12, 0))
	assert.NotContains(t, slots, NewClock(12, 30))
}

func TestCalendar_GenerateSlots_DurationOverrun(t *testing.T) {
	slots := DefaultCalendar().GenerateSlots(90)

	assert.NotContains(t, slots, NewClock(18, 0))
	assert.NotContains(t, slots, NewClock(18, 30))
	assert.Contains(t, slots, NewClock(17, 30))
	assert.Equal(t, NewClock(17, 30), slots[len(slots)-1])
}

func TestCalendar_GenerateSlots_LegacyLunchRule(t *testing.T) {
	cal := DefaultCalendar()

	t.Run("11:30 blocked for exactly 60 minutes", func(t *testing.T) {
		slots := cal.GenerateSlots(60)
		assert.NotContains(t, slots, NewClock(11, 30))
		assert.Contains(t, slots, NewClock(11, 0))
		assert.Len(t, slots, 16)
	})

	t.Run("11:30 kept for 90 minutes", func(t *testing.T) {
		assert.Contains(t, cal.GenerateSlots(90), NewClock(11, 30))
	})

	t.Run("11:00 kept for 90 minutes", func(t *testing.T) {
		assert.Contains(t, cal.GenerateSlots(90), NewClock(11, 0))
	})
}

func TestCalendar_GenerateSlots_OverlapLunchRule(t *testing.T) {
	cal := DefaultCalendar()
	cal.LunchRule = LunchRuleOverlap

	slots := cal.GenerateSlots(90)
	assert.NotContains(t, slots, NewClock(11, 0))
	assert.NotContains(t, slots, NewClock(11, 30))
	assert.Contains(t, slots, NewClock(10, 30))
	assert.Contains(t, slots, NewClock(13, 0))

	assert.Equal(t, DefaultCalendar().GenerateSlots(30), cal.GenerateSlots(30))
}

func TestCalendar_GenerateSlots_Edges(t *testing.T) {
	cal := DefaultCalendar()

	assert.Empty(t, cal.GenerateSlots(0))
	assert.Empty(t, cal.GenerateSlots(-30))
	assert.Empty(t, cal.GenerateSlots(11*60))

	t.Run("restartable", func(t *testing.T) {
		seq := cal.Slots(30)
		var first, second []Clock
		for c := range seq {
			first = append(first, c)
		}
		for c := range seq {
			second = append(second, c)
		}
		assert.Equal(t, first, second)
	})

	t.Run("early stop", func(t *testing.T) {
		var got []Clock
		for c := range cal.Slots(30) {
			got = append(got, c)
			if len(got) == 3 {
				break
			}
		}
		assert.Equal(t, clocks(t, "09:00", "09:30", "10:00"), got)
	})
}

func TestCalendar_Validate(t *testing.T) {
	require.NoError(t, DefaultCalendar().Validate())

	tests := []struct {
		name   string
		mutate func(c *Calendar)
	}{
		{"open after close", func(c *Calendar) { c.Open = NewClock(20, 0) }},
		{"lunch reversed", func(c *Calendar) { c.LunchStart = NewClock(14, 0) }},
		{"lunch outside hours", func(c *Calendar) { c.LunchEnd = NewClock(20, 0) }},
		{"granularity zero", func(c *Calendar) { c.Granularity = 0 }},
		{"granularity not dividing hour", func(c *Calendar) { c.Granularity = 25 }},
		{"open off the grid", func(c *Calendar) { c.Open = NewClock(9, 15) }},
		{"bad weekday", func(c *Calendar) { c.ClosedDays = []time.Weekday{9} }},
		{"unknown rule", func(c *Calendar) { c.LunchRule = "strict" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := DefaultCalendar()
			tt.mutate(&cal)
			assert.Error(t, cal.Validate())
		})
	}
}

func TestCalendar_Validate_OpenOnGrid(t *testing.T) {
	cal := DefaultCalendar()
	cal.Open = NewClock(9, 15)
	cal.Granularity = 15
	require.NoError(t, cal.Validate())

	cal.Granularity = 30
	assert.ErrorContains(t, cal.Validate(), "09:15")
}

func TestCalendar_IsClosed(t *testing.T) {
	cal := DefaultCalendar()
	assert.True(t, cal.IsClosed(time.Sunday))
	assert.False(t, cal.IsClosed(time.Monday))
	assert.False(t, cal.IsClosed(time.Saturday))
}

func TestClock(t *testing.T) {
	c, err := ParseClock("18:30")
	require.NoError(t, err)
	assert.Equal(t, 18, c.Hour())
	assert.Equal(t, 30, c.Minute())
	assert.Equal(t, "18:30", c.String())
	assert.Equal(t, at(18, 30), c.On(at(0, 0)))

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	var parsed Clock
	require.NoError(t, parsed.UnmarshalText([]byte("07:15")))
	assert.Equal(t, NewClock(7, 15), parsed)
}
