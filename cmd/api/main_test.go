package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
)

func TestPrintSlots(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSlots(&buf, domain.DefaultCalendar(), 60, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "09:00", lines[0])
	assert.NotContains(t, lines, "11:30")
	assert.NotContains(t, lines, "12:00")
	assert.Equal(t, "18:00", lines[len(lines)-2])
	assert.Equal(t, "16 slots (60 min, lunch rule legacy)", lines[len(lines)-1])
}

func TestPrintSlots_ClosedDay(t *testing.T) {
	var buf bytes.Buffer
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	require.NoError(t, printSlots(&buf, domain.DefaultCalendar(), 30, &sunday))
	assert.Equal(t, "2024-06-09: closed\n", buf.String())
}

func TestPrintSlots_InvalidDuration(t *testing.T) {
	assert.Error(t, printSlots(&bytes.Buffer{}, domain.DefaultCalendar(), 0, nil))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "barbershop-booking version 1.0.0\n", buf.String())
}
