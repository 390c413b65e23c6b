package application

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//PNW//Events//EN
BEGIN:VEVENT
UID:winter-gala@pnw.edu
DTSTART:20250110T230000Z
DTEND:20250111T020000Z
SUMMARY:Winter Gala
END:VEVENT
BEGIN:VEVENT
UID:spring-concert@pnw.edu
DTSTART:20270510T180000Z
DTEND:20270510T200000Z
SUMMARY:Spring Concert
LOCATION:SULB Alumni Hall
DESCRIPTION:Open to all students
END:VEVENT
BEGIN:VEVENT
UID:career-fair@pnw.edu
DTSTART:20270401T140000Z
SUMMARY:Career Fair
END:VEVENT
END:VCALENDAR`

func feedReader() *strings.Reader {
	// ICS lines are CRLF-terminated on the wire.
	return strings.NewReader(strings.ReplaceAll(sampleFeed, "\n", "\r\n"))
}

func TestParseEvents(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	events, err := ParseEvents(feedReader(), now)
	require.NoError(t, err)
	require.Len(t, events, 2, "the 2025 gala is already over")

	// Sorted by start time.
	assert.Equal(t, "Career Fair", events[0].Summary)
	assert.Equal(t, "Spring Concert", events[1].Summary)

	// An entry without DTEND gets its start as the end.
	assert.Equal(t, events[0].StartsAt, events[0].EndsAt)

	assert.Equal(t, "career-fair@pnw.edu", events[0].UID)
	assert.Equal(t, "SULB Alumni Hall", events[1].Location)
	assert.Equal(t, "Open to all students", events[1].Description)
}

func TestParseEvents_AllInThePast(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	events, err := ParseEvents(feedReader(), now)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseEvents_Garbage(t *testing.T) {
	_, err := ParseEvents(strings.NewReader("this is not a calendar"), time.Now())
	assert.Error(t, err)
}
