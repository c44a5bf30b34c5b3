package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
)

func TestWriteAttendeesCSV(t *testing.T) {
	joined := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	attendees := []models.WebinarAttendee{
		{Name: "Ada Lovelace", Email: "ada@example.com", JoinedAt: joined},
		{Name: "Alan Turing", Email: "alan@example.com", JoinedAt: joined.Add(time.Minute)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAttendeesCSV(&buf, attendees))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,email,joined_at", lines[0])
	assert.Equal(t, "Ada Lovelace,ada@example.com,2025-03-14T15:09:26Z", lines[1])
	assert.Equal(t, "Alan Turing,alan@example.com,2025-03-14T15:10:26Z", lines[2])
}

func TestWriteAttendeesCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAttendeesCSV(&buf, nil))
	assert.Equal(t, "name,email,joined_at\n", buf.String())
}

func TestWriteAttendeesCSVQuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAttendeesCSV(&buf, []models.WebinarAttendee{
		{Name: "Lovelace, Ada", Email: "ada@example.com", JoinedAt: time.Unix(0, 0)},
	}))
	assert.Contains(t, buf.String(), `"Lovelace, Ada"`)
}
