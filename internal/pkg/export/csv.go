package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
)

// WriteAttendeesCSV writes the attendee list of a webinar as CSV with a
// header row, one row per attendee.
func WriteAttendeesCSV(w io.Writer, attendees []models.WebinarAttendee) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"name", "email", "joined_at"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, a := range attendees {
		record := []string{a.Name, a.Email, a.JoinedAt.UTC().Format(time.RFC3339)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
