package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
)

func TestNotePDF(t *testing.T) {
	note := &models.Note{
		Title:   "Goroutines and Channels",
		Content: "Concurrency is the composition of independently executing processes.",
	}

	pdf, err := NotePDF(note, "NotesFind")
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestNotePDFWithoutWatermark(t *testing.T) {
	pdf, err := NotePDF(&models.Note{Title: "Plain", Content: "No watermark on this one."}, "")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
