package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
)

// NotePDF renders a note as a PDF document with a diagonal watermark on
// each page and returns the raw bytes.
func NotePDF(note *models.Note, watermark string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 25, 20)

	pdf.SetHeaderFunc(func() {
		if watermark == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 48)
		pdf.SetTextColor(225, 225, 225)
		pdf.TransformBegin()
		pdf.TransformRotate(45, 105, 150)
		pdf.Text(40, 155, watermark)
		pdf.TransformEnd()
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, note.Title, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, note.Content, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render note PDF: %w", err)
	}
	return buf.Bytes(), nil
}
