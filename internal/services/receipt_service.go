package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"ayambil/internal/domain/models"
	"ayambil/internal/i18n"
	"ayambil/internal/repositories"
	"ayambil/internal/utils"
)

// ReceiptService renders a downloadable confirmation PDF for one submission.
type ReceiptService struct {
	SubmissionRepo repositories.SubmissionRepository
	RequestID      string

	// Loader replaces the repository lookup in tests.
	Loader func(int64) (models.Submission, error)
}

func (s ReceiptService) load(id int64) (models.Submission, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return BookingService{SubmissionRepo: s.SubmissionRepo}.Get(id)
}

// Generate returns the PDF bytes and a suggested filename.
func (s ReceiptService) Generate(id int64) ([]byte, string, error) {
	sub, err := s.load(id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", fmt.Sprintf("submission_id=%d", id))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "AYAMBIL BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking No     : #%d", sub.ID),
		fmt.Sprintf("Name           : %s", safe(sub.Name, "-")),
		fmt.Sprintf("Ayambil Shala  : %s", safe(sub.AyambilShalaName, "-")),
		fmt.Sprintf("City           : %s", safe(sub.City, "-")),
		fmt.Sprintf("WhatsApp       : %s", safe(sub.WhatsappNumber, "-")),
		fmt.Sprintf("UPI            : %s", safe(sub.UpiNumber, "-")),
		fmt.Sprintf("Booking Date   : %s", safe(i18n.FormatDateByLanguage(sub.BookingDate, i18n.LangEnglish), "-")),
		fmt.Sprintf("Status         : %s", safe(sub.Status, "-")),
		fmt.Sprintf("Submitted      : %s", sub.CreatedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: this receipt confirms one ayambil booking for the date above. Please keep it for reference.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("receipt-%d-%s.pdf", sub.ID, time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
