package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/abhisek/pyquiz/internal/question"
)

// PDFDoc is a question set ready for PDF rendering.
type PDFDoc struct {
	Title string

	// Subtitle is an optional second line, for example a session
	// score or topic summary.
	Subtitle string

	Questions []question.Question
}

var optionLetters = []string{"A", "B", "C", "D"}

// PDF renders the document to path: a questions section followed by
// an answers and explanations section. Uses only the built-in core
// fonts, so no font files need to ship with the binary.
func PDF(doc PDFDoc, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 9, doc.Title, "", "C", false)
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 7, doc.Subtitle, "", "C", false)
	}
	pdf.Ln(4)

	for i, q := range doc.Questions {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, q.Text), "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		for j, opt := range q.Options {
			letter := fmt.Sprintf("%d", j+1)
			if j < len(optionLetters) {
				letter = optionLetters[j]
			}
			pdf.MultiCell(0, 6, fmt.Sprintf("   %s) %s", letter, opt), "", "L", false)
		}
		pdf.Ln(3)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 9, "Answers & Explanations", "", "C", false)
	pdf.Ln(4)

	for i, q := range doc.Questions {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, q.Answer), "", "L", false)

		if q.Explanation != "" {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, q.Explanation, "", "L", false)
		}
		pdf.Ln(2)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return &ExportError{Format: "pdf", Path: path, Err: err}
	}
	return nil
}
