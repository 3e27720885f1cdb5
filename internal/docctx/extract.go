// Package docctx extracts study-material text from reference PDFs and
// chunks it so question generation can be grounded in course content.
package docctx

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads the plain text of every page in the PDF at path.
func ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", path, err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, reader); err != nil {
		return "", fmt.Errorf("read text from %s: %w", path, err)
	}

	return b.String(), nil
}
