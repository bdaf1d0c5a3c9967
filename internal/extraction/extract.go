package extraction

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tsawler/tabula"
)

// Extract reads the document at path and returns its flat text content.
// PDF, DOCX, and ODT documents go through tabula; HTML through goquery;
// anything else is read as plain text. A document that yields no text at all
// is an ExtractionError, never an empty result.
func Extract(path string) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx", ".odt":
		text, err = extractDocument(path)
	case ".html", ".htm":
		text, err = extractHTML(path)
	default:
		text, err = extractPlain(path)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Path: path, Message: "document contains no extractable text"}
	}
	return text, nil
}

// extractDocument extracts text from PDF, DOCX, and ODT files.
func extractDocument(path string) (string, error) {
	// Layout warnings from tabula are advisory; the formatting analyzer runs
	// its own checks on the extracted text.
	text, _, err := tabula.Open(path).Text()
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to extract document text", Cause: err}
	}
	return text, nil
}

// extractHTML extracts visible text from an HTML document.
func extractHTML(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to open file", Cause: err}
	}
	defer func() { _ = file.Close() }()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript").Remove()
	if body := doc.Find("body"); body.Length() > 0 {
		return body.Text(), nil
	}
	return doc.Text(), nil
}

// extractPlain reads the file as UTF-8 text.
func extractPlain(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}
	return string(content), nil
}
