// Package pdftext pulls the plain text out of uploaded syllabus PDFs.
package pdftext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadable is returned for corrupt, encrypted or non-PDF documents.
var ErrUnreadable = errors.New("pdftext: unreadable document")

// Extract reads every page in order starting at page 1. The text items of a
// page are joined by single spaces and each page is terminated by a newline.
func Extract(r io.ReaderAt, size int64) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrUnreadable, rec)
		}
	}()

	if r == nil || size <= 0 {
		return "", ErrUnreadable
	}

	doc, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	var sb strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		items, err := pageItems(doc.Page(i))
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrUnreadable, i, err)
		}
		sb.WriteString(strings.Join(items, " "))
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// pageItems lists the page's text runs top to bottom, left to right.
func pageItems(p pdf.Page) ([]string, error) {
	if p.V.IsNull() {
		return nil, nil
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, err
	}

	var items []string
	for _, row := range rows {
		for _, t := range row.Content {
			// Td moves emit empty runs.
			if t.S == "" {
				continue
			}
			items = append(items, t.S)
		}
	}
	return items, nil
}
