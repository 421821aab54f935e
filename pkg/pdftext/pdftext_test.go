package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF writes a minimal PDF with one content stream per page.
func buildPDF(pages ...string) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	fontID := 3 + 2*len(pages)
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}

	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	for i, content := range pages {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>", 4+2*i, fontID))
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}
	obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

func TestExtract(t *testing.T) {
	doc := buildPDF(
		"BT /F1 12 Tf 1 0 0 1 72 720 Tm (Calculus Chapter 4) Tj 1 0 0 1 72 700 Tm (Essay draft) Tj ET",
		"BT /F1 12 Tf 1 0 0 1 72 720 Tm (Lab report) Tj ET",
	)

	text, err := Extract(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)
	assert.Equal(t, "Calculus Chapter 4 Essay draft\nLab report\n", text)
}

func TestExtract_EmptyPage(t *testing.T) {
	doc := buildPDF("")

	text, err := Extract(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)
	assert.Equal(t, "\n", text)
}

func TestExtract_Unreadable(t *testing.T) {
	valid := buildPDF("BT /F1 12 Tf 1 0 0 1 72 720 Tm (x) Tj ET")

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"tiny", []byte("%PDF")},
		{"plain text", []byte(strings.Repeat("this is not a pdf\n", 20))},
		{"png header", append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 200)...)},
		{"truncated", valid[:len(valid)/2]},
		{"garbage tail", append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("garbage "), 50)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				text string
				err  error
			)
			assert.NotPanics(t, func() {
				text, err = Extract(bytes.NewReader(tt.data), int64(len(tt.data)))
			})
			assert.True(t, errors.Is(err, ErrUnreadable), "got %v", err)
			assert.Empty(t, text)
		})
	}
}
