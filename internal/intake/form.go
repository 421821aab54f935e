// Package intake holds the state of the task input box of a session.
package intake

import (
	"errors"
	"fmt"
	"strings"
)

// PDFFallbackText replaces the input when a PDF could not be read.
const PDFFallbackText = "Sorry, there was an error reading the PDF file. Please copy and paste the text instead."

// ErrFormBusy is returned when the form is locked by a running parse or generation.
var ErrFormBusy = errors.New("intake: form is busy")

// Form is the input box plus its two busy flags. It is not safe for
// concurrent use; the owning session serializes access.
type Form struct {
	Text    string `json:"text"`
	Parsing bool   `json:"parsing"`
	Loading bool   `json:"loading"`
}

// Busy reports whether edits and submissions are locked.
func (f *Form) Busy() bool {
	return f.Parsing || f.Loading
}

// SetText replaces the typed text.
func (f *Form) SetText(s string) error {
	if f.Busy() {
		return ErrFormBusy
	}
	f.Text = s
	return nil
}

// BeginParse shows the parsing placeholder for filename.
func (f *Form) BeginParse(filename string) error {
	if f.Busy() {
		return ErrFormBusy
	}
	f.Parsing = true
	f.Text = ParsingPlaceholder(filename)
	return nil
}

// FinishParse ends a parse started by BeginParse. On error the text becomes
// PDFFallbackText.
func (f *Form) FinishParse(text string, err error) {
	if err != nil {
		f.Text = PDFFallbackText
	} else {
		f.Text = text
	}
	f.Parsing = false
}

// CanSubmit reports whether a generation may start.
func (f *Form) CanSubmit() bool {
	return !f.Busy() && strings.TrimSpace(f.Text) != ""
}

// ParsingPlaceholder is the text shown while a file is being read.
func ParsingPlaceholder(filename string) string {
	return fmt.Sprintf("Parsing %s...", filename)
}
