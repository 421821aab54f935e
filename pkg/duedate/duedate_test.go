package duedate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatDueDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		locale language.Tag
		want   string
	}{
		{"empty", "", language.AmericanEnglish, "TBD"},
		{"blank", "   ", language.AmericanEnglish, "TBD"},
		{"tbd lower", "tbd", language.AmericanEnglish, "TBD"},
		{"tbd upper", "TBD", language.AmericanEnglish, "TBD"},
		{"tbd mixed", " Tbd ", language.AmericanEnglish, "TBD"},
		{"iso date", "2025-10-25", language.AmericanEnglish, "Oct 25, 2025"},
		{"iso date padded", "  2025-10-25 ", language.AmericanEnglish, "Oct 25, 2025"},
		{"written date", "October 5, 2025", language.AmericanEnglish, "Oct 5, 2025"},
		{"slash us", "03/04/2025", language.AmericanEnglish, "Mar 4, 2025"},
		{"day first locale", "2025-10-25", language.BritishEnglish, "25 Oct 2025"},
		{"slash uk", "03/04/2025", language.BritishEnglish, "3 Apr 2025"},
		{"bare english", "2025-10-25", language.English, "Oct 25, 2025"},
		{"german", "2025-10-25", language.German, "25 Oct 2025"},
		{"not a date", "not-a-date", language.AmericanEnglish, "not-a-date"},
		{"not a date trimmed", "  next week-ish  ", language.AmericanEnglish, "next week-ish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDueDateIn(tt.input, tt.locale, time.UTC)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDueDate_NeverPanics(t *testing.T) {
	inputs := []string{"/", "//", "0", "-", ":", "2025-", "Oct", "99/99/9999", "\x00", "1.2.3.4.5"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { FormatDueDate(in, language.Und) })
		assert.NotPanics(t, func() { DueStatus(in, time.Now(), language.Und) })
	}
}

func TestDueStatus(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)
	now := time.Date(2025, 6, 10, 23, 30, 0, 0, loc)

	tests := []struct {
		input string
		want  string
	}{
		{"2025-06-10", "Due today"},
		{"2025-06-05", "Overdue"},
		{"2025-06-09", "Overdue"},
		{"2025-06-11", "Due in 1 day"},
		{"2025-06-15", "Due in 5 days"},
		{"2025-07-10", "Due in 30 days"},
		{"", ""},
		{"TBD", ""},
		{"whenever", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, DueStatus(tt.input, now, language.AmericanEnglish))
		})
	}
}

func TestDueStatus_DayFirstLocale(t *testing.T) {
	now := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "5 Jun 2025", FormatDueDateIn("05/06/2025", language.BritishEnglish, time.UTC))
	assert.Equal(t, "Due in 2 days", DueStatus("05/06/2025", now, language.BritishEnglish))
	assert.Equal(t, "Overdue", DueStatus("05/06/2025", now, language.AmericanEnglish))
}

func TestDaysBetween_FarFuture(t *testing.T) {
	a := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2500, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 173490, DaysBetween(a, b))
	assert.Equal(t, -173490, DaysBetween(b, a))
	assert.Equal(t, "Due in 173490 days", DueStatus("2500-01-01", a, language.AmericanEnglish))
}

func TestDaysBetween_DST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	a := time.Date(2025, 3, 8, 12, 0, 0, 0, loc)
	b := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	assert.Equal(t, 2, DaysBetween(a, b))
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, language.BritishEnglish, ParseLocale("en-GB,en;q=0.8"))
	assert.Equal(t, DefaultLocale, ParseLocale(""))
	assert.Equal(t, DefaultLocale, ParseLocale("!!!"))
	assert.True(t, IsMonthFirst(ParseLocale("en-US")))
	assert.False(t, IsMonthFirst(ParseLocale("fr-FR,fr;q=0.9")))
	assert.True(t, IsMonthFirst(language.Und))
}
