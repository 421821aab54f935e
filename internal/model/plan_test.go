package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mom-planner/internal/model"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		in        model.Category
		normal    model.Category
		valid     bool
		orDefault model.Category
	}{
		{"Productivity", model.CategoryProductivity, true, model.CategoryProductivity},
		{"  physical ", model.CategoryPhysical, true, model.CategoryPhysical},
		{"MENTAL", model.CategoryMental, true, model.CategoryMental},
		{"Social", "Social", false, model.CategoryProductivity},
		{"", "", false, model.CategoryProductivity},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			n := tt.in.Normalize()
			assert.Equal(t, tt.normal, n)
			assert.Equal(t, tt.valid, n.IsValid())
			assert.Equal(t, tt.orDefault, tt.in.OrDefault())
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, ok := model.ParseStatus("in progress")
	assert.True(t, ok)
	assert.Equal(t, model.StatusInProgress, s)

	_, ok = model.ParseStatus("Done")
	assert.False(t, ok)
}

func TestParseTone(t *testing.T) {
	tone, ok := model.ParseTone("")
	assert.True(t, ok)
	assert.Equal(t, model.ToneNeutral, tone)

	tone, ok = model.ParseTone("gentle & encouraging")
	assert.True(t, ok)
	assert.Equal(t, model.ToneGentle, tone)

	_, ok = model.ParseTone("Sarcastic")
	assert.False(t, ok)
}
