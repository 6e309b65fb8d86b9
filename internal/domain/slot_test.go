package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlot(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "morning token", raw: "AM", want: "AM"},
		{name: "lowercase morning token", raw: "am", want: "AM"},
		{name: "afternoon token with spaces", raw: " pm ", want: "PM"},
		{name: "canonical time", raw: "09:30", want: "09:30"},
		{name: "single digit hour", raw: "9:30", want: "09:30"},
		{name: "time with seconds", raw: "14:00:00", want: "14:00"},
		{name: "hour out of range", raw: "25:00", want: "25:00"},
		{name: "garbage", raw: "noon", want: "noon"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSlot(tt.raw))
		})
	}
}

func TestNormalizeSlot_Idempotent(t *testing.T) {
	inputs := []string{"am", "PM", "9:30", "14:00:00", "25:99", "noon", ""}

	for _, raw := range inputs {
		once := NormalizeSlot(raw)
		assert.Equal(t, once, NormalizeSlot(once), "normalization of %q must be idempotent", raw)
	}
}

func TestIsValidSlot(t *testing.T) {
	tests := []struct {
		slot string
		want bool
	}{
		{slot: "AM", want: true},
		{slot: "PM", want: true},
		{slot: "00:00", want: true},
		{slot: "09:30", want: true},
		{slot: "23:30", want: true},
		{slot: "09:15", want: false}, // off the half-hour grid
		{slot: "24:00", want: false},
		{slot: "9:30", want: false}, // must be normalized first
		{slot: "am", want: false},
		{slot: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSlot(tt.slot))
		})
	}
}
