package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalendarDate_Capacity(t *testing.T) {
	tests := []struct {
		name       string
		maxSlots   int
		booked     int
		wantClosed bool
		wantFull   bool
		wantFree   int
	}{
		{name: "untouched date", maxSlots: 5, booked: 0, wantFree: 5},
		{name: "partially booked", maxSlots: 5, booked: 3, wantFree: 2},
		{name: "full date", maxSlots: 5, booked: 5, wantFull: true, wantFree: 0},
		{name: "closed date", maxSlots: 0, booked: 0, wantClosed: true, wantFull: true, wantFree: 0},
		{name: "overbooked after capacity cut", maxSlots: 2, booked: 4, wantFull: true, wantFree: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CalendarDate{MaxSlots: tt.maxSlots, Booked: tt.booked}
			assert.Equal(t, tt.wantClosed, c.IsClosed())
			assert.Equal(t, tt.wantFull, c.IsFull())
			assert.Equal(t, tt.wantFree, c.FreeSlots())
		})
	}
}
