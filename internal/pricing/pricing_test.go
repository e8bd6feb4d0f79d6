package pricing

import (
	"testing"

	"cinema-wizard/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestPriceOf(t *testing.T) {
	tests := []struct {
		name      string
		seatType  entity.SeatType
		basePrice float64
		want      float64
	}{
		{"standard keeps base price", entity.SeatTypeStandard, 90000, 90000},
		{"vip gets 20 percent surcharge", entity.SeatTypeVIP, 90000, 108000},
		{"vip rounds to whole dong", entity.SeatTypeVIP, 75500, 90600},
		{"vip rounds up at tiny base", entity.SeatTypeVIP, 1, 2},
		{"vip rounds up where rounding would collapse", entity.SeatTypeVIP, 2, 3},
		{"zero base price", entity.SeatTypeVIP, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceOf(tt.seatType, tt.basePrice))
		})
	}
}

func TestPriceOf_VIPStrictlyAboveStandard(t *testing.T) {
	for _, base := range []float64{1, 2, 3, 45000, 90000, 120000, 250000} {
		vip := PriceOf(entity.SeatTypeVIP, base)
		std := PriceOf(entity.SeatTypeStandard, base)
		assert.Greater(t, vip, std, "base price %v", base)
	}
}

func TestIsSelectable(t *testing.T) {
	assert.True(t, IsSelectable(&entity.Seat{ID: "A1", IsAvailable: true}))
	assert.False(t, IsSelectable(&entity.Seat{ID: "A1", IsAvailable: false}))
}
