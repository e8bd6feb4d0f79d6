// Package pricing holds the seat pricing and selectability rules.
// Both functions are pure and total over well-formed input; a seat's
// price is fixed here, at seat level, and never recomputed at checkout.
package pricing

import (
	"math"

	"cinema-wizard/internal/data/entity"
)

// VIPMultiplier is the surcharge applied to VIP seats on top of the
// showtime base price.
const VIPMultiplier = 1.2

// PriceOf returns the ticket price for a seat of the given type at the
// given showtime base price. Prices are in VND, which has no minor
// subdivision, so the VIP price is rounded up to a whole amount: a VIP
// seat always costs strictly more than a standard one at any base
// price above zero.
func PriceOf(seatType entity.SeatType, basePrice float64) float64 {
	if seatType == entity.SeatTypeVIP {
		return math.Ceil(basePrice * VIPMultiplier)
	}
	return basePrice
}

// IsSelectable reports whether the seat may be added to a selection.
func IsSelectable(seat *entity.Seat) bool {
	return seat.IsAvailable
}
