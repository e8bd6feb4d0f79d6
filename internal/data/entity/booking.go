package entity

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// BookingRequest is what the ledger collaborator receives on submit.
type BookingRequest struct {
	UserID      string        `json:"userId"`
	ShowtimeID  string        `json:"showTimeId"`
	SeatIDs     []string      `json:"seatIds"`
	TotalPrice  float64       `json:"totalPrice"`
	BookingDate time.Time     `json:"bookingDate"`
	Status      BookingStatus `json:"status"`
}

// Booking is the ledger's confirmed record. Created remotely; the
// session holds no ownership of it after submit.
type Booking struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	ShowtimeID  string        `json:"showTimeId"`
	SeatIDs     []string      `json:"seatIds"`
	TotalPrice  float64       `json:"totalPrice"`
	BookingDate time.Time     `json:"bookingDate"`
	Status      BookingStatus `json:"status"`
}
