package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment methods the app records. No processing happens; the chosen method
// is stamped on the ticket as-is.
const (
	PaymentCard   = "CARD"
	PaymentCash   = "CASH"
	PaymentWallet = "WALLET"
)

// Ticket is the immutable persisted record of a completed booking. It is
// created only by committing a booking session and never mutated afterwards.
type Ticket struct {
	ID            uuid.UUID     `json:"id"`
	Code          string        `json:"code" validate:"required"`
	MovieTitle    string        `json:"movie_title" validate:"required"`
	PosterPath    string        `json:"poster_path"`
	Date          time.Time     `json:"date" validate:"required"`
	ShowTime      ShowTime      `json:"show_time" validate:"required"`
	Seats         []Seat        `json:"seats"`
	Food          []OrderedFood `json:"food"`
	TotalPrice    float64       `json:"total_price"`
	PaymentMethod string        `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
}

// SeatCodes lists the booked seat labels in grid order.
func (t Ticket) SeatCodes() []string {
	codes := make([]string, 0, len(t.Seats))
	for _, seat := range t.Seats {
		codes = append(codes, seat.Code())
	}
	return codes
}
