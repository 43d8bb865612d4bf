package domain

import (
	"fmt"
	"time"
)

// ShowTime is one of the five fixed daily screening slots, encoded as HHMM.
type ShowTime int

const (
	Afternoon1 ShowTime = 1330
	Afternoon2 ShowTime = 1630
	Evening    ShowTime = 1900
	Night1     ShowTime = 2145
	Night2     ShowTime = 2215
)

// Every showing blocks the room for two hours regardless of runtime.
const showDuration = 2 * time.Hour

func ShowTimes() []ShowTime {
	return []ShowTime{Afternoon1, Afternoon2, Evening, Night1, Night2}
}

func (t ShowTime) Clock() (hour, minute int) {
	return int(t) / 100, int(t) % 100
}

func (t ShowTime) String() string {
	hour, minute := t.Clock()
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// PriceCategory is the standard tier charged for this show time.
func (t ShowTime) PriceCategory() TicketPriceCategory {
	switch t {
	case Afternoon1:
		return PriceAfternoon1
	case Afternoon2:
		return PriceAfternoon2
	case Evening:
		return PriceEvening
	case Night1:
		return PriceNight1
	default:
		return PriceNight2
	}
}

type TicketPriceCategory float64

const (
	PriceAfternoon1 TicketPriceCategory = 13.0
	PriceAfternoon2 TicketPriceCategory = 15.0
	PriceEvening    TicketPriceCategory = 18.0
	PriceNight1     TicketPriceCategory = 20.0
	PriceNight2     TicketPriceCategory = 25.0
)

// TicketPrice pairs a price category with a display currency. The currency
// only affects formatting, never the numeric amount.
type TicketPrice struct {
	Category TicketPriceCategory `json:"category"`
	Currency string              `json:"currency"`
}

func (p TicketPrice) Price() float64 {
	return float64(p.Category)
}

// TimeSlot is a specific calendar date plus one of the fixed daily show
// times, carrying the ticket prices offered for that showing.
type TimeSlot struct {
	Date         time.Time     `json:"date"`
	ShowTime     ShowTime      `json:"show_time"`
	TicketPrices []TicketPrice `json:"ticket_prices"`
}

// NewTimeSlot builds a slot priced at the show time's standard category.
func NewTimeSlot(date time.Time, showTime ShowTime, currency string) TimeSlot {
	return TimeSlot{
		Date:         date,
		ShowTime:     showTime,
		TicketPrices: []TicketPrice{{Category: showTime.PriceCategory(), Currency: currency}},
	}
}

func (s TimeSlot) StartTime() time.Time {
	hour, minute := s.ShowTime.Clock()
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), hour, minute, 0, 0, s.Date.Location())
}

func (s TimeSlot) EndTime() time.Time {
	return s.StartTime().Add(showDuration)
}

// Equal compares calendar date and show time. Show time is part of slot
// identity: two showings on the same day are distinct slots.
func (s TimeSlot) Equal(other TimeSlot) bool {
	return s.SameDay(other) && s.ShowTime == other.ShowTime
}

// SameDay reports whether both slots fall on the same calendar date,
// regardless of show time. Date pickers group slots this way.
func (s TimeSlot) SameDay(other TimeSlot) bool {
	y1, m1, d1 := s.Date.Date()
	y2, m2, d2 := other.Date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// UpcomingDates returns n consecutive calendar dates starting at from.
func UpcomingDates(from time.Time, n int) []time.Time {
	dates := make([]time.Time, 0, n)
	for day := 0; day < n; day++ {
		dates = append(dates, from.AddDate(0, 0, day))
	}
	return dates
}
