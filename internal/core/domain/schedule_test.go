package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movietix/booking/internal/core/domain"
)

func TestShowTime_Clock(t *testing.T) {
	hour, minute := domain.Afternoon1.Clock()
	assert.Equal(t, 13, hour)
	assert.Equal(t, 30, minute)

	assert.Equal(t, "13:30", domain.Afternoon1.String())
	assert.Equal(t, "21:45", domain.Night1.String())
}

func TestShowTime_PriceCategories(t *testing.T) {
	want := map[domain.ShowTime]domain.TicketPriceCategory{
		domain.Afternoon1: domain.PriceAfternoon1,
		domain.Afternoon2: domain.PriceAfternoon2,
		domain.Evening:    domain.PriceEvening,
		domain.Night1:     domain.PriceNight1,
		domain.Night2:     domain.PriceNight2,
	}
	for showTime, category := range want {
		assert.Equal(t, category, showTime.PriceCategory())
	}
	assert.Len(t, domain.ShowTimes(), 5)
}

func TestTimeSlot_StartAndEnd(t *testing.T) {
	date := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
	slot := domain.NewTimeSlot(date, domain.Evening, "USD")

	assert.Equal(t, time.Date(2026, time.September, 5, 19, 0, 0, 0, time.UTC), slot.StartTime())
	// Every showing blocks two hours regardless of runtime.
	assert.Equal(t, time.Date(2026, time.September, 5, 21, 0, 0, 0, time.UTC), slot.EndTime())
}

func TestTimeSlot_Equality(t *testing.T) {
	date := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)

	evening := domain.NewTimeSlot(date, domain.Evening, "USD")
	night := domain.NewTimeSlot(date, domain.Night1, "USD")
	nextDay := domain.NewTimeSlot(date.AddDate(0, 0, 1), domain.Evening, "USD")

	// Same day, different show time: distinct slots on the same date.
	assert.False(t, evening.Equal(night))
	assert.True(t, evening.SameDay(night))

	assert.True(t, evening.Equal(domain.NewTimeSlot(date, domain.Evening, "EUR")))
	assert.False(t, evening.Equal(nextDay))
	assert.False(t, evening.SameDay(nextDay))
}

func TestNewTimeSlot_StandardPrice(t *testing.T) {
	date := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
	slot := domain.NewTimeSlot(date, domain.Night2, "USD")

	require.Len(t, slot.TicketPrices, 1)
	assert.InDelta(t, 25.0, slot.TicketPrices[0].Price(), 1e-9)
	assert.Equal(t, "USD", slot.TicketPrices[0].Currency)
}

func TestUpcomingDates(t *testing.T) {
	from := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	dates := domain.UpcomingDates(from, 4)

	require.Len(t, dates, 4)
	for i, d := range dates {
		assert.Equal(t, from.AddDate(0, 0, i).Day(), d.Day())
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "42.00 USD", domain.FormatPrice(42, "USD"))
	assert.Equal(t, "3.75 EUR", domain.FormatPrice(3.75, "EUR"))
}
