package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/movietix/booking/internal/core/domain"
)

func TestTotalPrice_TicketsPlusFood(t *testing.T) {
	date := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
	slot := domain.NewTimeSlot(date, domain.Afternoon2, "USD") // 15.0 per seat

	catalog, popcorn, _ := testCatalog()
	large := popcorn.Sizes[1] // 5.0 base + 1.0 modifier
	catalog.IncreaseQuantity(popcorn, large)
	catalog.IncreaseQuantity(popcorn, large)

	// 2 seats × 15.0 + 2 × 6.0 = 42.0
	assert.InDelta(t, 42.0, domain.TotalPrice(2, &slot, catalog), 1e-9)
}

func TestTicketSubtotal_UsesFirstPriceOnly(t *testing.T) {
	slot := domain.TimeSlot{
		ShowTime: domain.Evening,
		TicketPrices: []domain.TicketPrice{
			{Category: domain.PriceEvening, Currency: "USD"},
			{Category: domain.PriceNight2, Currency: "USD"},
		},
	}

	assert.InDelta(t, 36.0, domain.TicketSubtotal(2, &slot), 1e-9)
}

func TestTicketSubtotal_NoSlot(t *testing.T) {
	assert.Zero(t, domain.TicketSubtotal(3, nil))
	assert.Zero(t, domain.TicketSubtotal(3, &domain.TimeSlot{}))
}

func TestFoodSubtotal_ZeroQuantities(t *testing.T) {
	catalog, _, _ := testCatalog()
	assert.Zero(t, domain.FoodSubtotal(catalog))
	assert.Zero(t, domain.FoodSubtotal(nil))
}
