package domain

// Pricing is pure computation over the current selections. Callers invoke it
// explicitly whenever seats or food change; nothing here recomputes
// reactively.

// TicketSubtotal charges every selected seat at the slot's first listed
// price. Callers relying on multiple price tiers must pre-filter the slot's
// price list.
func TicketSubtotal(seatCount int, slot *TimeSlot) float64 {
	if slot == nil || len(slot.TicketPrices) == 0 {
		return 0
	}
	return float64(seatCount) * slot.TicketPrices[0].Price()
}

// FoodSubtotal sums quantity × (base price + size modifier) over the whole
// catalog. Zero-quantity entries contribute nothing.
func FoodSubtotal(catalog *FoodCatalog) float64 {
	if catalog == nil {
		return 0
	}
	total := 0.0
	for _, item := range catalog.items {
		for _, size := range item.Sizes {
			total += catalog.LineTotal(item, size)
		}
	}
	return total
}

func TotalPrice(seatCount int, slot *TimeSlot, catalog *FoodCatalog) float64 {
	return TicketSubtotal(seatCount, slot) + FoodSubtotal(catalog)
}
