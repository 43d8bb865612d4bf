package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movietix/booking/internal/core/domain"
)

func TestDispatcher_DeliversInOrder(t *testing.T) {
	d := NewDispatcher()

	var counts []int
	var tickets []domain.Ticket
	d.OnBadgeCount(func(count int) { counts = append(counts, count) })
	d.OnBookingCommitted(func(ticket domain.Ticket) { tickets = append(tickets, ticket) })

	d.PublishBadgeCount(1)
	d.PublishBookingCommitted(domain.Ticket{MovieTitle: "Coco"})
	d.PublishBadgeCount(2)

	// Close drains the queue; afterwards all deliveries are visible.
	d.Close()

	assert.Equal(t, []int{1, 2}, counts)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Coco", tickets[0].MovieTitle)
}

func TestDispatcher_MultipleSubscribers(t *testing.T) {
	d := NewDispatcher()

	var first, second int
	d.OnBadgeCount(func(count int) { first = count })
	d.OnBadgeCount(func(count int) { second = count })

	d.PublishBadgeCount(7)
	d.Close()

	assert.Equal(t, 7, first)
	assert.Equal(t, 7, second)
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher()
	d.Close()
	d.Close()
}
