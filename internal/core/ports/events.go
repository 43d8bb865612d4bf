package ports

import "github.com/movietix/booking/internal/core/domain"

// EventPublisher notifies the rendering layer after a session mutation has
// been fully applied. Implementations deliver asynchronously on a context
// they own; the core never blocks on delivery.
type EventPublisher interface {
	PublishBadgeCount(count int)
	PublishBookingCommitted(ticket domain.Ticket)
}
