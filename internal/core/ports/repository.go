package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/movietix/booking/internal/core/domain"
)

// TicketRepository is the durable ticket store. The core treats it as an
// opaque record store and passes its failures through unchanged; any retry
// policy belongs to the implementation.
type TicketRepository interface {
	CreateTicket(ctx context.Context, ticket *domain.Ticket) error
	GetTicketByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
	DeleteTicket(ctx context.Context, id uuid.UUID) error
}
