package file

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movietix/booking/internal/core/domain"
)

func testTicket(title string, createdAt time.Time) *domain.Ticket {
	return &domain.Ticket{
		ID:         uuid.New(),
		Code:       "TCK-7GK2QD",
		MovieTitle: title,
		Date:       time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC),
		ShowTime:   domain.Evening,
		Seats: []domain.Seat{
			{Row: 0, Number: 1, Selected: true},
			{Row: 2, Number: 3, Selected: true},
		},
		Food: []domain.OrderedFood{{
			Food:     domain.FoodItem{Name: "Popcorn", Category: domain.CategoryPopcorn, Price: 5.0},
			Size:     domain.FoodSize{Name: "Large", PriceModifier: 1.0},
			Quantity: 2,
		}},
		TotalPrice: 48.0,
		CreatedAt:  createdAt,
	}
}

func TestTicketRepository_RoundTrip(t *testing.T) {
	repo, err := NewTicketRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	ticket := testTicket("Coco", time.Now().UTC())
	require.NoError(t, repo.CreateTicket(ctx, ticket))

	got, err := repo.GetTicketByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.Code, got.Code)
	assert.Equal(t, "Coco", got.MovieTitle)
	assert.Equal(t, domain.Evening, got.ShowTime)
	assert.Equal(t, []string{"A1", "C3"}, got.SeatCodes())
	require.Len(t, got.Food, 1)
	assert.Equal(t, 2, got.Food[0].Quantity)

	require.NoError(t, repo.DeleteTicket(ctx, ticket.ID))

	_, err = repo.GetTicketByID(ctx, ticket.ID)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)

	err = repo.DeleteTicket(ctx, ticket.ID)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestTicketRepository_ListNewestFirst(t *testing.T) {
	repo, err := NewTicketRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	now := time.Now().UTC()
	older := testTicket("Older", now.Add(-time.Hour))
	newer := testTicket("Newer", now)
	require.NoError(t, repo.CreateTicket(ctx, older))
	require.NoError(t, repo.CreateTicket(ctx, newer))

	tickets, err := repo.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "Newer", tickets[0].MovieTitle)
	assert.Equal(t, "Older", tickets[1].MovieTitle)
}

func TestTicketRepository_EmptyDir(t *testing.T) {
	repo, err := NewTicketRepository(t.TempDir())
	require.NoError(t, err)

	tickets, err := repo.ListTickets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tickets)
}
