package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/movietix/booking/internal/core/domain"
)

// TicketRepository persists each ticket as a JSON document in a directory.
// This is the default backend: a plain local object store that needs no
// external service.
type TicketRepository struct {
	dir string
}

func NewTicketRepository(dir string) (*TicketRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create ticket dir: %w", err)
	}
	return &TicketRepository{dir: dir}, nil
}

// DefaultDir places the ticket store under the user config directory.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "movietix", "tickets"), nil
}

func (r *TicketRepository) path(id uuid.UUID) string {
	return filepath.Join(r.dir, id.String()+".json")
}

func (r *TicketRepository) CreateTicket(ctx context.Context, ticket *domain.Ticket) error {
	payload, err := json.MarshalIndent(ticket, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ticket: %w", err)
	}
	return os.WriteFile(r.path(ticket.ID), payload, 0o644)
}

func (r *TicketRepository) GetTicketByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	data, err := os.ReadFile(r.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}

	var ticket domain.Ticket
	if err := json.Unmarshal(data, &ticket); err != nil {
		return nil, fmt.Errorf("decode ticket %s: %w", id, err)
	}
	return &ticket, nil
}

// ListTickets returns all persisted tickets, newest first.
func (r *TicketRepository) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}

	var tickets []domain.Ticket
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		var ticket domain.Ticket
		if err := json.Unmarshal(data, &ticket); err != nil {
			return nil, fmt.Errorf("decode %s: %w", entry.Name(), err)
		}
		tickets = append(tickets, ticket)
	}

	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
	return tickets, nil
}

func (r *TicketRepository) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	if err := os.Remove(r.path(id)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrTicketNotFound
		}
		return err
	}
	return nil
}
