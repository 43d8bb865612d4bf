package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/movietix/booking/internal/core/domain"
)

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// CreateTicket writes the ticket header plus its seat and food rows in one
// transaction.
func (r *TicketRepository) CreateTicket(ctx context.Context, ticket *domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryHeader := `
	INSERT INTO tickets (id, code, movie_title, poster_path, show_date, show_time, total_price, payment_method, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.ExecContext(ctx, queryHeader,
		ticket.ID, ticket.Code, ticket.MovieTitle, ticket.PosterPath,
		ticket.Date, int(ticket.ShowTime), ticket.TotalPrice, ticket.PaymentMethod, ticket.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ticket header: %w", err)
	}

	querySeat := `
	INSERT INTO ticket_seats (ticket_id, row_index, seat_number, seat_type)
	VALUES ($1, $2, $3, $4)
	`

	seatStmt, err := tx.PrepareContext(ctx, querySeat)
	if err != nil {
		return fmt.Errorf("failed to prepare seat statement: %w", err)
	}

	defer seatStmt.Close()

	for _, seat := range ticket.Seats {
		if _, err := seatStmt.ExecContext(ctx, ticket.ID, seat.Row, seat.Number, seat.Type); err != nil {
			return fmt.Errorf("failed to insert seat %s: %w", seat.Code(), err)
		}
	}

	queryFood := `
	INSERT INTO ticket_food (ticket_id, item_name, category, base_price, size_name, price_modifier, quantity)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	foodStmt, err := tx.PrepareContext(ctx, queryFood)
	if err != nil {
		return fmt.Errorf("failed to prepare food statement: %w", err)
	}

	defer foodStmt.Close()

	for _, food := range ticket.Food {
		_, err := foodStmt.ExecContext(ctx, ticket.ID,
			food.Food.Name, string(food.Food.Category), food.Food.Price,
			food.Size.Name, food.Size.PriceModifier, food.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert food item %s: %w", food.Food.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetTicketByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	query := `
	SELECT id, code, movie_title, poster_path, show_date, show_time, total_price, payment_method, created_at
	FROM tickets
	WHERE id = $1
	`

	var ticket domain.Ticket
	var showTime int

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Code,
		&ticket.MovieTitle,
		&ticket.PosterPath,
		&ticket.Date,
		&showTime,
		&ticket.TotalPrice,
		&ticket.PaymentMethod,
		&ticket.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}

	ticket.ShowTime = domain.ShowTime(showTime)

	if ticket.Seats, err = r.seatsFor(ctx, id); err != nil {
		return nil, err
	}
	if ticket.Food, err = r.foodFor(ctx, id); err != nil {
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepository) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	query := `
	SELECT id, code, movie_title, poster_path, show_date, show_time, total_price, payment_method, created_at
	FROM tickets
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		var showTime int
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Code,
			&ticket.MovieTitle,
			&ticket.PosterPath,
			&ticket.Date,
			&showTime,
			&ticket.TotalPrice,
			&ticket.PaymentMethod,
			&ticket.CreatedAt,
		); err != nil {
			return nil, err
		}
		ticket.ShowTime = domain.ShowTime(showTime)
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tickets {
		if tickets[i].Seats, err = r.seatsFor(ctx, tickets[i].ID); err != nil {
			return nil, err
		}
		if tickets[i].Food, err = r.foodFor(ctx, tickets[i].ID); err != nil {
			return nil, err
		}
	}

	return tickets, nil
}

func (r *TicketRepository) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ticket_seats WHERE ticket_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ticket_food WHERE ticket_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTicketNotFound
	}

	return tx.Commit()
}

func (r *TicketRepository) seatsFor(ctx context.Context, id uuid.UUID) ([]domain.Seat, error) {
	query := `
	SELECT row_index, seat_number, seat_type
	FROM ticket_seats
	WHERE ticket_id = $1
	ORDER BY row_index, seat_number
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var seats []domain.Seat
	for rows.Next() {
		var seat domain.Seat
		if err := rows.Scan(&seat.Row, &seat.Number, &seat.Type); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

func (r *TicketRepository) foodFor(ctx context.Context, id uuid.UUID) ([]domain.OrderedFood, error) {
	query := `
	SELECT item_name, category, base_price, size_name, price_modifier, quantity
	FROM ticket_food
	WHERE ticket_id = $1
	ORDER BY item_name, size_name
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var food []domain.OrderedFood
	for rows.Next() {
		var ordered domain.OrderedFood
		var category string
		if err := rows.Scan(
			&ordered.Food.Name,
			&category,
			&ordered.Food.Price,
			&ordered.Size.Name,
			&ordered.Size.PriceModifier,
			&ordered.Quantity,
		); err != nil {
			return nil, err
		}
		ordered.Food.Category = domain.FoodCategory(category)
		food = append(food, ordered)
	}

	return food, rows.Err()
}
