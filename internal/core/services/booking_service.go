package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/atomic"

	"github.com/movietix/booking/internal/core/domain"
	"github.com/movietix/booking/internal/core/ports"
	"github.com/movietix/booking/internal/utils"
)

const (
	ticketListCacheKey = "tickets:recent"
	ticketListCacheTTL = 10 * time.Minute
)

// BookingSummary is what confirmation screens render before commit.
type BookingSummary struct {
	Movie    *domain.Movie
	Seats    []domain.Seat
	Date     *time.Time
	TimeSlot *domain.TimeSlot
}

// BookingService is the aggregate for a single in-progress purchase. It owns
// the seat grid and food catalog, accumulates the user's selections and
// commits them as a Ticket through the repository port.
//
// One BookingService is constructed per application session. All mutation is
// serialized behind an internal mutex; the badge counter is atomic so the
// rendering context can read it without taking the lock.
type BookingService struct {
	mu sync.Mutex

	grid    *domain.SeatGrid
	catalog *domain.FoodCatalog

	selectedMovie *domain.Movie
	selectedDate  *time.Time
	selectedSlot  *domain.TimeSlot
	paymentMethod string
	totalPrice    float64

	ticketCount atomic.Int32

	repo     ports.TicketRepository
	events   ports.EventPublisher
	cache    *redis.Client
	validate *validator.Validate
}

// NewBookingService wires the session aggregate. events and cache may be nil
// when no rendering layer or redis instance is attached (tests, CLI tools).
func NewBookingService(repo ports.TicketRepository, events ports.EventPublisher, cache *redis.Client) *BookingService {
	return &BookingService{
		grid:     domain.NewSeatGrid(),
		catalog:  domain.DefaultCatalog(),
		repo:     repo,
		events:   events,
		cache:    cache,
		validate: validator.New(),
	}
}

// --- selections ---

func (s *BookingService) SelectMovie(movie domain.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedMovie = &movie
}

func (s *BookingService) SelectedMovie() *domain.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedMovie == nil {
		return nil
	}
	movie := *s.selectedMovie
	return &movie
}

func (s *BookingService) SelectDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = &date
}

func (s *BookingService) SelectTimeSlot(slot domain.TimeSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedSlot = &slot
}

func (s *BookingService) SelectPaymentMethod(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentMethod = method
}

// --- seat grid passthroughs ---

// SetSeats replaces the seat layout for the chosen showing.
func (s *BookingService) SetSeats(sectionCount int, rowsPerSection []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Initialize(sectionCount, rowsPerSection)
}

func (s *BookingService) Seat(row, number int) (domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Seat(row, number)
}

func (s *BookingService) SelectSeat(seat domain.Seat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Select(seat)
}

func (s *BookingService) DeselectSeat(seat domain.Seat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Deselect(seat)
}

func (s *BookingService) UpdateSeat(seat domain.Seat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Update(seat)
}

func (s *BookingService) AllSeats() [][]domain.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.AllSeats()
}

func (s *BookingService) SelectedSeats() []domain.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.SelectedSeats()
}

// --- food passthroughs ---

func (s *BookingService) FilteredFood(category domain.FoodCategory) []domain.CatalogRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.FilteredItems(category)
}

func (s *BookingService) FoodQuantity(food domain.FoodItem, size domain.FoodSize) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Quantity(food, size)
}

func (s *BookingService) IncreaseFood(food domain.FoodItem, size domain.FoodSize) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.IncreaseQuantity(food, size)
}

func (s *BookingService) DecreaseFood(food domain.FoodItem, size domain.FoodSize) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.DecreaseQuantity(food, size)
}

func (s *BookingService) TotalSelectedItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.TotalSelectedItems()
}

func (s *BookingService) SelectedFood() []domain.OrderedFood {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.SelectedFood()
}

// --- pricing ---

// CalculateTotalPrice recomputes and stores the session total. The stored
// total is only valid right after this call; seat and food mutations do not
// refresh it.
func (s *BookingService) CalculateTotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalPrice = domain.TotalPrice(len(s.grid.SelectedSeats()), s.selectedSlot, s.catalog)
	return s.totalPrice
}

func (s *BookingService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPrice
}

// --- session lifecycle ---

func (s *BookingService) Summary() BookingSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := BookingSummary{Seats: s.grid.SelectedSeats()}
	if s.selectedMovie != nil {
		movie := *s.selectedMovie
		summary.Movie = &movie
	}
	if s.selectedDate != nil {
		date := *s.selectedDate
		summary.Date = &date
	}
	if s.selectedSlot != nil {
		slot := *s.selectedSlot
		summary.TimeSlot = &slot
	}
	return summary
}

// Commit turns the current selections into a persisted Ticket. Movie, date
// and time slot must all be set; otherwise ErrMissingBookingData is returned
// and neither the store nor the badge counter is touched.
//
// The persisted total is the last explicitly calculated price.
func (s *BookingService) Commit(ctx context.Context) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedMovie == nil || s.selectedDate == nil || s.selectedSlot == nil {
		return nil, domain.ErrMissingBookingData
	}

	ticket := &domain.Ticket{
		ID:            uuid.New(),
		Code:          "TCK-" + utils.RandomString(6),
		MovieTitle:    s.selectedMovie.Title,
		PosterPath:    s.selectedMovie.PosterPath,
		Date:          *s.selectedDate,
		ShowTime:      s.selectedSlot.ShowTime,
		Seats:         s.grid.SelectedSeats(),
		Food:          s.catalog.SelectedFood(),
		TotalPrice:    s.totalPrice,
		PaymentMethod: s.paymentMethod,
		CreatedAt:     time.Now(),
	}

	if err := s.validate.Struct(ticket); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingBookingData, err)
	}

	if err := s.repo.CreateTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("persist ticket: %w", err)
	}

	count := int(s.ticketCount.Inc())
	s.invalidateTicketCache(ctx)

	if s.events != nil {
		s.events.PublishBadgeCount(count)
		s.events.PublishBookingCommitted(*ticket)
	}

	return ticket, nil
}

// CancelTicket lowers the badge counter, floored at zero. It does not remove
// the persisted ticket; use DeleteTicket for that.
func (s *BookingService) CancelTicket() {
	for {
		current := s.ticketCount.Load()
		if current == 0 {
			break
		}
		if s.ticketCount.CompareAndSwap(current, current-1) {
			break
		}
	}
	if s.events != nil {
		s.events.PublishBadgeCount(int(s.ticketCount.Load()))
	}
}

// ResetBooking clears every transient selection for the next purchase. The
// badge counter and the persisted ticket history are left untouched.
func (s *BookingService) ResetBooking() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedMovie = nil
	s.selectedDate = nil
	s.selectedSlot = nil
	s.paymentMethod = ""
	s.totalPrice = 0
	s.grid.Initialize(0, nil)
	s.catalog.ResetQuantities()
}

// NumberOfTickets is the badge count of tickets committed this session.
func (s *BookingService) NumberOfTickets() int {
	return int(s.ticketCount.Load())
}

// --- ticket store boundary ---

// ListTickets serves the persisted ticket history through a short-lived
// cache when one is attached.
func (s *BookingService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	if s.cache != nil {
		if payload, err := s.cache.Get(ctx, ticketListCacheKey).Bytes(); err == nil {
			var tickets []domain.Ticket
			if err := json.Unmarshal(payload, &tickets); err == nil {
				return tickets, nil
			}
		}
	}

	tickets, err := s.repo.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(tickets); err == nil {
			s.cache.Set(ctx, ticketListCacheKey, payload, ticketListCacheTTL)
		}
	}

	return tickets, nil
}

func (s *BookingService) GetTicket(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	return s.repo.GetTicketByID(ctx, id)
}

func (s *BookingService) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteTicket(ctx, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	s.invalidateTicketCache(ctx)
	return nil
}

func (s *BookingService) invalidateTicketCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Del(ctx, ticketListCacheKey)
}
