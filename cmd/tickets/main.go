package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/movietix/booking/internal/adapter/repository/file"
	"github.com/movietix/booking/internal/adapter/repository/postgres"
	"github.com/movietix/booking/internal/config"
	"github.com/movietix/booking/internal/core/domain"
	"github.com/movietix/booking/internal/core/ports"
	"github.com/movietix/booking/internal/core/services"
	"github.com/movietix/booking/internal/platform/database"
	"github.com/movietix/booking/internal/utils"
)

// tickets is the maintenance harness around the booking core: it lists the
// persisted ticket history, deletes tickets and renders QR codes. The
// mobile UI plays this role in the real app.
func main() {
	deleteID := flag.String("delete", "", "delete the ticket with this id")
	qrID := flag.String("qr", "", "write a QR PNG for the ticket with this id")
	qrOut := flag.String("o", "ticket-qr.png", "output path for -qr")
	flag.Parse()

	cfg := config.Load()

	repo, cleanup, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open ticket store: %v", err)
	}
	defer cleanup()

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := cache.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis unavailable at %s, continuing without cache: %v", cfg.RedisAddr, err)
			cache = nil
		}
	}

	svc := services.NewBookingService(repo, nil, cache)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch {
	case *deleteID != "":
		id, err := uuid.Parse(*deleteID)
		if err != nil {
			log.Fatalf("Invalid ticket id %q: %v", *deleteID, err)
		}
		if err := svc.DeleteTicket(ctx, id); err != nil {
			log.Fatalf("Failed to delete ticket: %v", err)
		}
		log.Printf("Ticket %s deleted", id)

	case *qrID != "":
		id, err := uuid.Parse(*qrID)
		if err != nil {
			log.Fatalf("Invalid ticket id %q: %v", *qrID, err)
		}
		ticket, err := svc.GetTicket(ctx, id)
		if err != nil {
			log.Fatalf("Failed to load ticket: %v", err)
		}
		image, err := utils.GenerateQRCode(ticket.Code, 256)
		if err != nil {
			log.Fatalf("Failed to render QR code: %v", err)
		}
		if err := os.WriteFile(*qrOut, image, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *qrOut, err)
		}
		log.Printf("QR for %s written to %s", ticket.Code, *qrOut)

	default:
		tickets, err := svc.ListTickets(ctx)
		if err != nil {
			log.Fatalf("Failed to list tickets: %v", err)
		}
		if len(tickets) == 0 {
			fmt.Println("no tickets")
			return
		}
		for _, t := range tickets {
			fmt.Printf("%s  %s  %-24s %s %s  seats %-12s %s\n",
				t.ID, t.Code, t.MovieTitle,
				t.Date.Format("2006-01-02"), t.ShowTime,
				strings.Join(t.SeatCodes(), ","),
				domain.FormatPrice(t.TotalPrice, cfg.Currency))
		}
	}
}

func openStore(cfg config.Config) (ports.TicketRepository, func(), error) {
	switch cfg.StoreBackend {
	case "postgres":
		db, err := database.NewPostgresDB(database.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
		})
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewTicketRepository(db), func() { db.Close() }, nil

	default:
		dir := cfg.TicketDir
		if dir == "" {
			var err error
			if dir, err = file.DefaultDir(); err != nil {
				return nil, nil, err
			}
		}
		repo, err := file.NewTicketRepository(dir)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}
