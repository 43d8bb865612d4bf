package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the booking app. Every field has a
// sensible default; nothing is mandatory because the default backend is the
// local file store.
type Config struct {
	StoreBackend string // "file" or "postgres"
	TicketDir    string // file backend directory, empty means the user config dir

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr string // empty disables the ticket list cache
	Currency  string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		StoreBackend: getenv("STORE_BACKEND", "file"),
		TicketDir:    os.Getenv("TICKET_DIR"),
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "5432"),
		DBUser:       getenv("DB_USER", "postgres"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getenv("DB_NAME", "movietix"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		Currency:     getenv("CURRENCY", "USD"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
