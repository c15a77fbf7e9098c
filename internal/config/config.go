package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the service settings. WinRate overrides the seller
// snapshot's historical win rate when set.
type Config struct {
	Port    string
	GinMode string
	WinRate float64
}

// Load reads .env (if present) and the environment. Unset values fall
// back to defaults; WinRate zero means "use the catalog value".
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", ""),
	}

	if raw := os.Getenv("WIN_RATE"); raw != "" {
		wr, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WIN_RATE %q: %w", raw, err)
		}
		if wr <= 0 || wr > 1 {
			return Config{}, fmt.Errorf("WIN_RATE must be in (0, 1], got %v", wr)
		}
		cfg.WinRate = wr
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
