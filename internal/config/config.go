package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type OAuthProvider struct {
	Key         string
	Secret      string
	CallbackURL string
}

func (p OAuthProvider) Enabled() bool {
	return p.Key != "" && p.Secret != ""
}

type Config struct {
	DatabasePath    string
	Addr            string
	SessionLifetime time.Duration
	Discord         OAuthProvider
	Google          OAuthProvider
}

// Load reads .env if there is one, the environment always wins.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		DatabasePath:    orDefault(getenv("DATABASE_PATH"), "tournaments.db"),
		Addr:            orDefault(getenv("ADDR"), ":8080"),
		SessionLifetime: 24 * time.Hour,
		Discord: OAuthProvider{
			Key:         getenv("DISCORD_KEY"),
			Secret:      getenv("DISCORD_SECRET"),
			CallbackURL: getenv("DISCORD_CALLBACK_URL"),
		},
		Google: OAuthProvider{
			Key:         getenv("GOOGLE_KEY"),
			Secret:      getenv("GOOGLE_SECRET"),
			CallbackURL: getenv("GOOGLE_CALLBACK_URL"),
		},
	}

	if raw := getenv("SESSION_LIFETIME"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_LIFETIME %q: %w", raw, err)
		}
		cfg.SessionLifetime = d
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
