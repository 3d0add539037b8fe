// Package config loads server configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/warp/settlement-engine/settlement"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	CORSOrigin    string `env:"CORS_ORIGIN" envDefault:"*"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	CalendarsPath string `env:"CALENDARS"`
}

// Load reads configuration from the environment, after merging in a .env
// file when one is present.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	return cfg, env.Parse(&cfg)
}

// Calendar resolves the working-day calendar: the CALENDARS file when
// configured, the built-in reference table otherwise.
func (c Config) Calendar() (*settlement.Calendar, error) {
	if c.CalendarsPath == "" {
		return settlement.NewCalendar(), nil
	}
	return settlement.LoadCalendarFile(c.CalendarsPath)
}
