// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Port is the ops HTTP listen port.
	Port     string
	DBPath   string
	DataPath string
	// Language selects the participant message catalog ("eng" or "gla").
	Language string

	SlurkHost     string
	SlurkPort     int
	BotToken      string
	BotUserID     int64
	TaskID        int64
	WaitingRoomID int64

	ReadyWait      time.Duration
	RoundLength    time.Duration
	AgreementWait  time.Duration
	SilenceWait    time.Duration
	WaitingTimeout time.Duration
	TeardownDelay  time.Duration

	ItemsPerRoom   int
	Shuffle        bool
	Seed           int64
	FuzzyThreshold int
	MinMessages    int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		DBPath:   getEnv("DB_PATH", "./data/confirmations.db"),
		DataPath: getEnv("DATA_PATH", "./data/exhibit_data.csv"),
		Language: getEnv("MESSAGE_LANG", "gla"),

		SlurkHost:     getEnv("SLURK_HOST", "http://localhost"),
		SlurkPort:     getEnvInt("SLURK_PORT", 0),
		BotToken:      getEnv("BOT_TOKEN", ""),
		BotUserID:     getEnvInt64("BOT_USER", 0),
		TaskID:        getEnvInt64("TASK_ID", 0),
		WaitingRoomID: getEnvInt64("WAITING_ROOM", 0),

		ReadyWait:      getEnvMinutes("READY_WAIT_MINUTES", 5),
		RoundLength:    getEnvMinutes("ROUND_MINUTES", 10),
		AgreementWait:  getEnvMinutes("AGREEMENT_WAIT_MINUTES", 5),
		SilenceWait:    getEnvMinutes("SILENCE_WAIT_MINUTES", 5),
		WaitingTimeout: getEnvMinutes("WAITING_TIMEOUT_MINUTES", 5),
		TeardownDelay:  getEnvMinutes("TEARDOWN_DELAY_MINUTES", 5),

		ItemsPerRoom:   getEnvInt("ITEMS_PER_ROOM", 6),
		Shuffle:        getEnvBool("SHUFFLE_ITEMS", true),
		Seed:           getEnvInt64("RANDOM_SEED", 20210601),
		FuzzyThreshold: getEnvInt("FUZZY_THRESHOLD", 80),
		MinMessages:    getEnvInt("MIN_MESSAGES", 3),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.DataPath == "" {
		return fmt.Errorf("DATA_PATH cannot be empty")
	}
	if c.Language != "eng" && c.Language != "gla" {
		return fmt.Errorf("MESSAGE_LANG must be \"eng\" or \"gla\", got %q", c.Language)
	}
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN cannot be empty")
	}
	if c.BotUserID <= 0 {
		return fmt.Errorf("BOT_USER must be a positive user ID")
	}
	if c.TaskID <= 0 {
		return fmt.Errorf("TASK_ID must be a positive task ID")
	}
	if c.WaitingRoomID <= 0 {
		return fmt.Errorf("WAITING_ROOM must be a positive room ID")
	}
	for name, d := range map[string]time.Duration{
		"READY_WAIT_MINUTES":      c.ReadyWait,
		"ROUND_MINUTES":           c.RoundLength,
		"AGREEMENT_WAIT_MINUTES":  c.AgreementWait,
		"SILENCE_WAIT_MINUTES":    c.SilenceWait,
		"WAITING_TIMEOUT_MINUTES": c.WaitingTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if c.TeardownDelay < 0 {
		return fmt.Errorf("TEARDOWN_DELAY_MINUTES must not be negative")
	}
	if c.ItemsPerRoom <= 0 {
		return fmt.Errorf("ITEMS_PER_ROOM must be positive")
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("FUZZY_THRESHOLD must be between 0 and 100")
	}
	if c.MinMessages < 0 {
		return fmt.Errorf("MIN_MESSAGES must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvMinutes parses a fractional minute count into a duration.
func getEnvMinutes(key string, fallback float64) time.Duration {
	minutes := fallback
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			minutes = f
		}
	}
	return time.Duration(minutes * float64(time.Minute))
}
