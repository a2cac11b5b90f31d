package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var ErrMissingEnv = fmt.Errorf("required environment variables are not set")
var ErrInvalidEnv = fmt.Errorf("invalid environment variable")

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string        `env:"PRACTICUM_TOKEN"`
	PracticumEndpoint string        `env:"PRACTICUM_ENDPOINT" env-default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	PracticumTimeout  time.Duration `env:"PRACTICUM_TIMEOUT" env-default:"30s"`

	TelegramToken        string        `env:"TELEGRAM_TOKEN"`
	TelegramChatIDRaw    string        `env:"TELEGRAM_CHAT_ID"`
	TelegramChatID       int64         // parsed from TelegramChatIDRaw
	TelegramAPIURL       string        `env:"TELEGRAM_API_URL" env-default:"https://api.telegram.org"`
	TelegramSendInterval time.Duration `env:"TELEGRAM_SEND_INTERVAL" env-default:"1s"`

	PollSchedule string `env:"POLL_SCHEDULE" env-default:"@every 10m"` // cron spec, see robfig/cron ParseStandard

	LogLevel    string `env:"LOG_LEVEL" env-default:"debug"`
	LogFile     string `env:"LOG_FILE" env-default:"debug.log"` // empty disables the file sink
	Environment string `env:"ENVIRONMENT" env-default:"development"`
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *AppConfig) validate() error {
	cfg.PracticumToken = strings.TrimSpace(cfg.PracticumToken)
	cfg.TelegramToken = strings.TrimSpace(cfg.TelegramToken)
	cfg.TelegramChatIDRaw = strings.TrimSpace(cfg.TelegramChatIDRaw)

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if cfg.TelegramChatIDRaw == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}

	chatID, err := strconv.ParseInt(cfg.TelegramChatIDRaw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: TELEGRAM_CHAT_ID must be an integer: %v", ErrInvalidEnv, err)
	}
	cfg.TelegramChatID = chatID

	if strings.TrimSpace(cfg.PollSchedule) == "" {
		return fmt.Errorf("%w: POLL_SCHEDULE is empty", ErrInvalidEnv)
	}
	if cfg.PracticumTimeout < 0 || cfg.TelegramSendInterval < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidEnv)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	return nil
}
