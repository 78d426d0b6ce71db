// Package config читает настройки из переменных окружения и необязательного YAML-файла.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrBaseURLRequired возвращается, если базовый URL не задан ни в файле, ни в окружении.
var ErrBaseURLRequired = errors.New("USERS_BASE_URL is required")

// Client хранит настройки потребителя API.
type Client struct {
	BaseURL  string        `yaml:"baseURL"`
	Timeout  time.Duration `yaml:"timeout"`
	LogLevel string        `yaml:"logLevel"`
}

// Server хранит настройки users-api.
type Server struct {
	Addr         string
	DSN          string
	SeedFile     string
	CORSOrigins  []string
	RateLimitRPS float64
	LogLevel     string
}

// LoadClient читает YAML-файл (если path не пуст), затем накладывает переменные окружения.
func LoadClient(path string) (Client, error) {
	var cfg Client

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Client{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Client{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("USERS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Client{}, fmt.Errorf("parse HTTP_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if cfg.BaseURL == "" {
		return Client{}, ErrBaseURLRequired
	}
	return cfg, nil
}

// LoadServer читает настройки users-api из окружения.
func LoadServer() (Server, error) {
	cfg := Server{
		Addr:        envOr("HTTP_ADDR", ":8080"),
		DSN:         os.Getenv("DB_DSN"),
		SeedFile:    os.Getenv("SEED_FILE"),
		CORSOrigins: []string{"*"},
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return Server{}, fmt.Errorf("RATE_LIMIT_RPS must be a non-negative number, got %q", v)
		}
		cfg.RateLimitRPS = rps
	}

	return cfg, nil
}

// Level переводит строку уровня в slog.Level. Пустая или неизвестная строка даёт Info.
func Level(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
