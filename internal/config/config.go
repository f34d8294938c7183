package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; only DIRECTORY_BASE_URL is required.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// External directory / work-queue service
	DirectoryBaseURL string
	DirectoryTimeout time.Duration

	// Push notification relay. Empty = no push capability on this host.
	NotifierWebhookURL string
	NotifierTimeout    time.Duration

	// Classification
	ThresholdUSD float64
	PollInterval time.Duration

	// Escalation
	BlinkInterval   time.Duration
	PushAutoDismiss time.Duration
	PushRatePerMin  int
	SoundRatePerMin int

	// Initial window title published to the rendering collaborator.
	WindowTitle string
}

func Load() (*Config, error) {
	dirURL := os.Getenv("DIRECTORY_BASE_URL")
	if dirURL == "" {
		return nil, fmt.Errorf("DIRECTORY_BASE_URL is required")
	}

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		DirectoryBaseURL: dirURL,
		DirectoryTimeout: getDuration("DIRECTORY_TIMEOUT", 10*time.Second),

		NotifierWebhookURL: os.Getenv("NOTIFIER_WEBHOOK_URL"),
		NotifierTimeout:    getDuration("NOTIFIER_TIMEOUT", 10*time.Second),

		ThresholdUSD: getFloat("URGENCY_THRESHOLD_USD", 500),
		PollInterval: getDuration("POLL_INTERVAL", 30*time.Second),

		BlinkInterval:   getDuration("TAB_BLINK_INTERVAL", time.Second),
		PushAutoDismiss: getDuration("PUSH_AUTO_DISMISS", 30*time.Second),
		PushRatePerMin:  getInt("PUSH_RATE_PER_MIN", 6),
		SoundRatePerMin: getInt("SOUND_RATE_PER_MIN", 12),

		WindowTitle: getEnv("WINDOW_TITLE", "Work Items"),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
