package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        int
	LogLevel    string
	MaxUploadMB int

	// Sheet label overrides. Empty values mean the reader's defaults;
	// they exist because some helpdesk exports localize their headers.
	DirectionHeader string
	TimeHeader      string
	SentValue       string
	ReceivedValue   string
}

func Load() Config {
	return Config{
		Port:            envInt("REPLYLAG_PORT", 8080),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		MaxUploadMB:     envInt("REPLYLAG_MAX_UPLOAD_MB", 10),
		DirectionHeader: envStr("REPLYLAG_DIRECTION_HEADER", ""),
		TimeHeader:      envStr("REPLYLAG_TIME_HEADER", ""),
		SentValue:       envStr("REPLYLAG_SENT_VALUE", ""),
		ReceivedValue:   envStr("REPLYLAG_RECEIVED_VALUE", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
