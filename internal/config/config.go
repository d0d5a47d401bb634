package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

var ErrInvalidAssistantURL = errors.New("ASSISTANT_URL must be an absolute http(s) URL")

type Config struct {
	AssistantURL string

	HTTP    HTTPConfig
	Speech  SpeechConfig
	Metrics MetricsConfig
	Log     LogConfig

	VoiceEnabled bool
}

type HTTPConfig struct {
	Timeout time.Duration
}

type SpeechConfig struct {
	CaptureCommand string
	SpeakCommand   string
	Language       string
	RateWPM        int
}

type MetricsConfig struct {
	ListenAddr string
	HealthPath string
}

type LogConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	cfg := &Config{
		AssistantURL: mustEnv("ASSISTANT_URL", "http://localhost:8000"),
		HTTP: HTTPConfig{
			Timeout: mustDuration("HTTP_TIMEOUT", 60*time.Second),
		},
		Speech: SpeechConfig{
			CaptureCommand: mustEnv("STT_COMMAND", ""),
			SpeakCommand:   mustEnv("TTS_COMMAND", ""),
			Language:       mustEnv("SPEECH_LANG", "es"),
			RateWPM:        mustInt("SPEECH_RATE_WPM", 160),
		},
		Metrics: MetricsConfig{
			ListenAddr: mustEnv("METRICS_ADDR", ""),
			HealthPath: mustEnv("HEALTH_PATH", "/healthz"),
		},
		Log: LogConfig{
			Level: strings.ToLower(mustEnv("LOG_LEVEL", "info")),
			File:  mustEnv("LOG_FILE", ""),
		},
		VoiceEnabled: mustBool("VOICE_ENABLED", true),
	}

	u, err := url.Parse(cfg.AssistantURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, ErrInvalidAssistantURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w, got scheme %q", ErrInvalidAssistantURL, u.Scheme)
	}
	if cfg.Speech.RateWPM <= 0 {
		cfg.Speech.RateWPM = 160
	}

	return cfg, nil
}

func mustEnv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func mustInt(key string, def int) int {
	v := mustEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func mustBool(key string, def bool) bool {
	v := mustEnv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func mustDuration(key string, def time.Duration) time.Duration {
	v := mustEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
