package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.AssistantURL != "http://localhost:8000" {
		t.Fatalf("unexpected assistant url %q", cfg.AssistantURL)
	}
	if cfg.HTTP.Timeout != 60*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.HTTP.Timeout)
	}
	if cfg.Speech.Language != "es" || cfg.Speech.RateWPM != 160 {
		t.Fatalf("unexpected speech defaults %+v", cfg.Speech)
	}
	if !cfg.VoiceEnabled {
		t.Fatalf("voice should default to enabled")
	}
	if cfg.Metrics.ListenAddr != "" {
		t.Fatalf("metrics should default to disabled, got %q", cfg.Metrics.ListenAddr)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ASSISTANT_URL", "https://asistente.example.com")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("STT_COMMAND", "vosk-transcriber")
	t.Setenv("SPEECH_RATE_WPM", "120")
	t.Setenv("VOICE_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AssistantURL != "https://asistente.example.com" {
		t.Fatalf("unexpected assistant url %q", cfg.AssistantURL)
	}
	if cfg.HTTP.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.HTTP.Timeout)
	}
	if cfg.Speech.CaptureCommand != "vosk-transcriber" || cfg.Speech.RateWPM != 120 {
		t.Fatalf("unexpected speech config %+v", cfg.Speech)
	}
	if cfg.VoiceEnabled {
		t.Fatalf("voice should be disabled")
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level should be lowercased, got %q", cfg.Log.Level)
	}
}

func TestLoadRejectsBadURL(t *testing.T) {
	t.Setenv("ASSISTANT_URL", "not a url")
	if _, err := Load(); !errors.Is(err, ErrInvalidAssistantURL) {
		t.Fatalf("expected ErrInvalidAssistantURL, got %v", err)
	}

	t.Setenv("ASSISTANT_URL", "ftp://host")
	if _, err := Load(); !errors.Is(err, ErrInvalidAssistantURL) {
		t.Fatalf("expected ErrInvalidAssistantURL for ftp scheme, got %v", err)
	}
}
