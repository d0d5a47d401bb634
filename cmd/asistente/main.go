package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"asistente/internal/assistant"
	"asistente/internal/chat"
	"asistente/internal/config"
	"asistente/internal/metrics"
	"asistente/internal/speech"
	"asistente/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	closeLog := setupLogger(cfg.Log)
	defer closeLog()
	log.Info().
		Str("assistant_url", cfg.AssistantURL).
		Bool("voice_enabled", cfg.VoiceEnabled).
		Msg("starting asistente")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	metrics.Global()
	var metricsServer *http.Server
	if cfg.Metrics.ListenAddr != "" {
		mux := http.NewServeMux()
		mux.HandleFunc(cfg.Metrics.HealthPath, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:              cfg.Metrics.ListenAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info().Str("addr", cfg.Metrics.ListenAddr).Msg("metrics server started")
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	client := assistant.New(assistant.ClientConfig{
		BaseURL:    cfg.AssistantURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTP.Timeout},
	})

	bridge := speech.New(speech.Config{
		CaptureCommand: cfg.Speech.CaptureCommand,
		SpeakCommand:   cfg.Speech.SpeakCommand,
		Language:       cfg.Speech.Language,
		RateWPM:        cfg.Speech.RateWPM,
		Logger:         log.Logger,
	})
	log.Info().
		Bool("capture", bridge.CanCapture()).
		Bool("synthesis", bridge.CanSpeak()).
		Msg("speech bridge initialized")

	ctrl := chat.NewController(chat.ControllerConfig{
		Client:       client,
		Speech:       bridge,
		Logger:       log.Logger,
		VoiceEnabled: cfg.VoiceEnabled,
	})
	log.Info().Str("session_id", ctrl.SessionID()).Msg("session established")

	program := tea.NewProgram(tui.New(ctrl, log.Logger), tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		log.Error().Err(err).Msg("terminal program failed")
	}

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to stop metrics server")
		}
	}

	log.Info().Msg("stopped")
}

// setupLogger routes logs to the configured file; the TUI owns the terminal,
// so without a file logs are discarded.
func setupLogger(cfg config.LogConfig) func() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLogLevel(cfg.Level))

	var sink io.Writer = io.Discard
	closer := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			sink = f
			closer = func() { _ = f.Close() }
		}
	}
	log.Logger = zerolog.New(sink).With().Timestamp().Logger()
	return closer
}

func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
