package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	ErrUnavailable  = errors.New("speech engine unavailable")
	ErrBusy         = errors.New("capture already in progress")
	ErrNoTranscript = errors.New("no transcript produced")
)

// Known synthesis commands probed when TTS_COMMAND is not set.
var speakCandidates = []string{"say", "espeak-ng", "espeak", "spd-say"}

type Config struct {
	CaptureCommand string
	SpeakCommand   string
	Language       string
	RateWPM        int
	Logger         zerolog.Logger
}

type CommandBridge struct {
	captureCmd  string
	captureArgs []string
	speakCmd    string
	language    string
	rateWPM     int
	logger      zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func New(cfg Config) *CommandBridge {
	if cfg.Language == "" {
		cfg.Language = "es"
	}
	if cfg.RateWPM <= 0 {
		cfg.RateWPM = 160
	}

	b := &CommandBridge{
		language: cfg.Language,
		rateWPM:  cfg.RateWPM,
		logger:   cfg.Logger,
	}

	// Capture has no safe default: an arbitrary recorder cannot be guessed,
	// so the capability exists only when a command is configured.
	if fields := strings.Fields(cfg.CaptureCommand); len(fields) > 0 {
		if path, err := exec.LookPath(fields[0]); err == nil {
			b.captureCmd = path
			b.captureArgs = fields[1:]
		} else {
			b.logger.Warn().Str("command", fields[0]).Msg("capture command not found, voice input disabled")
		}
	}

	candidates := speakCandidates
	if cfg.SpeakCommand != "" {
		candidates = []string{cfg.SpeakCommand}
	}
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			b.speakCmd = path
			break
		}
	}
	if b.speakCmd == "" {
		b.logger.Warn().Msg("no synthesis command found, spoken replies disabled")
	}

	return b
}

var _ Bridge = (*CommandBridge)(nil)

func (b *CommandBridge) CanCapture() bool { return b.captureCmd != "" }

func (b *CommandBridge) CanSpeak() bool { return b.speakCmd != "" }

func (b *CommandBridge) Capture(ctx context.Context) (string, error) {
	if !b.CanCapture() {
		return "", ErrUnavailable
	}

	b.mu.Lock()
	if b.cancel != nil {
		b.mu.Unlock()
		return "", ErrBusy
	}
	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.mu.Unlock()

	defer func() {
		cancel()
		b.mu.Lock()
		b.cancel = nil
		b.mu.Unlock()
	}()

	cmd := exec.CommandContext(ctx, b.captureCmd, b.captureArgs...)
	var out bytes.Buffer
	cmd.Stdout = &out

	err := cmd.Run()
	if ctx.Err() != nil {
		return "", context.Canceled
	}
	if err != nil {
		return "", fmt.Errorf("capture command: %w", err)
	}

	transcript := firstLine(out.String())
	if transcript == "" {
		return "", ErrNoTranscript
	}
	return transcript, nil
}

func (b *CommandBridge) StopCapture() {
	b.mu.Lock()
	cancel := b.cancel
	b.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (b *CommandBridge) Speak(text string) {
	if !b.CanSpeak() || strings.TrimSpace(text) == "" {
		return
	}

	cmd := exec.Command(b.speakCmd, b.speakArgs(text)...)
	if err := cmd.Start(); err != nil {
		b.logger.Error().Err(err).Msg("failed to start synthesis command")
		return
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			b.logger.Debug().Err(err).Msg("synthesis command exited with error")
		}
	}()
}

func (b *CommandBridge) speakArgs(text string) []string {
	switch filepath.Base(b.speakCmd) {
	case "espeak", "espeak-ng":
		return []string{"-v", b.language, "-s", strconv.Itoa(b.rateWPM), text}
	case "say":
		return []string{"-r", strconv.Itoa(b.rateWPM), text}
	case "spd-say":
		return []string{"-l", b.language, "-w", text}
	default:
		return []string{text}
	}
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
