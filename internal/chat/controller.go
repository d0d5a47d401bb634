package chat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"asistente/internal/assistant"
	"asistente/internal/metrics"
	"asistente/internal/speech"
)

// Fixed user-facing texts, verbatim from the assistant's voice.
const (
	Greeting     = "¡Hola! Soy tu asistente de IA."
	GreetingHint = "Escribe un mensaje o usa el micrófono para comenzar."

	ConfirmClearDocuments = "¿Estás seguro de que quieres eliminar todos los documentos cargados?"

	chatErrorText    = "Lo siento, hubo un error al procesar tu mensaje."
	captureErrorText = "Lo siento, no pude entender lo que dijiste."
	uploadErrorText  = "Error al cargar el documento. Por favor, intenta de nuevo."
	clearErrorText   = "Error al eliminar los documentos."

	noticeNoSpeechEngine = "El reconocimiento de voz no está disponible en este equipo."
	noticeBadFileType    = "Solo se admiten archivos .pdf y .txt"
	noticeSettingsSaved  = "Configuración actualizada correctamente"
	noticeSettingsFailed = "Error al actualizar la configuración. Verifica la API key."
)

// DefaultConfig is the snapshot assumed until the first refresh succeeds.
func DefaultConfig() assistant.Config {
	return assistant.Config{
		AssistantName: "Asistente IA",
		Model:         "gemini-2.0-flash-exp",
		Theme:         "dark",
	}
}

// Controller owns the conversation log, the configuration store, and the
// listening/thinking state machine, and mediates every mutation of them.
// All methods run on one goroutine (the presentation loop); effects run
// elsewhere but only talk to the remote client and the speech bridge.
type Controller struct {
	client  assistant.API
	speech  speech.Bridge
	logger  zerolog.Logger
	metrics *metrics.Metrics

	sessionID string
	log       *Log
	store     *ConfigStore
	draft     Draft

	input        string
	listening    bool
	thinking     bool
	voiceEnabled bool
	settingsOpen bool
	notice       string
}

type ControllerConfig struct {
	Client       assistant.API
	Speech       speech.Bridge
	Logger       zerolog.Logger
	Metrics      *metrics.Metrics
	VoiceEnabled bool
}

func NewController(cfg ControllerConfig) *Controller {
	m := cfg.Metrics
	if m == nil {
		m = metrics.Global()
	}
	c := &Controller{
		client:       cfg.Client,
		speech:       cfg.Speech,
		logger:       cfg.Logger,
		metrics:      m,
		sessionID:    fmt.Sprintf("session-%d", time.Now().UnixMilli()),
		log:          NewLog(),
		store:        NewConfigStore(DefaultConfig()),
		voiceEnabled: cfg.VoiceEnabled,
	}
	c.draft.Reset(c.store.Current())
	return c
}

// Init returns the startup effect: the initial configuration fetch.
func (c *Controller) Init() Effect {
	return c.RefreshConfig()
}

func (c *Controller) SessionID() string { return c.sessionID }

func (c *Controller) Messages() []Message { return c.log.Messages() }

func (c *Controller) Config() assistant.Config { return c.store.Current() }

func (c *Controller) Draft() *Draft { return &c.draft }

func (c *Controller) Input() string { return c.input }

func (c *Controller) SetInput(text string) { c.input = text }

func (c *Controller) Listening() bool { return c.listening }

func (c *Controller) Thinking() bool { return c.thinking }

func (c *Controller) VoiceEnabled() bool { return c.voiceEnabled }

func (c *Controller) ToggleVoice() { c.voiceEnabled = !c.voiceEnabled }

func (c *Controller) SettingsOpen() bool { return c.settingsOpen }

func (c *Controller) Notice() string { return c.notice }

func (c *Controller) ClearNotice() { c.notice = "" }

func (c *Controller) CanCapture() bool { return c.speech.CanCapture() }

// Send dispatches one chat turn. The user's message is committed to the log
// before the network call is even issued; empty input is a no-op. At most
// one chat request may be outstanding: Send while thinking returns nil.
func (c *Controller) Send(text string) Effect {
	text = strings.TrimSpace(text)
	if text == "" || c.thinking {
		return nil
	}

	c.log.Append(SenderUser, text, false)
	c.input = ""
	c.thinking = true
	c.metrics.ChatRequests.Inc()

	client, sessionID := c.client, c.sessionID
	return func(ctx context.Context) Event {
		reply, err := client.Chat(ctx, text, sessionID)
		return ChatReply{Text: reply, Err: err}
	}
}

// ToggleCapture starts a voice capture, or stops the outstanding one. With
// no recognition engine it only surfaces a notice.
func (c *Controller) ToggleCapture() Effect {
	if !c.speech.CanCapture() {
		c.notice = noticeNoSpeechEngine
		return nil
	}
	if c.listening {
		c.speech.StopCapture()
		c.listening = false
		return nil
	}

	c.listening = true
	c.metrics.SpeechCaptures.Inc()

	bridge := c.speech
	return func(ctx context.Context) Event {
		transcript, err := bridge.Capture(ctx)
		switch {
		case errors.Is(err, context.Canceled):
			return CaptureEnd{}
		case err != nil:
			return CaptureError{Err: err}
		default:
			return CaptureResult{Transcript: transcript}
		}
	}
}

// Upload submits a local document for server-side indexing. Unsupported
// extensions are rejected before any request is made.
func (c *Controller) Upload(path string) Effect {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".txt":
	default:
		c.notice = noticeBadFileType
		return nil
	}

	c.log.Append(SenderUser, fmt.Sprintf("Cargando documento: %s...", name), false)
	c.metrics.DocumentUploads.Inc()

	client := c.client
	return func(ctx context.Context) Event {
		f, err := os.Open(path)
		if err != nil {
			return DocumentUploaded{Err: fmt.Errorf("open document: %w", err)}
		}
		defer f.Close()
		msg, err := client.UploadDocument(ctx, name, f)
		return DocumentUploaded{Message: msg, Err: err}
	}
}

// ClearDocuments issues the destructive clear request. The confirmation
// step lives in the presentation layer; callers must only invoke this after
// the user confirmed.
func (c *Controller) ClearDocuments() Effect {
	client := c.client
	return func(ctx context.Context) Event {
		msg, err := client.ClearDocuments(ctx)
		return DocumentsCleared{Message: msg, Err: err}
	}
}

func (c *Controller) OpenSettings() {
	c.settingsOpen = true
}

// CancelSettings closes the panel and discards the draft.
func (c *Controller) CancelSettings() {
	c.settingsOpen = false
	c.draft.Reset(c.store.Current())
}

// SaveSettings submits the draft. Blank fields are omitted from the update,
// so the server leaves them unchanged.
func (c *Controller) SaveSettings() Effect {
	upd := c.draft.Update()
	client := c.client
	return func(ctx context.Context) Event {
		return SettingsSaved{Err: client.UpdateConfig(ctx, upd)}
	}
}

// RefreshConfig fetches a fresh configuration snapshot.
func (c *Controller) RefreshConfig() Effect {
	client := c.client
	return func(ctx context.Context) Event {
		cfg, err := client.GetConfig(ctx)
		return ConfigLoaded{Config: cfg, Err: err}
	}
}

// Apply consumes a settled event and performs the corresponding state
// transition. It may return a follow-up effect (a transcript auto-sends, a
// completed upload refreshes the configuration).
func (c *Controller) Apply(ev Event) Effect {
	switch ev := ev.(type) {
	case ConfigLoaded:
		if ev.Err != nil {
			c.logger.Error().Err(ev.Err).Msg("failed to load assistant config")
			return nil
		}
		c.store.Replace(ev.Config)
		c.draft.Reset(ev.Config)
		c.metrics.ConfigRefreshes.Inc()
		return nil

	case ChatReply:
		c.thinking = false
		if ev.Err != nil {
			c.logger.Error().Err(ev.Err).Msg("chat turn failed")
			c.metrics.ChatFailures.Inc()
			c.log.Append(SenderAssistant, chatErrorText, false)
			return nil
		}
		c.appendSpoken(ev.Text)
		return nil

	case DocumentUploaded:
		if ev.Err != nil {
			c.logger.Error().Err(ev.Err).Msg("document upload failed")
			c.metrics.UploadFailures.Inc()
			c.log.Append(SenderAssistant, uploadErrorText, false)
		} else {
			c.appendSpoken(ev.Message)
		}
		// document_count may have changed either way
		return c.RefreshConfig()

	case DocumentsCleared:
		if ev.Err != nil {
			c.logger.Error().Err(ev.Err).Msg("clear documents failed")
			c.log.Append(SenderAssistant, clearErrorText, false)
			return nil
		}
		c.appendSpoken(ev.Message)
		return c.RefreshConfig()

	case SettingsSaved:
		if ev.Err != nil {
			c.logger.Error().Err(ev.Err).Msg("settings update rejected")
			c.notice = noticeSettingsFailed
			return nil
		}
		c.notice = noticeSettingsSaved
		c.settingsOpen = false
		return c.RefreshConfig()

	case CaptureResult:
		c.listening = false
		c.input = ev.Transcript
		return c.Send(ev.Transcript)

	case CaptureError:
		c.logger.Error().Err(ev.Err).Msg("voice capture failed")
		c.metrics.CaptureFailures.Inc()
		c.listening = false
		c.log.Append(SenderAssistant, captureErrorText, false)
		return nil

	case CaptureEnd:
		c.listening = false
		return nil
	}

	return nil
}

func (c *Controller) appendSpoken(text string) {
	speak := c.voiceEnabled
	c.log.Append(SenderAssistant, text, speak)
	if speak {
		c.speech.Speak(text)
	}
}
