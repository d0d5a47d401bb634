package chat

import (
	"context"

	"asistente/internal/assistant"
)

// Effect is the asynchronous half of an operation. The controller mutates
// state synchronously, hands back an Effect, and the runtime (the Bubble Tea
// program) runs it off the update loop and feeds the resulting Event back
// into Apply. Every effect settles in exactly one event.
type Effect func(ctx context.Context) Event

// Event is a completion notification delivered back to the controller.
type Event interface {
	event()
}

// ConfigLoaded settles a configuration refresh.
type ConfigLoaded struct {
	Config assistant.Config
	Err    error
}

// ChatReply settles a chat turn.
type ChatReply struct {
	Text string
	Err  error
}

// DocumentUploaded settles a document upload.
type DocumentUploaded struct {
	Message string
	Err     error
}

// DocumentsCleared settles a clear-documents request.
type DocumentsCleared struct {
	Message string
	Err     error
}

// SettingsSaved settles a configuration update.
type SettingsSaved struct {
	Err error
}

// CaptureResult carries the final transcript of a voice capture.
type CaptureResult struct {
	Transcript string
}

// CaptureError reports a recognition failure mid-capture.
type CaptureError struct {
	Err error
}

// CaptureEnd reports that the engine finished without a transcript, e.g.
// after an explicit stop.
type CaptureEnd struct{}

func (ConfigLoaded) event()     {}
func (ChatReply) event()        {}
func (DocumentUploaded) event() {}
func (DocumentsCleared) event() {}
func (SettingsSaved) event()    {}
func (CaptureResult) event()    {}
func (CaptureError) event()     {}
func (CaptureEnd) event()       {}
