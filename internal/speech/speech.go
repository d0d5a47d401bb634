// Package speech bridges the client to platform speech engines. Both
// directions are optional capabilities resolved once at startup: capture
// (speech to text) is a one-shot external command whose stdout is the
// transcript, and synthesis (text to speech) is a fire-and-forget playback
// command. Absence of either engine degrades the client, never crashes it.
package speech

import "context"

type Bridge interface {
	// CanCapture reports whether a speech-to-text engine was resolved at
	// startup. It never changes during the bridge's lifetime.
	CanCapture() bool

	// CanSpeak reports whether a synthesis engine was resolved at startup.
	CanSpeak() bool

	// Capture runs a single one-shot recognition attempt and returns the
	// transcript. It returns context.Canceled when the capture was stopped
	// via StopCapture or the parent context.
	Capture(ctx context.Context) (string, error)

	// StopCapture cancels the outstanding capture, if any.
	StopCapture()

	// Speak queues text for playback and returns immediately. Playback
	// completion is not tracked. A missing synthesis engine is skipped
	// silently.
	Speak(text string)
}
