package chat

import "asistente/internal/assistant"

// ConfigStore holds the last configuration snapshot fetched from the remote
// assistant. Snapshots are replaced wholesale, never merged field by field:
// the server is the single source of truth and the client infers no deltas.
type ConfigStore struct {
	current assistant.Config
}

func NewConfigStore(initial assistant.Config) *ConfigStore {
	return &ConfigStore{current: initial}
}

func (s *ConfigStore) Current() assistant.Config {
	return s.current
}

func (s *ConfigStore) Replace(cfg assistant.Config) {
	s.current = cfg
}

// Draft is the user-editable shadow of the configuration held while the
// settings panel is open. APIKey is write-only: never pre-filled from the
// server, cleared on every successful save and on every refresh.
type Draft struct {
	AssistantName string
	APIKey        string
	Model         string
}

// Reset discards edits and re-seeds the draft from a snapshot.
func (d *Draft) Reset(cfg assistant.Config) {
	d.AssistantName = cfg.AssistantName
	d.Model = cfg.Model
	d.APIKey = ""
}

// Update builds the partial update for the remote assistant. Blank fields
// stay out of the payload so the server leaves them untouched.
func (d Draft) Update() assistant.ConfigUpdate {
	return assistant.ConfigUpdate{
		AssistantName: d.AssistantName,
		APIKey:        d.APIKey,
		Model:         d.Model,
	}
}
