package assistant

import (
	"context"
	"io"
)

// Config is the full configuration snapshot owned by the remote assistant.
// The client never computes any of these fields locally; it only replaces
// the whole snapshot with whatever the server last returned.
type Config struct {
	AssistantName string `json:"assistant_name"`
	Model         string `json:"model"`
	Theme         string `json:"theme"`
	HasAPIKey     bool   `json:"has_api_key"`
	DocumentCount int    `json:"document_count"`
}

// ConfigUpdate is a partial update. Blank fields are omitted from the wire
// payload so the server treats them as "do not change", never as "clear".
type ConfigUpdate struct {
	AssistantName string `json:"assistant_name,omitempty"`
	APIKey        string `json:"api_key,omitempty"`
	Model         string `json:"model,omitempty"`
}

func (u ConfigUpdate) Empty() bool {
	return u.AssistantName == "" && u.APIKey == "" && u.Model == ""
}

type API interface {
	GetConfig(ctx context.Context) (Config, error)
	UpdateConfig(ctx context.Context, upd ConfigUpdate) error
	Chat(ctx context.Context, message, sessionID string) (string, error)
	UploadDocument(ctx context.Context, filename string, r io.Reader) (string, error)
	ClearDocuments(ctx context.Context) (string, error)
}
