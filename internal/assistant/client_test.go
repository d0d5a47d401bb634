package assistant

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfigUpdateOmitsBlankFields(t *testing.T) {
	b, err := json.Marshal(ConfigUpdate{})
	if err != nil {
		t.Fatalf("marshal blank update: %v", err)
	}
	if string(b) != "{}" {
		t.Fatalf("blank update must marshal to {}, got %s", b)
	}

	b, err = json.Marshal(ConfigUpdate{AssistantName: "Lola"})
	if err != nil {
		t.Fatalf("marshal update: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(b, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if len(payload) != 1 || payload["assistant_name"] != "Lola" {
		t.Fatalf("expected only assistant_name, got %s", b)
	}
}

func TestChatCarriesSessionID(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/assistant/chat" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode chat body: %v", err)
		}
		_, _ = io.WriteString(w, `{"response":"¡Hola! ¿En qué puedo ayudarte?"}`)
	}))
	defer srv.Close()

	c := New(ClientConfig{BaseURL: srv.URL})
	reply, err := c.Chat(context.Background(), "hola", "session-123")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "¡Hola! ¿En qué puedo ayudarte?" {
		t.Fatalf("unexpected reply %q", reply)
	}
	if got["message"] != "hola" || got["session_id"] != "session-123" {
		t.Fatalf("unexpected chat payload %v", got)
	}
}

func TestChatSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(ClientConfig{BaseURL: srv.URL})
	if _, err := c.Chat(context.Background(), "hola", "session-1"); err == nil {
		t.Fatalf("expected error on 500")
	}
}

func TestUpdateConfigRejectedIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":false}`)
	}))
	defer srv.Close()

	c := New(ClientConfig{BaseURL: srv.URL})
	if err := c.UpdateConfig(context.Background(), ConfigUpdate{APIKey: "bad"}); err == nil {
		t.Fatalf("expected error when server reports success=false")
	}
}

func TestUploadDocumentPreservesFilename(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/assistant/document/upload" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer f.Close()
		if header.Filename != "notes.txt" {
			t.Errorf("unexpected filename %q", header.Filename)
		}
		body, _ := io.ReadAll(f)
		if string(body) != "apuntes" {
			t.Errorf("unexpected file body %q", body)
		}
		_, _ = io.WriteString(w, `{"message":"Documento cargado: notes.txt"}`)
	}))
	defer srv.Close()

	c := New(ClientConfig{BaseURL: srv.URL})
	msg, err := c.UploadDocument(context.Background(), "notes.txt", strings.NewReader("apuntes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if msg != "Documento cargado: notes.txt" {
		t.Fatalf("unexpected confirmation %q", msg)
	}
}

func TestClearDocumentsUsesDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/assistant/document/clear" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"message":"Todos los documentos eliminados"}`)
	}))
	defer srv.Close()

	c := New(ClientConfig{BaseURL: srv.URL})
	msg, err := c.ClearDocuments(context.Background())
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if msg != "Todos los documentos eliminados" {
		t.Fatalf("unexpected confirmation %q", msg)
	}
}

func TestGetConfigDecodesSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/assistant/config" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"assistant_name":"Asistente IA","model":"gemini-2.0-flash-exp","theme":"dark","has_api_key":true,"document_count":3}`)
	}))
	defer srv.Close()

	c := New(ClientConfig{BaseURL: srv.URL})
	cfg, err := c.GetConfig(context.Background())
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	want := Config{
		AssistantName: "Asistente IA",
		Model:         "gemini-2.0-flash-exp",
		Theme:         "dark",
		HasAPIKey:     true,
		DocumentCount: 3,
	}
	if cfg != want {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
