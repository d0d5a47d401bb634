package chat

import (
	"testing"

	"asistente/internal/assistant"
)

func TestConfigStoreReplacesWholesale(t *testing.T) {
	s := NewConfigStore(DefaultConfig())
	next := assistant.Config{AssistantName: "Lola", Model: "gemini-1.5-pro", Theme: "light", DocumentCount: 2}
	s.Replace(next)
	if s.Current() != next {
		t.Fatalf("expected %+v, got %+v", next, s.Current())
	}
}

func TestDraftResetClearsCredential(t *testing.T) {
	d := Draft{AssistantName: "edited", APIKey: "secret", Model: "edited-model"}
	d.Reset(assistant.Config{AssistantName: "Asistente IA", Model: "gemini-2.0-flash-exp"})

	if d.AssistantName != "Asistente IA" || d.Model != "gemini-2.0-flash-exp" {
		t.Fatalf("draft not reseeded: %+v", d)
	}
	if d.APIKey != "" {
		t.Fatalf("credential must be cleared on reset")
	}
}

func TestDraftUpdateKeepsBlanksOut(t *testing.T) {
	var d Draft
	if !d.Update().Empty() {
		t.Fatalf("blank draft must build an empty update")
	}

	d.AssistantName = "Lola"
	upd := d.Update()
	if upd.AssistantName != "Lola" || upd.APIKey != "" || upd.Model != "" {
		t.Fatalf("unexpected update %+v", upd)
	}
}
