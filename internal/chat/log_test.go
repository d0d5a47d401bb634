package chat

import "testing"

func TestLogAppendsInOrder(t *testing.T) {
	l := NewLog()
	l.Append(SenderUser, "hola", false)
	l.Append(SenderAssistant, "buenas", true)

	msgs := l.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Sender != SenderUser || msgs[0].Text != "hola" {
		t.Fatalf("unexpected first message %+v", msgs[0])
	}
	if msgs[1].Sender != SenderAssistant || !msgs[1].Speak {
		t.Fatalf("unexpected second message %+v", msgs[1])
	}
}

func TestLogIDsAreStrictlyIncreasing(t *testing.T) {
	l := NewLog()
	var last int64
	for i := 0; i < 100; i++ {
		msg := l.Append(SenderUser, "x", false)
		if msg.ID <= last {
			t.Fatalf("id %d not greater than previous %d", msg.ID, last)
		}
		last = msg.ID
	}
}

func TestLogMessagesReturnsCopy(t *testing.T) {
	l := NewLog()
	l.Append(SenderUser, "hola", false)

	msgs := l.Messages()
	msgs[0].Text = "mutated"

	if got, _ := l.Last(); got.Text != "hola" {
		t.Fatalf("log was mutated through Messages(): %q", got.Text)
	}
}
