package chat

import "time"

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is immutable once appended. Speak is advisory metadata telling the
// presentation side whether the text was queued for synthesis.
type Message struct {
	ID     int64
	Text   string
	Sender Sender
	Time   time.Time
	Speak  bool
}

// Log is the append-only, time-ordered conversation history. Messages are
// never edited or removed; the whole log dies with the session.
type Log struct {
	messages []Message
	lastID   int64
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(sender Sender, text string, speak bool) Message {
	now := time.Now()
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	msg := Message{
		ID:     id,
		Text:   text,
		Sender: sender,
		Time:   now,
		Speak:  speak,
	}
	l.messages = append(l.messages, msg)
	return msg
}

func (l *Log) Len() int {
	return len(l.messages)
}

// Messages returns a copy; callers cannot mutate the history.
func (l *Log) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

func (l *Log) Last() (Message, bool) {
	if len(l.messages) == 0 {
		return Message{}, false
	}
	return l.messages[len(l.messages)-1], true
}
