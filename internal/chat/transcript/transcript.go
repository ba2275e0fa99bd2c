package transcript

import (
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Sender identifies who authored a transcript message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Greeting opens every fresh session.
const Greeting = "Hello! I'm your AI calendar assistant. How can I help you today?"

// Message is a single transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type session struct {
	mu       sync.Mutex
	messages []Message
}

// Store keeps in-memory chat transcripts keyed by user. Sessions are
// bounded by an LRU so idle users age out, and each transcript is
// trimmed to the newest historyLimit messages.
type Store struct {
	mu           sync.Mutex
	sessions     *lru.Cache[string, *session]
	historyLimit int
	now          func() time.Time
}

func NewStore(maxSessions, historyLimit int) (*Store, error) {
	cache, err := lru.New[string, *session](maxSessions)
	if err != nil {
		return nil, err
	}
	return &Store{
		sessions:     cache,
		historyLimit: historyLimit,
		now:          time.Now,
	}, nil
}

func (s *Store) session(userID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions.Get(userID); ok {
		return sess
	}
	sess := &session{
		messages: []Message{{
			ID:        uuid.NewString(),
			Sender:    SenderAssistant,
			Text:      Greeting,
			Timestamp: s.now(),
		}},
	}
	s.sessions.Add(userID, sess)
	return sess
}

// Append records a message at the end of the user's transcript.
func (s *Store) Append(userID string, sender Sender, text string) Message {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	msg := Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: s.now(),
	}
	sess.messages = append(sess.messages, msg)
	if over := len(sess.messages) - s.historyLimit; over > 0 {
		sess.messages = sess.messages[over:]
	}
	return msg
}

// History returns a copy of the user's transcript, oldest first. A
// fresh session starts with the assistant greeting.
func (s *Store) History(userID string) []Message {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	out := make([]Message, len(sess.messages))
	copy(out, sess.messages)
	return out
}

// Reset discards the user's transcript; the next access starts a fresh
// session.
func (s *Store) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Remove(userID)
}
