package transcript

import "testing"

func newTestStore(t *testing.T, maxSessions, historyLimit int) *Store {
	t.Helper()
	s, err := NewStore(maxSessions, historyLimit)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestFreshSessionGreets(t *testing.T) {
	s := newTestStore(t, 8, 50)

	got := s.History("user-1")
	if len(got) != 1 {
		t.Fatalf("history length = %d, want 1", len(got))
	}
	if got[0].Sender != SenderAssistant || got[0].Text != Greeting {
		t.Errorf("unexpected greeting message: %+v", got[0])
	}
	if got[0].ID == "" {
		t.Error("greeting message has no ID")
	}
}

func TestAppendOrdersAndIsolatesUsers(t *testing.T) {
	s := newTestStore(t, 8, 50)

	s.Append("user-1", SenderUser, "hello")
	s.Append("user-1", SenderAssistant, "hi there")
	s.Append("user-2", SenderUser, "unrelated")

	got := s.History("user-1")
	if len(got) != 3 {
		t.Fatalf("history length = %d, want 3", len(got))
	}
	if got[1].Text != "hello" || got[2].Text != "hi there" {
		t.Errorf("messages out of order: %q, %q", got[1].Text, got[2].Text)
	}
	if len(s.History("user-2")) != 2 {
		t.Error("user-2 transcript leaked into user-1 session")
	}
}

func TestHistoryLimitTrimsOldest(t *testing.T) {
	s := newTestStore(t, 8, 3)

	s.Append("user-1", SenderUser, "first")
	s.Append("user-1", SenderUser, "second")
	s.Append("user-1", SenderUser, "third")

	got := s.History("user-1")
	if len(got) != 3 {
		t.Fatalf("history length = %d, want 3", len(got))
	}
	// The greeting fell off the front.
	if got[0].Text != "first" {
		t.Errorf("oldest retained = %q, want %q", got[0].Text, "first")
	}
}

func TestResetStartsOver(t *testing.T) {
	s := newTestStore(t, 8, 50)

	s.Append("user-1", SenderUser, "hello")
	s.Reset("user-1")

	got := s.History("user-1")
	if len(got) != 1 || got[0].Text != Greeting {
		t.Fatalf("after reset got %d messages, want greeting only", len(got))
	}
}

func TestSessionCapEvictsIdleUsers(t *testing.T) {
	s := newTestStore(t, 2, 50)

	s.Append("user-1", SenderUser, "one")
	s.Append("user-2", SenderUser, "two")
	s.Append("user-3", SenderUser, "three")

	// user-1 was least recently used; its session restarted.
	got := s.History("user-1")
	if len(got) != 1 || got[0].Text != Greeting {
		t.Fatalf("evicted session not fresh: %d messages", len(got))
	}
}
