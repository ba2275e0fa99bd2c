package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ai-calendar-assistant/internal/chat"
	"ai-calendar-assistant/internal/chat/transcript"
)

type stubLogger struct{}

func (s *stubLogger) Debug(ctx context.Context, args ...any)                  {}
func (s *stubLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (s *stubLogger) Info(ctx context.Context, args ...any)                   {}
func (s *stubLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (s *stubLogger) Warn(ctx context.Context, args ...any)                   {}
func (s *stubLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (s *stubLogger) Error(ctx context.Context, args ...any)                  {}
func (s *stubLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (s *stubLogger) DPanic(ctx context.Context, args ...any)                 {}
func (s *stubLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (s *stubLogger) Panic(ctx context.Context, args ...any)                  {}
func (s *stubLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (s *stubLogger) Fatal(ctx context.Context, args ...any)                  {}
func (s *stubLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubUseCase struct {
	sendErr  error
	lastSend chat.SendMessageInput
}

func (s *stubUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	s.lastSend = input
	if s.sendErr != nil {
		return chat.SendMessageOutput{}, s.sendErr
	}
	now := time.Now()
	return chat.SendMessageOutput{Messages: []transcript.Message{
		{ID: "m-1", Sender: transcript.SenderUser, Text: input.Text, Timestamp: now},
		{ID: "m-2", Sender: transcript.SenderAssistant, Text: "ok", Timestamp: now},
	}}, nil
}

func (s *stubUseCase) History(ctx context.Context, userID string) (chat.HistoryOutput, error) {
	if userID == "" {
		return chat.HistoryOutput{}, chat.ErrUnauthenticated
	}
	return chat.HistoryOutput{Messages: []transcript.Message{
		{ID: "m-0", Sender: transcript.SenderAssistant, Text: transcript.Greeting, Timestamp: time.Now()},
	}}, nil
}

func (s *stubUseCase) Reset(ctx context.Context, userID string) error {
	if userID == "" {
		return chat.ErrUnauthenticated
	}
	return nil
}

func newTestRouter(uc chat.UseCase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&stubLogger{}, uc)
	grp := r.Group("/api/v1/chat/messages")
	identity := func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
	}
	grp.POST("", identity, h.Send)
	grp.GET("", identity, h.History)
	grp.DELETE("", identity, h.Reset)
	return r
}

func TestSendReturnsTurnMessages(t *testing.T) {
	uc := &stubUseCase{}
	r := newTestRouter(uc, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.lastSend.UserID != "user-1" || uc.lastSend.Text != "hello" {
		t.Errorf("use case input = %+v", uc.lastSend)
	}

	var body struct {
		Data sendResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(body.Data.Messages))
	}
	if body.Data.Messages[1].Sender != "assistant" {
		t.Errorf("second message sender = %q", body.Data.Messages[1].Sender)
	}
}

func TestSendRejectsMissingText(t *testing.T) {
	r := newTestRouter(&stubUseCase{}, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSendMapsUnauthenticated(t *testing.T) {
	uc := &stubUseCase{sendErr: chat.ErrUnauthenticated}
	r := newTestRouter(uc, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestHistoryAndResetRoutes(t *testing.T) {
	r := newTestRouter(&stubUseCase{}, "user-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chat/messages", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("history status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), transcript.Greeting) {
		t.Error("history response missing greeting")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/chat/messages", nil))
	if w.Code != http.StatusOK {
		t.Errorf("reset status = %d", w.Code)
	}
}
