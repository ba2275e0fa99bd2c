package gcalendar_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"ai-calendar-assistant/pkg/gcalendar"
)

// Both credentials paths funnel through NewClientFromHTTP, so a plain
// authorized client must be enough to build a Mirror.
func TestNewClientFromHTTP(t *testing.T) {
	client, err := gcalendar.NewClientFromHTTP(context.Background(), &http.Client{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("client should not be nil")
	}
	var _ gcalendar.Mirror = client
}

func TestNewClientFromCredentialsJSONRejectsBrokenConfig(t *testing.T) {
	_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
	if err == nil {
		t.Fatalf("expected error for unusable credentials")
	}
}

func TestNoopMirror(t *testing.T) {
	var mirror gcalendar.Mirror = gcalendar.Noop{}
	ctx := context.Background()

	events, err := mirror.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin: time.Now(),
		TimeMax: time.Now().AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("noop list should be empty, got %d", len(events))
	}

	start := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	created, err := mirror.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:   "Lunch with Sarah",
		StartTime: start,
		EndTime:   start.AddDate(0, 0, 1),
	})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if created.Summary != "Lunch with Sarah" || !created.StartTime.Equal(start) {
		t.Errorf("noop create should echo input, got %+v", created)
	}

	if err := mirror.DeleteEvent(ctx, "", "any-id"); err != nil {
		t.Errorf("noop delete should never fail: %v", err)
	}
}
