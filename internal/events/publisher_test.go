package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatermillPublisherRoundTrip(t *testing.T) {
	publisher := NewWatermillPublisher(testLogger())
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	messages, err := publisher.pubSub.Subscribe(ctx, AssignmentEventsTopic)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	sent := &AssignmentEvent{
		Type:         AssignmentCreated,
		AssignmentID: "68b1f2c4a9d0e1f2a3b4c5d6",
		CourseName:   "INFR3120",
		Title:        "Lab 3",
		CreatedBy:    "Alex",
	}
	if err := publisher.PublishAssignmentEvent(ctx, sent); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case msg := <-messages:
		var got AssignmentEvent
		if err := json.Unmarshal(msg.Payload, &got); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		msg.Ack()

		if got.Type != AssignmentCreated {
			t.Errorf("expected type %q, got %q", AssignmentCreated, got.Type)
		}
		if got.AssignmentID != sent.AssignmentID {
			t.Errorf("expected assignment id %q, got %q", sent.AssignmentID, got.AssignmentID)
		}
		if got.CourseName != "INFR3120" {
			t.Errorf("expected course name INFR3120, got %q", got.CourseName)
		}
		if got.OccurredAt.IsZero() {
			t.Error("expected OccurredAt to be stamped on publish")
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for published event")
	}
}

func TestWatermillPublisherStampsOccurredAt(t *testing.T) {
	publisher := NewWatermillPublisher(testLogger())
	defer publisher.Close()

	event := &AssignmentEvent{Type: AssignmentDeleted, AssignmentID: "abc123"}
	if err := publisher.PublishAssignmentEvent(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if event.OccurredAt.IsZero() {
		t.Error("expected zero OccurredAt to be replaced")
	}

	stamped := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	event = &AssignmentEvent{Type: AssignmentUpdated, AssignmentID: "abc123", OccurredAt: stamped}
	if err := publisher.PublishAssignmentEvent(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !event.OccurredAt.Equal(stamped) {
		t.Errorf("expected caller-provided OccurredAt to be kept, got %v", event.OccurredAt)
	}
}

func TestRunLoggingSubscriberAcksEvents(t *testing.T) {
	publisher := NewWatermillPublisher(testLogger())
	defer publisher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := publisher.RunLoggingSubscriber(ctx); err != nil {
		t.Fatalf("run subscriber: %v", err)
	}

	for _, eventType := range []EventType{AssignmentCreated, AssignmentUpdated, AssignmentDeleted} {
		event := &AssignmentEvent{Type: eventType, AssignmentID: "abc123"}
		if err := publisher.PublishAssignmentEvent(ctx, event); err != nil {
			t.Fatalf("publish %s: %v", eventType, err)
		}
	}
}

func TestMockEventPublisherRecordsEvents(t *testing.T) {
	mock := NewMockEventPublisher(testLogger())

	events := []*AssignmentEvent{
		{Type: AssignmentCreated, AssignmentID: "one"},
		{Type: AssignmentUpdated, AssignmentID: "one"},
		{Type: AssignmentDeleted, AssignmentID: "one"},
	}
	for _, event := range events {
		if err := mock.PublishAssignmentEvent(context.Background(), event); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	published := mock.GetPublishedEvents()
	if len(published) != 3 {
		t.Fatalf("expected 3 recorded events, got %d", len(published))
	}
	for i, event := range events {
		if published[i].Type != event.Type {
			t.Errorf("event %d: expected type %q, got %q", i, event.Type, published[i].Type)
		}
	}

	if err := mock.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
