package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// AssignmentEventsTopic carries assignment lifecycle events.
const AssignmentEventsTopic = "assignments.events"

type EventType string

const (
	AssignmentCreated EventType = "assignment.created"
	AssignmentUpdated EventType = "assignment.updated"
	AssignmentDeleted EventType = "assignment.deleted"
)

// AssignmentEvent is the published payload for an assignment lifecycle change.
type AssignmentEvent struct {
	Type         EventType `json:"type"`
	AssignmentID string    `json:"assignment_id"`
	CourseName   string    `json:"course_name,omitempty"`
	Title        string    `json:"title,omitempty"`
	CreatedBy    string    `json:"created_by,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher publishes assignment lifecycle events.
type EventPublisher interface {
	PublishAssignmentEvent(ctx context.Context, event *AssignmentEvent) error
	Close() error
}

// WatermillPublisher publishes over an in-process Watermill pub/sub.
type WatermillPublisher struct {
	pubSub *gochannel.GoChannel
	logger *slog.Logger
}

func NewWatermillPublisher(logger *slog.Logger) *WatermillPublisher {
	wmLogger := watermill.NewSlogLogger(logger)
	return &WatermillPublisher{
		pubSub: gochannel.NewGoChannel(gochannel.Config{}, wmLogger),
		logger: logger,
	}
}

func (p *WatermillPublisher) PublishAssignmentEvent(_ context.Context, event *AssignmentEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(AssignmentEventsTopic, msg); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}

// RunLoggingSubscriber consumes the events topic and logs each event until
// ctx is cancelled. Started from main; downstream consumers (notifications,
// audit) would subscribe the same way.
func (p *WatermillPublisher) RunLoggingSubscriber(ctx context.Context) error {
	messages, err := p.pubSub.Subscribe(ctx, AssignmentEventsTopic)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	go func() {
		for msg := range messages {
			var event AssignmentEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				p.logger.Error("malformed assignment event", "error", err)
				msg.Ack()
				continue
			}
			p.logger.Info("assignment event",
				"type", string(event.Type),
				"assignment_id", event.AssignmentID,
				"course_name", event.CourseName)
			msg.Ack()
		}
	}()

	return nil
}

func (p *WatermillPublisher) Close() error {
	return p.pubSub.Close()
}

var _ EventPublisher = (*WatermillPublisher)(nil)
