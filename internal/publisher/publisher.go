package publisher

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/n1207n/fullstack-posts/internal/events"
	"github.com/n1207n/fullstack-posts/internal/metrics"
)

// EventPublisher emits post lifecycle events after their change is committed.
type EventPublisher interface {
	PublishPostCreated(event events.PostCreatedEvent) error
	PublishPostUpdated(event events.PostUpdatedEvent) error
	PublishPostDeleted(event events.PostDeletedEvent) error
}

// Broker is the subset of a message bus connection the publisher needs.
type Broker interface {
	Publish(subject string, data []byte) error
}

type natsEventPublisher struct {
	broker Broker
}

func NewEventPublisher(broker Broker) EventPublisher {
	return &natsEventPublisher{broker: broker}
}

func (p *natsEventPublisher) PublishPostCreated(event events.PostCreatedEvent) error {
	return p.publish(events.PostCreated, event.PostID.String(), event)
}

func (p *natsEventPublisher) PublishPostUpdated(event events.PostUpdatedEvent) error {
	return p.publish(events.PostUpdated, event.PostID.String(), event)
}

func (p *natsEventPublisher) PublishPostDeleted(event events.PostDeletedEvent) error {
	return p.publish(events.PostDeleted, event.PostID.String(), event)
}

func (p *natsEventPublisher) publish(subject, postID string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		metrics.PostEventsFailed.WithLabelValues(subject).Inc()
		return fmt.Errorf("failed to marshal %s event for post %s: %w", subject, postID, err)
	}

	if err := p.broker.Publish(subject, data); err != nil {
		metrics.PostEventsFailed.WithLabelValues(subject).Inc()
		return fmt.Errorf("failed to publish %s event for post %s: %w", subject, postID, err)
	}

	metrics.PostEventsPublished.WithLabelValues(subject).Inc()
	log.Printf("Published event: %s for post %s", subject, postID)
	return nil
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishPostCreated(events.PostCreatedEvent) error { return nil }
func (NoopPublisher) PublishPostUpdated(events.PostUpdatedEvent) error { return nil }
func (NoopPublisher) PublishPostDeleted(events.PostDeletedEvent) error { return nil }
