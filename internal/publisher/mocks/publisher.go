package mocks

import (
	"github.com/n1207n/fullstack-posts/internal/events"
	"github.com/stretchr/testify/mock"
)

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishPostCreated(event events.PostCreatedEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *EventPublisher) PublishPostUpdated(event events.PostUpdatedEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *EventPublisher) PublishPostDeleted(event events.PostDeletedEvent) error {
	args := m.Called(event)
	return args.Error(0)
}
