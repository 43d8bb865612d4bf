package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/movietix/booking/internal/core/domain"
)

// EventPublisher is a mock of ports.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *EventPublisher) PublishBadgeCount(count int) {
	m.Called(count)
}

func (m *EventPublisher) PublishBookingCommitted(ticket domain.Ticket) {
	m.Called(ticket)
}
