package usecase

import (
	"github.com/stretchr/testify/mock"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/notify"
)

// MockChangePublisher
type MockChangePublisher struct {
	mock.Mock
}

func (m *MockChangePublisher) Publish(kind entity.Kind, action notify.Action, entityID int64) {
	m.Called(kind, action, entityID)
}

// MockMailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendWelcome(to, name, program string) error {
	args := m.Called(to, name, program)
	return args.Error(0)
}

func (m *MockMailSender) SendSessionConfirmation(to, name, sessionType, date, clock string) error {
	args := m.Called(to, name, sessionType, date, clock)
	return args.Error(0)
}
