package usecase

import (
	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/notify"
)

// ChangePublisher is the slice of the notifier hub the use cases need.
type ChangePublisher interface {
	Publish(kind entity.Kind, action notify.Action, entityID int64)
}

// MailSender sends fire-and-forget mail; failures are logged by the caller
// and never surfaced to the mutation that triggered them.
type MailSender interface {
	SendWelcome(to, name, program string) error
	SendSessionConfirmation(to, name, sessionType, date, clock string) error
}
