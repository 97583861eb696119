package usecase

import (
	"context"
	"log"
	"time"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/notify"
	"github.com/varunbhx/coachdesk/internal/store"
)

type CreateSessionUseCase struct {
	Store  *store.Memory
	Events ChangePublisher
	Mail   MailSender
}

func NewCreateSessionUseCase(s *store.Memory, events ChangePublisher, mail MailSender) *CreateSessionUseCase {
	return &CreateSessionUseCase{
		Store:  s,
		Events: events,
		Mail:   mail,
	}
}

func (uc *CreateSessionUseCase) Execute(ctx context.Context, input CreateSessionInput) (*entity.Session, error) {
	errs := ValidateCreateSessionInput(input)
	var client entity.Client
	if len(errs) == 0 {
		var ok bool
		client, ok = uc.Store.ClientByID(input.ClientID)
		if !ok {
			errs = append(errs, ValidationError{"client_id", "does not reference an existing client"})
		}
	}
	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	session := entity.Session{
		ClientID:  input.ClientID,
		Type:      input.Type,
		Date:      input.Date,
		Time:      input.Time,
		Duration:  input.Duration,
		Location:  input.Location,
		Notes:     input.Notes,
		Status:    entity.SessionStatusScheduled,
		CreatedAt: time.Now(),
	}

	session.ID = uc.Store.AddSession(session)
	uc.Events.Publish(entity.KindSession, notify.ActionCreated, session.ID)

	if uc.Mail != nil {
		go func(to, name string, s entity.Session) {
			if err := uc.Mail.SendSessionConfirmation(to, name, s.Type, s.Date, s.Time); err != nil {
				log.Printf("session confirmation mail to %s failed: %v", to, err)
			}
		}(client.Email, client.Name, session)
	}

	return &session, nil
}
