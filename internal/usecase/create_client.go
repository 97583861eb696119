package usecase

import (
	"context"
	"log"
	"time"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/notify"
	"github.com/varunbhx/coachdesk/internal/store"
)

type CreateClientUseCase struct {
	Store  *store.Memory
	Events ChangePublisher
	Mail   MailSender
}

func NewCreateClientUseCase(s *store.Memory, events ChangePublisher, mail MailSender) *CreateClientUseCase {
	return &CreateClientUseCase{
		Store:  s,
		Events: events,
		Mail:   mail,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*entity.Client, error) {
	if errs := ValidateCreateClientInput(input); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	client := entity.Client{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Age:       input.Age,
		Gender:    input.Gender,
		Program:   input.Program,
		StartDate: input.StartDate,
		Notes:     input.Notes,
		Status:    entity.ClientStatusActive,
		CreatedAt: time.Now(),
	}

	client.ID = uc.Store.AddClient(client)
	uc.Events.Publish(entity.KindClient, notify.ActionCreated, client.ID)

	// Welcome mail is best-effort and must not delay or fail the mutation.
	if uc.Mail != nil {
		go func(to, name, program string) {
			if err := uc.Mail.SendWelcome(to, name, program); err != nil {
				log.Printf("welcome mail to %s failed: %v", to, err)
			}
		}(client.Email, client.Name, client.Program)
	}

	return &client, nil
}
