package usecase

import (
	"context"
	"time"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/notify"
	"github.com/varunbhx/coachdesk/internal/store"
)

type CreateLeadUseCase struct {
	Store  *store.Memory
	Events ChangePublisher
}

func NewCreateLeadUseCase(s *store.Memory, events ChangePublisher) *CreateLeadUseCase {
	return &CreateLeadUseCase{Store: s, Events: events}
}

// Execute captures a lead at the top of the pipeline. Every lead starts in
// stage "new"; only the move operation changes it afterwards.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	lead := entity.Lead{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Source:    input.Source,
		Program:   input.Program,
		Value:     input.Value,
		Notes:     input.Notes,
		Stage:     entity.StageNew,
		CreatedAt: time.Now(),
	}

	lead.ID = uc.Store.AddLead(lead)
	uc.Events.Publish(entity.KindLead, notify.ActionCreated, lead.ID)

	return &lead, nil
}
