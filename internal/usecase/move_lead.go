package usecase

import (
	"context"
	"fmt"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/notify"
	"github.com/varunbhx/coachdesk/internal/store"
)

// MoveLeadUseCase drives the pipeline state machine. Moving a lead onto the
// stage it is already in is a no-op, not an error, and fires no event.
// Moves out of won/lost are rejected. When two callers race on the same
// lead the store applies them last-write-wins; this use case adds no
// ordering of its own.
type MoveLeadUseCase struct {
	Store  *store.Memory
	Events ChangePublisher
}

func NewMoveLeadUseCase(s *store.Memory, events ChangePublisher) *MoveLeadUseCase {
	return &MoveLeadUseCase{Store: s, Events: events}
}

func (uc *MoveLeadUseCase) Execute(ctx context.Context, leadID int64, target entity.Stage) (*MoveLeadOutput, error) {
	if !target.Valid() {
		return nil, NewValidationError([]ValidationError{
			{Field: "stage", Message: "must be new, qualified, proposal, won or lost"},
		})
	}

	result, prev := uc.Store.MoveLeadStage(leadID, target)
	switch result {
	case store.MoveNotFound:
		return nil, NotFoundError("lead", leadID)
	case store.MoveNoChange:
		return &MoveLeadOutput{LeadID: leadID, Changed: false, Stage: string(prev)}, nil
	case store.MoveRejected:
		return nil, &DomainError{
			Code:    CodeStageFinal,
			Message: fmt.Sprintf("lead %d is already %s; closed leads cannot be moved", leadID, prev),
		}
	}

	uc.Events.Publish(entity.KindLead, notify.ActionMoved, leadID)
	return &MoveLeadOutput{
		LeadID:  leadID,
		Changed: true,
		From:    string(prev),
		Stage:   string(target),
	}, nil
}
