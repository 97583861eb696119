package usecase

import (
	"context"
	"fmt"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/notify"
	"github.com/varunbhx/coachdesk/internal/store"
)

type DeleteEntityUseCase struct {
	Store  *store.Memory
	Events ChangePublisher
}

func NewDeleteEntityUseCase(s *store.Memory, events ChangePublisher) *DeleteEntityUseCase {
	return &DeleteEntityUseCase{Store: s, Events: events}
}

// Execute deletes a client by id. Leads, payments and sessions are not
// deletable; asking for one is rejected with a clear error, never silently
// ignored. Deleting a missing client is a NotFound result, not a crash, and
// emits no change event.
func (uc *DeleteEntityUseCase) Execute(ctx context.Context, kind entity.Kind, id int64) error {
	switch kind {
	case entity.KindClient:
		if !uc.Store.DeleteClient(id) {
			return NotFoundError("client", id)
		}
		uc.Events.Publish(entity.KindClient, notify.ActionDeleted, id)
		return nil
	case entity.KindLead, entity.KindPayment, entity.KindSession:
		return &DomainError{
			Code:    CodeUnsupported,
			Message: fmt.Sprintf("deleting a %s is not currently supported", kind),
		}
	default:
		return &DomainError{
			Code:    CodeValidation,
			Message: fmt.Sprintf("unknown entity kind %q", kind),
		}
	}
}
