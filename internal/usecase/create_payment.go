package usecase

import (
	"context"
	"time"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/notify"
	"github.com/varunbhx/coachdesk/internal/store"
)

type CreatePaymentUseCase struct {
	Store  *store.Memory
	Events ChangePublisher
}

func NewCreatePaymentUseCase(s *store.Memory, events ChangePublisher) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{Store: s, Events: events}
}

// Execute records a payment. The client reference is checked at write time;
// if the client is deleted later, reads resolve to the unknown-client
// sentinel instead.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*entity.Payment, error) {
	errs := ValidateCreatePaymentInput(input)
	if len(errs) == 0 {
		if _, ok := uc.Store.ClientByID(input.ClientID); !ok {
			errs = append(errs, ValidationError{"client_id", "does not reference an existing client"})
		}
	}
	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	payment := entity.Payment{
		ClientID:  input.ClientID,
		Amount:    input.Amount,
		Method:    input.Method,
		Date:      input.Date,
		Status:    input.Status,
		Notes:     input.Notes,
		CreatedAt: time.Now(),
	}

	payment.ID = uc.Store.AddPayment(payment)
	uc.Events.Publish(entity.KindPayment, notify.ActionCreated, payment.ID)

	return &payment, nil
}
