package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/notify"
	"github.com/varunbhx/coachdesk/internal/store"
)

func seedClient(mem *store.Memory) int64 {
	return mem.AddClient(entity.Client{Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Status: entity.ClientStatusActive})
}

func TestCreatePaymentForExistingClient(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	clientID := seedClient(mem)

	events := new(MockChangePublisher)
	events.On("Publish", entity.KindPayment, notify.ActionCreated, int64(1)).Once()

	uc := NewCreatePaymentUseCase(mem, events)
	payment, err := uc.Execute(ctx, CreatePaymentInput{
		ClientID: clientID,
		Amount:   decimal.NewFromInt(2500),
		Method:   "Bank Transfer",
		Date:     "2026-08-01",
		Status:   entity.PaymentStatusCompleted,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), payment.ID)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(2500)))
	events.AssertExpectations(t)
}

func TestCreatePaymentRejectsUnknownClientReference(t *testing.T) {
	ctx := context.Background()
	events := new(MockChangePublisher)
	uc := NewCreatePaymentUseCase(store.NewMemory(), events)

	_, err := uc.Execute(ctx, CreatePaymentInput{
		ClientID: 99,
		Amount:   decimal.NewFromInt(100),
		Method:   "Cash",
		Date:     "2026-08-01",
		Status:   entity.PaymentStatusPending,
	})

	assert.Error(t, err)
	assert.Equal(t, CodeValidation, DomainErrorCode(err))
	assert.Contains(t, err.Error(), "client_id")
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePaymentRejectsNegativeAmountAndBadEnums(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	seedClient(mem)
	uc := NewCreatePaymentUseCase(mem, new(MockChangePublisher))

	_, err := uc.Execute(ctx, CreatePaymentInput{
		ClientID: 1,
		Amount:   decimal.NewFromInt(-5),
		Method:   "IOU",
		Date:     "yesterday",
		Status:   "maybe",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
	assert.Contains(t, err.Error(), "method")
	assert.Contains(t, err.Error(), "date")
	assert.Contains(t, err.Error(), "status")
}

func TestCreateSessionDefaultsToScheduled(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	clientID := seedClient(mem)

	events := new(MockChangePublisher)
	events.On("Publish", entity.KindSession, notify.ActionCreated, int64(1)).Once()

	uc := NewCreateSessionUseCase(mem, events, nil)
	session, err := uc.Execute(ctx, CreateSessionInput{
		ClientID: clientID,
		Type:     "1-on-1 Coaching",
		Date:     "2026-09-01",
		Time:     "09:30",
		Duration: 60,
		Location: "Studio A",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.SessionStatusScheduled, session.Status)
	events.AssertExpectations(t)
}

func TestCreateSessionSendsConfirmationMail(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	clientID := seedClient(mem)

	events := new(MockChangePublisher)
	events.On("Publish", mock.Anything, mock.Anything, mock.Anything)

	sent := make(chan struct{}, 1)
	mailer := new(MockMailSender)
	mailer.On("SendSessionConfirmation", "asha@example.com", "Asha", "Assessment", "2026-09-01", "10:00").
		Run(func(mock.Arguments) { sent <- struct{}{} }).
		Return(nil)

	uc := NewCreateSessionUseCase(mem, events, mailer)
	_, err := uc.Execute(ctx, CreateSessionInput{
		ClientID: clientID,
		Type:     "Assessment",
		Date:     "2026-09-01",
		Time:     "10:00",
		Duration: 45,
	})
	assert.NoError(t, err)

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("session confirmation mail was never sent")
	}
}

func TestCreateSessionRejectsNonPositiveDuration(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	seedClient(mem)
	uc := NewCreateSessionUseCase(mem, new(MockChangePublisher), nil)

	_, err := uc.Execute(ctx, CreateSessionInput{
		ClientID: 1,
		Type:     "Assessment",
		Date:     "2026-09-01",
		Time:     "10:00",
		Duration: 0,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duration_minutes")
}
