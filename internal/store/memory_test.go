package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/varunbhx/coachdesk/internal/entity"
)

func TestAddClientAssignsMonotonicIDs(t *testing.T) {
	m := NewMemory()

	first := m.AddClient(entity.Client{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"})
	second := m.AddClient(entity.Client{Name: "Ravi", Email: "ravi@example.com", Phone: "9876543211"})

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestClientsPreserveInsertionOrder(t *testing.T) {
	m := NewMemory()

	m.AddClient(entity.Client{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"})
	m.AddClient(entity.Client{Name: "Ravi", Email: "ravi@example.com", Phone: "9876543211"})
	m.AddClient(entity.Client{Name: "Meena", Email: "meena@example.com", Phone: "9876543212"})

	clients := m.Clients()
	assert.Len(t, clients, 3)
	assert.Equal(t, "Asha", clients[0].Name)
	assert.Equal(t, "Ravi", clients[1].Name)
	assert.Equal(t, "Meena", clients[2].Name)
}

func TestClientByIDReturnsStoredFields(t *testing.T) {
	m := NewMemory()

	id := m.AddClient(entity.Client{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Age:     34,
		Program: "Personal Training",
		Notes:   "prefers mornings",
		Status:  entity.ClientStatusActive,
	})

	got, ok := m.ClientByID(id)
	assert.True(t, ok)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, "asha@example.com", got.Email)
	assert.Equal(t, "9876543210", got.Phone)
	assert.Equal(t, 34, got.Age)
	assert.Equal(t, "Personal Training", got.Program)
	assert.Equal(t, "prefers mornings", got.Notes)
}

func TestDeleteClientIsIdempotentReporting(t *testing.T) {
	m := NewMemory()
	id := m.AddClient(entity.Client{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"})

	assert.True(t, m.DeleteClient(id))
	assert.False(t, m.DeleteClient(id), "second delete reports not found, never crashes")
	assert.False(t, m.DeleteClient(999))
	assert.Empty(t, m.Clients())
}

func TestDeletedClientIDIsNeverReused(t *testing.T) {
	m := NewMemory()
	first := m.AddClient(entity.Client{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"})
	m.DeleteClient(first)

	second := m.AddClient(entity.Client{Name: "Ravi", Email: "ravi@example.com", Phone: "9876543211"})
	assert.Greater(t, second, first)
}

func TestMoveLeadStageOutcomes(t *testing.T) {
	m := NewMemory()
	id := m.AddLead(entity.Lead{Name: "Kiran", Source: "Website", Stage: entity.StageNew, Value: decimal.NewFromInt(5000)})

	result, prev := m.MoveLeadStage(id, entity.StageNew)
	assert.Equal(t, MoveNoChange, result)
	assert.Equal(t, entity.StageNew, prev)

	result, prev = m.MoveLeadStage(id, entity.StageQualified)
	assert.Equal(t, MoveApplied, result)
	assert.Equal(t, entity.StageNew, prev)

	lead, ok := m.LeadByID(id)
	assert.True(t, ok)
	assert.Equal(t, entity.StageQualified, lead.Stage)

	result, _ = m.MoveLeadStage(999, entity.StageWon)
	assert.Equal(t, MoveNotFound, result)
}

func TestMoveLeadStageRejectsLeavingTerminal(t *testing.T) {
	m := NewMemory()
	id := m.AddLead(entity.Lead{Name: "Kiran", Source: "Referral", Stage: entity.StageNew})

	result, _ := m.MoveLeadStage(id, entity.StageWon)
	assert.Equal(t, MoveApplied, result)

	result, prev := m.MoveLeadStage(id, entity.StageNew)
	assert.Equal(t, MoveRejected, result)
	assert.Equal(t, entity.StageWon, prev)

	lead, _ := m.LeadByID(id)
	assert.Equal(t, entity.StageWon, lead.Stage, "rejected move leaves the stage untouched")
}

func TestListsHandOutCopies(t *testing.T) {
	m := NewMemory()
	m.AddLead(entity.Lead{Name: "Kiran", Source: "Event", Stage: entity.StageNew})

	leads := m.Leads()
	leads[0].Stage = entity.StageLost

	fresh, _ := m.LeadByID(leads[0].ID)
	assert.Equal(t, entity.StageNew, fresh.Stage, "mutating a listing must not touch the store")
}

func TestPaymentAndSessionCollections(t *testing.T) {
	m := NewMemory()

	pid := m.AddPayment(entity.Payment{ClientID: 1, Amount: decimal.NewFromInt(500), Method: "UPI", Status: entity.PaymentStatusCompleted})
	sid := m.AddSession(entity.Session{ClientID: 1, Type: "Assessment", Duration: 60, Status: entity.SessionStatusScheduled})

	p, ok := m.PaymentByID(pid)
	assert.True(t, ok)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(500)))

	s, ok := m.SessionByID(sid)
	assert.True(t, ok)
	assert.Equal(t, 60, s.Duration)

	_, ok = m.PaymentByID(42)
	assert.False(t, ok)
	_, ok = m.SessionByID(42)
	assert.False(t, ok)
}
