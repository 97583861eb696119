package store

import (
	"sync"

	"github.com/varunbhx/coachdesk/internal/entity"
)

// MoveResult is the outcome of a pipeline move evaluated under the store
// lock, so the check and the swap cannot interleave with another writer.
type MoveResult int

const (
	MoveApplied MoveResult = iota
	MoveNoChange
	MoveNotFound
	MoveRejected // current stage is terminal
)

// Memory owns the canonical collections. All entities live in volatile
// memory; durability, if any, is an external adapter fed by change events.
//
// Collections keep insertion order and identifiers are monotonic per
// collection for the lifetime of the store. Writes are serialized behind
// one mutex; reads hand out copies so callers never alias live entities.
type Memory struct {
	mu sync.Mutex

	clients  []entity.Client
	leads    []entity.Lead
	payments []entity.Payment
	sessions []entity.Session

	nextClientID  int64
	nextLeadID    int64
	nextPaymentID int64
	nextSessionID int64
}

func NewMemory() *Memory {
	return &Memory{
		nextClientID:  1,
		nextLeadID:    1,
		nextPaymentID: 1,
		nextSessionID: 1,
	}
}

func (m *Memory) AddClient(c entity.Client) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.nextClientID
	m.nextClientID++
	m.clients = append(m.clients, c)
	return c.ID
}

func (m *Memory) Clients() []entity.Client {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.Client, len(m.clients))
	copy(out, m.clients)
	return out
}

func (m *Memory) ClientByID(id int64) (entity.Client, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.clients {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Client{}, false
}

// DeleteClient removes the client and reports whether it existed. There is
// no cascade: payments and sessions keep their client id and resolve to the
// unknown-client sentinel from then on.
func (m *Memory) DeleteClient(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.clients {
		if c.ID == id {
			m.clients = append(m.clients[:i], m.clients[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Memory) AddLead(l entity.Lead) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	l.ID = m.nextLeadID
	m.nextLeadID++
	m.leads = append(m.leads, l)
	return l.ID
}

func (m *Memory) Leads() []entity.Lead {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.Lead, len(m.leads))
	copy(out, m.leads)
	return out
}

func (m *Memory) LeadByID(id int64) (entity.Lead, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range m.leads {
		if l.ID == id {
			return l, true
		}
	}
	return entity.Lead{}, false
}

// MoveLeadStage evaluates and, when allowed, applies a pipeline move in one
// critical section. It returns the outcome and the stage the lead had when
// the decision was made. Concurrent moves on the same lead are
// last-write-wins; nothing here orders competing callers.
func (m *Memory) MoveLeadStage(id int64, target entity.Stage) (MoveResult, entity.Stage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.leads {
		if m.leads[i].ID != id {
			continue
		}
		current := m.leads[i].Stage
		switch {
		case current == target:
			return MoveNoChange, current
		case current.Terminal():
			return MoveRejected, current
		default:
			m.leads[i].Stage = target
			return MoveApplied, current
		}
	}
	return MoveNotFound, ""
}

func (m *Memory) AddPayment(p entity.Payment) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = m.nextPaymentID
	m.nextPaymentID++
	m.payments = append(m.payments, p)
	return p.ID
}

func (m *Memory) Payments() []entity.Payment {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.Payment, len(m.payments))
	copy(out, m.payments)
	return out
}

func (m *Memory) PaymentByID(id int64) (entity.Payment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.payments {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Payment{}, false
}

func (m *Memory) AddSession(s entity.Session) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = m.nextSessionID
	m.nextSessionID++
	m.sessions = append(m.sessions, s)
	return s.ID
}

func (m *Memory) Sessions() []entity.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.Session, len(m.sessions))
	copy(out, m.sessions)
	return out
}

func (m *Memory) SessionByID(id int64) (entity.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return entity.Session{}, false
}
