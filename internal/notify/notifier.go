package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/varunbhx/coachdesk/internal/entity"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionDeleted Action = "deleted"
	ActionMoved   Action = "moved"
)

// ChangeEvent announces that one entity set changed. Views re-pull whatever
// projection they render from the store; the event itself carries no entity
// payload.
type ChangeEvent struct {
	EventID    string      `json:"event_id"`
	Kind       entity.Kind `json:"kind"`
	Action     Action      `json:"action"`
	EntityID   int64       `json:"entity_id"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Observer is the core-to-view boundary. EntityChanged fires after every
// successful create/delete/move; MetricsStale follows immediately, since
// every entity kind currently feeds the dashboard rollups.
type Observer interface {
	EntityChanged(evt ChangeEvent)
	MetricsStale()
}

// Hub fans one change out to every registered observer, EntityChanged
// before MetricsStale, observers in registration order.
type Hub struct {
	observers []Observer
}

func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) Register(o Observer) {
	h.observers = append(h.observers, o)
}

func (h *Hub) Publish(kind entity.Kind, action Action, entityID int64) {
	evt := ChangeEvent{
		EventID:    uuid.New().String(),
		Kind:       kind,
		Action:     action,
		EntityID:   entityID,
		OccurredAt: time.Now(),
	}
	for _, o := range h.observers {
		o.EntityChanged(evt)
	}
	for _, o := range h.observers {
		o.MetricsStale()
	}
}
