package store

import "github.com/varunbhx/coachdesk/internal/entity"

// ClientResolver joins payments and sessions to their client. It is a total
// function: a reference to a deleted client yields the unknown-client
// sentinel, never an error.
type ClientResolver struct {
	store *Memory
}

func NewClientResolver(m *Memory) *ClientResolver {
	return &ClientResolver{store: m}
}

func (r *ClientResolver) Resolve(clientID int64) entity.Client {
	if c, ok := r.store.ClientByID(clientID); ok {
		return c
	}
	return *entity.UnknownClient(clientID)
}
