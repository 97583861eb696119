package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/varunbhx/coachdesk/internal/entity"
)

func TestResolveExistingClient(t *testing.T) {
	m := NewMemory()
	id := m.AddClient(entity.Client{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"})

	r := NewClientResolver(m)
	got := r.Resolve(id)

	assert.Equal(t, "Asha", got.Name)
	assert.False(t, got.IsUnknown())
}

func TestResolveDeletedClientYieldsSentinel(t *testing.T) {
	m := NewMemory()
	id := m.AddClient(entity.Client{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"})
	m.DeleteClient(id)

	r := NewClientResolver(m)
	got := r.Resolve(id)

	assert.Equal(t, "Unknown Client", got.Name)
	assert.True(t, got.IsUnknown())
	assert.Equal(t, id, got.ID, "sentinel keeps the dangling reference visible")
}

func TestResolveNeverErrorsForArbitraryIDs(t *testing.T) {
	r := NewClientResolver(NewMemory())

	for _, id := range []int64{-1, 0, 1, 1 << 40} {
		got := r.Resolve(id)
		assert.Equal(t, "Unknown Client", got.Name)
	}
}
