package alerts

import (
	"context"
	"sort"
	"sync"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

// MemoryRepository keeps alerts in a mutex-guarded map. Alerts are lost on restart.
type MemoryRepository struct {
	mu     sync.RWMutex
	alerts map[string]*entities.Alert
}

// NewMemoryRepository creates an empty repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{alerts: make(map[string]*entities.Alert)}
}

// Save stores a copy of alert, replacing any alert with the same id
func (r *MemoryRepository) Save(ctx context.Context, alert *entities.Alert) error {
	stored := *alert
	r.mu.Lock()
	r.alerts[alert.ID] = &stored
	r.mu.Unlock()
	return nil
}

// List returns copies of every alert, newest first
func (r *MemoryRepository) List(ctx context.Context) ([]*entities.Alert, error) {
	r.mu.RLock()
	out := make([]*entities.Alert, 0, len(r.alerts))
	for _, alert := range r.alerts {
		copied := *alert
		out = append(out, &copied)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes the alert and reports whether it existed
func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.alerts[id]; !ok {
		return false, nil
	}
	delete(r.alerts, id)
	return true, nil
}

// Update applies fn to every stored alert while holding the write lock
func (r *MemoryRepository) Update(ctx context.Context, fn func(alert *entities.Alert)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, alert := range r.alerts {
		fn(alert)
	}
	return nil
}
