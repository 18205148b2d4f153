package alerts

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

func TestMemoryRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, &entities.Alert{ID: "alt_a", CreatedAt: base}))
	require.NoError(t, repo.Save(ctx, &entities.Alert{ID: "alt_b", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, repo.Save(ctx, &entities.Alert{ID: "alt_c", CreatedAt: base.Add(-time.Minute)}))

	list, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"alt_b", "alt_a", "alt_c"}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestMemoryRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Save(ctx, &entities.Alert{ID: "alt_a", IsActive: true}))

	list, _ := repo.List(ctx)
	list[0].IsActive = false

	again, _ := repo.List(ctx)
	assert.True(t, again[0].IsActive)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Save(ctx, &entities.Alert{ID: "alt_a"}))

	deleted, err := repo.Delete(ctx, "alt_a")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "alt_a")
	require.NoError(t, err)
	assert.False(t, deleted)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestMemoryRepository_ConcurrentUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Save(ctx, &entities.Alert{ID: "alt_a"}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Update(ctx, func(alert *entities.Alert) { alert.TriggerCount++ })
		}()
	}
	wg.Wait()

	list, _ := repo.List(ctx)
	assert.Equal(t, 50, list[0].TriggerCount)
}
