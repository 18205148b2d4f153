package interfaces

import (
	"context"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

// AlertRepository stores price alerts
type AlertRepository interface {
	Save(ctx context.Context, alert *entities.Alert) error
	List(ctx context.Context) ([]*entities.Alert, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Update applies fn to every stored alert under the repository lock
	Update(ctx context.Context, fn func(alert *entities.Alert)) error
}
