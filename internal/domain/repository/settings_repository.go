package repository

import (
	"context"

	"github.com/stockify/stockify-api/internal/domain/entity"
)

// SettingsRepository defines the interface for settings data access.
// Settings are a singleton row created on first access.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Create(ctx context.Context, settings *entity.Settings) error
	Update(ctx context.Context, settings *entity.Settings) error
}
