package repository

import (
	"context"

	"github.com/sangkips/salgaderia-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the single store settings row
type SettingsRepository interface {
	// Get returns the stored settings, or nil when none were saved yet
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Save(ctx context.Context, settings *entity.StoreSettings) error
}
