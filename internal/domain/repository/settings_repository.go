package repository

import (
	"context"

	"github.com/kiranps/tradebooks-api/internal/domain/entity"
)

// SettingsRepository defines the interface for company settings data access
type SettingsRepository interface {
	// Get returns the singleton settings row, or nil if none has been seeded
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Create(ctx context.Context, settings *entity.CompanySettings) error
	Update(ctx context.Context, settings *entity.CompanySettings) error
}
