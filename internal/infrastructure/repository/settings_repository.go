package repository

import (
	"context"
	"errors"

	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	domainRepo "github.com/kiranps/tradebooks-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the singleton company settings row
func (r *settingsRepository) Get(ctx context.Context) (*entity.CompanySettings, error) {
	var settings entity.CompanySettings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

// Create creates the company settings row
func (r *settingsRepository) Create(ctx context.Context, settings *entity.CompanySettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

// Update updates the company settings row
func (r *settingsRepository) Update(ctx context.Context, settings *entity.CompanySettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
