package service

import (
	"context"

	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/repository"
)

// SettingsService handles company settings operations
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the company settings, seeding the default row if none
// exists yet.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.CompanySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.CompanySettings{
		InvoicePrefix:       "PI-",
		QuotationPrefix:     "QT-",
		CreditNotePrefix:    "CN-",
		ExpensePrefix:       "EXP-",
		Currency:            "INR",
		AutoRoundOffDefault: true,
	}
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	CompanyName         *string
	Address             *string
	Phone               *string
	Email               *string
	GSTIN               *string
	InvoicePrefix       *string
	QuotationPrefix     *string
	CreditNotePrefix    *string
	ExpensePrefix       *string
	Currency            *string
	AutoRoundOffDefault *bool
}

// UpdateSettings updates the company settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.CompanySettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		settings.CompanyName = *input.CompanyName
	}
	if input.Address != nil {
		settings.Address = input.Address
	}
	if input.Phone != nil {
		settings.Phone = input.Phone
	}
	if input.Email != nil {
		settings.Email = input.Email
	}
	if input.GSTIN != nil {
		settings.GSTIN = input.GSTIN
	}
	if input.InvoicePrefix != nil {
		settings.InvoicePrefix = *input.InvoicePrefix
	}
	if input.QuotationPrefix != nil {
		settings.QuotationPrefix = *input.QuotationPrefix
	}
	if input.CreditNotePrefix != nil {
		settings.CreditNotePrefix = *input.CreditNotePrefix
	}
	if input.ExpensePrefix != nil {
		settings.ExpensePrefix = *input.ExpensePrefix
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.AutoRoundOffDefault != nil {
		settings.AutoRoundOffDefault = *input.AutoRoundOffDefault
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
