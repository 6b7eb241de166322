package service

import (
	"context"
	"strings"

	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/domain/repository"
)

// SettingsService handles the store settings printed on tickets
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the store settings, creating defaults if none exist
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		defaults := entity.StoreSettings{}.WithFallbacks()
		settings = &defaults
		if err := s.settingsRepo.Save(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings. Nil
// fields are left unchanged.
type UpdateSettingsInput struct {
	Name           *string
	Phone          *string
	TicketTitle    *string
	TicketSubtitle *string
	FooterMessage  *string
	PrintUnitPrice *bool
}

// UpdateSettings updates the store settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	setText(&settings.Name, input.Name)
	setText(&settings.Phone, input.Phone)
	setText(&settings.TicketTitle, input.TicketTitle)
	setText(&settings.TicketSubtitle, input.TicketSubtitle)
	setText(&settings.FooterMessage, input.FooterMessage)
	if input.PrintUnitPrice != nil {
		settings.PrintUnitPrice = *input.PrintUnitPrice
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func setText(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
