package services

import (
	"database/sql"
	"fmt"

	intconfig "ayambil/internal/config"
	"ayambil/internal/domain"
	"ayambil/internal/domain/models"
	"ayambil/internal/repositories"
	"ayambil/internal/utils"
)

// SettingsService reads and updates the capacity settings.
type SettingsService struct {
	SettingsRepo repositories.SettingsRepository
	DB           *sql.DB
	RequestID    string
}

func (s SettingsService) repo() repositories.SettingsRepository {
	if s.SettingsRepo.DB != nil {
		return s.SettingsRepo
	}
	db := s.DB
	if db == nil {
		db = intconfig.DB
	}
	return repositories.SettingsRepository{DB: db}
}

func (s SettingsService) Get() (models.SystemSettings, error) {
	cfg, err := s.repo().Get()
	if err != nil {
		return cfg, domain.InternalError{Err: err}
	}
	return cfg, nil
}

func (s SettingsService) Update(cfg models.SystemSettings) error {
	if cfg.MaxBookingsPerDay < 1 {
		return domain.ValidationError{Field: "maxBookingsPerDay", Msg: "must be at least 1"}
	}
	if cfg.MaxBookingsPerMonth < 1 {
		return domain.ValidationError{Field: "maxBookingsPerMonth", Msg: "must be at least 1"}
	}
	if err := s.repo().Update(cfg); err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "settings", "update",
		fmt.Sprintf("per_day=%d per_month=%d", cfg.MaxBookingsPerDay, cfg.MaxBookingsPerMonth))
	return nil
}
