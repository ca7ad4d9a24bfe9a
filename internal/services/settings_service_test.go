package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"ayambil/internal/domain"
	"ayambil/internal/domain/models"
	"ayambil/internal/repositories"
)

func TestSettingsUpdateRejectsZeroCaps(t *testing.T) {
	svc := SettingsService{}

	err := svc.Update(models.SystemSettings{MaxBookingsPerDay: 0, MaxBookingsPerMonth: 100})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for day cap, got %v", err)
	}
	err = svc.Update(models.SystemSettings{MaxBookingsPerDay: 3, MaxBookingsPerMonth: 0})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for month cap, got %v", err)
	}
}

func TestSettingsUpdateUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO system_settings").
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := SettingsService{SettingsRepo: repositories.SettingsRepository{DB: db}}
	if err := svc.Update(models.SystemSettings{MaxBookingsPerDay: 5, MaxBookingsPerMonth: 500}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSettingsGetFallsBackToDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("system_settings").
		WillReturnRows(sqlmock.NewRows([]string{"max_bookings_per_day", "max_bookings_per_month"}))

	svc := SettingsService{SettingsRepo: repositories.SettingsRepository{DB: db}}
	cfg, err := svc.Get()
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if cfg.MaxBookingsPerDay != models.DefaultMaxBookingsPerDay {
		t.Fatalf("expected default day cap, got %d", cfg.MaxBookingsPerDay)
	}
	if cfg.MaxBookingsPerMonth != models.DefaultMaxBookingsPerMonth {
		t.Fatalf("expected default month cap, got %d", cfg.MaxBookingsPerMonth)
	}
}
