package repositories

import (
	"database/sql"
	"errors"

	"ayambil/internal/domain/models"
)

// SettingsRepository stores the single capacity-settings row (id = 1).
type SettingsRepository struct {
	DB *sql.DB
}

// Get loads the settings, falling back to defaults when the row is missing.
func (r SettingsRepository) Get() (models.SystemSettings, error) {
	var s models.SystemSettings
	err := r.DB.QueryRow(
		`SELECT max_bookings_per_day, max_bookings_per_month FROM system_settings WHERE id = 1`,
	).Scan(&s.MaxBookingsPerDay, &s.MaxBookingsPerMonth)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SystemSettings{
			MaxBookingsPerDay:   models.DefaultMaxBookingsPerDay,
			MaxBookingsPerMonth: models.DefaultMaxBookingsPerMonth,
		}, nil
	}
	return s, err
}

// Update upserts the singleton row; last write wins.
func (r SettingsRepository) Update(s models.SystemSettings) error {
	_, err := r.DB.Exec(
		`INSERT INTO system_settings (id, max_bookings_per_day, max_bookings_per_month)
		 VALUES (1, ?, ?)
		 ON DUPLICATE KEY UPDATE
			max_bookings_per_day = VALUES(max_bookings_per_day),
			max_bookings_per_month = VALUES(max_bookings_per_month)`,
		s.MaxBookingsPerDay, s.MaxBookingsPerMonth,
	)
	return err
}
