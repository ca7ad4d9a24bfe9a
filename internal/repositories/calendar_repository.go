package repositories

import (
	"database/sql"
	"fmt"

	"ayambil/internal/calendar"
	"ayambil/internal/domain/models"
)

// CalendarRepository persists admin-curated date statuses. Only "open" rows
// are stored; setting a date closed deletes its row, so an absent date reads
// as closed everywhere.
type CalendarRepository struct {
	DB *sql.DB
}

// ListRange returns the stored statuses for [start, end] inclusive.
func (r CalendarRepository) ListRange(start, end string) ([]models.DateStatus, error) {
	rows, err := r.DB.Query(
		`SELECT DATE_FORMAT(date, '%Y-%m-%d'), status
		 FROM calendar_dates
		 WHERE date BETWEEN ? AND ?
		 ORDER BY date`,
		start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.DateStatus{}
	for rows.Next() {
		var ds models.DateStatus
		if err := rows.Scan(&ds.Date, &ds.Status); err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	return out, rows.Err()
}

// OpenSet returns the open dates of [start, end] keyed by ISO date.
func (r CalendarRepository) OpenSet(start, end string) (map[string]bool, error) {
	list, err := r.ListRange(start, end)
	if err != nil {
		return nil, err
	}
	open := map[string]bool{}
	for _, ds := range list {
		if ds.Status == models.DateOpen {
			open[ds.Date] = true
		}
	}
	return open, nil
}

// SetStatus applies one date's status; last write wins.
func (r CalendarRepository) SetStatus(date, status string) error {
	return setStatus(r.DB, date, status)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func setStatus(ex execer, date, status string) error {
	if status == models.DateOpen {
		_, err := ex.Exec(
			`INSERT INTO calendar_dates (date, status) VALUES (?, ?)
			 ON DUPLICATE KEY UPDATE status = VALUES(status)`,
			date, status,
		)
		return err
	}
	_, err := ex.Exec(`DELETE FROM calendar_dates WHERE date = ?`, date)
	return err
}

// BulkSetStatus applies status to every date in [start, end] atomically.
func (r CalendarRepository) BulkSetStatus(start, end, status string) error {
	dates := calendar.DatesInRange(start, end)
	if dates == nil {
		return fmt.Errorf("invalid range %q..%q", start, end)
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	for _, d := range dates {
		if err := setStatus(tx, d, status); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
