package services

import (
	"database/sql"
	"fmt"
	"time"

	"ayambil/internal/calendar"
	intconfig "ayambil/internal/config"
	"ayambil/internal/domain"
	"ayambil/internal/domain/models"
	"ayambil/internal/repositories"
	"ayambil/internal/utils"
)

// CalendarService serves date statuses and booking counts to the calendar
// screens and applies admin status writes, single or bulk.
type CalendarService struct {
	CalendarRepo   repositories.CalendarRepository
	SubmissionRepo repositories.SubmissionRepository
	SettingsRepo   repositories.SettingsRepository
	DB             *sql.DB
	RequestID      string
	Now            func() time.Time
}

func (s CalendarService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s CalendarService) dates() repositories.CalendarRepository {
	if s.CalendarRepo.DB != nil {
		return s.CalendarRepo
	}
	return repositories.CalendarRepository{DB: s.db()}
}

func (s CalendarService) submissions() repositories.SubmissionRepository {
	if s.SubmissionRepo.DB != nil {
		return s.SubmissionRepo
	}
	return repositories.SubmissionRepository{DB: s.db()}
}

func (s CalendarService) settings() repositories.SettingsRepository {
	if s.SettingsRepo.DB != nil {
		return s.SettingsRepo
	}
	return repositories.SettingsRepository{DB: s.db()}
}

func (s CalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func validRange(start, end string) error {
	if _, err := calendar.ParseISO(start); err != nil {
		return domain.ValidationError{Field: "startDate", Msg: "must be YYYY-MM-DD"}
	}
	if _, err := calendar.ParseISO(end); err != nil {
		return domain.ValidationError{Field: "endDate", Msg: "must be YYYY-MM-DD"}
	}
	return nil
}

// RangeStatuses lists stored date statuses for [start, end].
func (s CalendarService) RangeStatuses(start, end string) ([]models.DateStatus, error) {
	if err := validRange(start, end); err != nil {
		return nil, err
	}
	list, err := s.dates().ListRange(start, end)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// CountsWithCap returns per-date booking counts plus the per-day cap, the
// payload the booking screen combines into its availability snapshot.
func (s CalendarService) CountsWithCap(start, end string) (map[string]int, int, error) {
	if err := validRange(start, end); err != nil {
		return nil, 0, err
	}
	counts, err := s.submissions().CountsInRange(start, end)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	cfg, err := s.settings().Get()
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	return counts, cfg.MaxBookingsPerDay, nil
}

// SetStatus applies one date's open/closed flag. Past dates stay immutable.
func (s CalendarService) SetStatus(date, status string) error {
	if _, err := calendar.ParseISO(date); err != nil {
		return domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD"}
	}
	if status != models.DateOpen && status != models.DateClosed {
		return domain.ValidationError{Field: "status", Msg: "status must be open or closed"}
	}
	if calendar.IsPast(date, s.now()) {
		return domain.ValidationError{Field: "date", Msg: "cannot change a past date"}
	}
	if err := s.dates().SetStatus(date, status); err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "calendar", "set_status", fmt.Sprintf("date=%s status=%s", date, status))
	return nil
}

// BulkApply sets status over [start, end] in one transaction, so a failing
// write leaves no half-applied range behind.
func (s CalendarService) BulkApply(start, end, status string) error {
	if err := validRange(start, end); err != nil {
		return err
	}
	if status != models.DateOpen && status != models.DateClosed {
		return domain.ValidationError{Field: "status", Msg: "status must be open or closed"}
	}
	if calendar.IsPast(start, s.now()) && calendar.IsPast(end, s.now()) {
		return domain.ValidationError{Field: "startDate", Msg: "range is entirely in the past"}
	}
	if err := s.dates().BulkSetStatus(start, end, status); err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "calendar", "bulk_apply",
		fmt.Sprintf("start=%s end=%s status=%s", start, end, status))
	return nil
}

// CheckDate classifies one date server-side for the public check endpoint.
func (s CalendarService) CheckDate(date string) (calendar.Status, int, error) {
	day, err := calendar.ParseISO(date)
	if err != nil {
		return calendar.StatusNone, 0, domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD"}
	}

	open, err := s.dates().OpenSet(date, date)
	if err != nil {
		return calendar.StatusNone, 0, domain.InternalError{Err: err}
	}
	counts, err := s.submissions().CountsInRange(date, date)
	if err != nil {
		return calendar.StatusNone, 0, domain.InternalError{Err: err}
	}
	cfg, err := s.settings().Get()
	if err != nil {
		return calendar.StatusNone, 0, domain.InternalError{Err: err}
	}

	snap := calendar.Snapshot{Open: open, Counts: counts, Cap: cfg.MaxBookingsPerDay}
	st := snap.Classify(day.Day(), int(day.Month())-1, day.Year(), nil, s.now())
	return st, snap.Remaining(date), nil
}
