package services

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"ayambil/internal/calendar"
	intconfig "ayambil/internal/config"
	"ayambil/internal/domain"
	"ayambil/internal/domain/models"
	"ayambil/internal/repositories"
	"ayambil/internal/utils"
)

var tenDigits = regexp.MustCompile(`^[0-9]{10}$`)

// BookingService owns the public submission flow and the admin submission
// CRUD. Date rules go through the same availability resolver the calendar
// screens use, so a past, unopened or full date is rejected with identical
// precedence.
type BookingService struct {
	SubmissionRepo repositories.SubmissionRepository
	CalendarRepo   repositories.CalendarRepository
	SettingsRepo   repositories.SettingsRepository
	DB             *sql.DB
	RequestID      string
	Now            func() time.Time
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) submissions() repositories.SubmissionRepository {
	if s.SubmissionRepo.DB != nil {
		return s.SubmissionRepo
	}
	return repositories.SubmissionRepository{DB: s.db()}
}

func (s BookingService) calendarDates() repositories.CalendarRepository {
	if s.CalendarRepo.DB != nil {
		return s.CalendarRepo
	}
	return repositories.CalendarRepository{DB: s.db()}
}

func (s BookingService) settings() repositories.SettingsRepository {
	if s.SettingsRepo.DB != nil {
		return s.SettingsRepo
	}
	return repositories.SettingsRepository{DB: s.db()}
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func validateSubmissionInput(in *models.SubmissionInput) domain.FieldErrors {
	in.Name = strings.TrimSpace(in.Name)
	in.UpiNumber = strings.TrimSpace(in.UpiNumber)
	in.WhatsappNumber = strings.TrimSpace(in.WhatsappNumber)
	in.AyambilShalaName = strings.TrimSpace(in.AyambilShalaName)
	in.City = strings.TrimSpace(in.City)
	in.Email = strings.TrimSpace(in.Email)
	in.BookingDate = strings.TrimSpace(in.BookingDate)

	var errs domain.FieldErrors
	if in.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "name is required"})
	}
	switch {
	case in.UpiNumber == "":
		errs = append(errs, domain.FieldError{Field: "upiNumber", Message: "UPI number is required"})
	case !tenDigits.MatchString(in.UpiNumber):
		errs = append(errs, domain.FieldError{Field: "upiNumber", Message: "UPI number must be 10 digits"})
	}
	switch {
	case in.WhatsappNumber == "":
		errs = append(errs, domain.FieldError{Field: "whatsappNumber", Message: "WhatsApp number is required"})
	case !tenDigits.MatchString(in.WhatsappNumber):
		errs = append(errs, domain.FieldError{Field: "whatsappNumber", Message: "WhatsApp number must be 10 digits"})
	}
	if in.AyambilShalaName == "" {
		errs = append(errs, domain.FieldError{Field: "ayambilShalaName", Message: "ayambil shala name is required"})
	}
	if in.City == "" {
		errs = append(errs, domain.FieldError{Field: "city", Message: "city is required"})
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "email is not valid"})
	}
	if in.BookingDate == "" {
		errs = append(errs, domain.FieldError{Field: "bookingDate", Message: "booking date is required"})
	} else if _, err := calendar.ParseISO(in.BookingDate); err != nil {
		errs = append(errs, domain.FieldError{Field: "bookingDate", Message: "booking date must be YYYY-MM-DD"})
	}
	return errs
}

// Create validates the form, re-resolves the date's availability and inserts
// the submission. The capacity counts and the insert share one transaction so
// two concurrent submissions cannot both squeeze under the cap.
func (s BookingService) Create(in models.SubmissionInput, ip string) (models.Submission, error) {
	var out models.Submission

	if errs := validateSubmissionInput(&in); len(errs) > 0 {
		return out, errs
	}

	day, err := calendar.ParseISO(in.BookingDate)
	if err != nil {
		return out, domain.FieldErrors{{Field: "bookingDate", Message: "booking date must be YYYY-MM-DD"}}
	}

	cfg, err := s.settings().Get()
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	open, err := s.calendarDates().OpenSet(in.BookingDate, in.BookingDate)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	dayCount, err := s.submissions().CountByDateTx(tx, in.BookingDate)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}

	snap := calendar.Snapshot{
		Open:   open,
		Counts: map[string]int{in.BookingDate: dayCount},
		Cap:    cfg.MaxBookingsPerDay,
	}
	switch snap.Classify(day.Day(), int(day.Month())-1, day.Year(), nil, s.now()) {
	case calendar.StatusPast:
		return out, domain.FieldErrors{{Field: "bookingDate", Message: "booking date is in the past"}}
	case calendar.StatusNotOpen:
		return out, domain.ConflictError{Resource: "date", Msg: "date is not open for booking"}
	case calendar.StatusFull:
		return out, domain.ConflictError{Resource: "date", Msg: "date is fully booked"}
	}

	monthCount, err := s.submissions().CountByMonthTx(tx, in.BookingDate)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	if monthCount >= cfg.MaxBookingsPerMonth {
		return out, domain.ConflictError{Resource: "date", Msg: "monthly booking limit reached"}
	}

	id, err := s.submissions().CreateTx(tx, in, ip)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return out, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("id=%d date=%s", id, in.BookingDate))

	now := s.now()
	return models.Submission{
		ID:               id,
		Name:             in.Name,
		UpiNumber:        in.UpiNumber,
		WhatsappNumber:   in.WhatsappNumber,
		AyambilShalaName: in.AyambilShalaName,
		City:             in.City,
		Email:            in.Email,
		BookingDate:      in.BookingDate,
		Status:           models.StatusPending,
		IPAddress:        ip,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (s BookingService) Get(id int64) (models.Submission, error) {
	if id <= 0 {
		return models.Submission{}, domain.ValidationError{Field: "id", Msg: "id must be positive"}
	}
	sub, err := s.submissions().GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return sub, domain.NotFoundError{Resource: "submission", Err: err}
	}
	if err != nil {
		return sub, domain.InternalError{Err: err}
	}
	return sub, nil
}

func (s BookingService) List(f repositories.SubmissionFilter) ([]models.Submission, int, error) {
	if f.Date != "" {
		if _, err := calendar.ParseISO(f.Date); err != nil {
			return nil, 0, domain.ValidationError{Field: "date", Msg: "date must be YYYY-MM-DD"}
		}
	}
	list, total, err := s.submissions().List(f)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	return list, total, nil
}

func (s BookingService) Search(q string) ([]models.Submission, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, domain.ValidationError{Field: "q", Msg: "query is required"}
	}
	list, err := s.submissions().Search(q, 50)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (s BookingService) Update(id int64, upd models.SubmissionUpdate) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id must be positive"}
	}
	if upd.Status != nil {
		switch *upd.Status {
		case models.StatusPending, models.StatusConfirmed, models.StatusCancelled:
		default:
			return domain.ValidationError{Field: "status", Msg: "unknown status"}
		}
	}
	if upd.BookingDate != nil {
		if _, err := calendar.ParseISO(*upd.BookingDate); err != nil {
			return domain.ValidationError{Field: "bookingDate", Msg: "booking date must be YYYY-MM-DD"}
		}
	}
	err := s.submissions().Update(id, upd)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "submission", Err: err}
	}
	if err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "update", fmt.Sprintf("id=%d", id))
	return nil
}

func (s BookingService) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id must be positive"}
	}
	err := s.submissions().Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "submission", Err: err}
	}
	if err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "delete", fmt.Sprintf("id=%d", id))
	return nil
}

func (s BookingService) Stats() (models.SubmissionStats, error) {
	stats, err := s.submissions().Stats(s.now())
	if err != nil {
		return stats, domain.InternalError{Err: err}
	}
	return stats, nil
}
