package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"ayambil/internal/domain"
	"ayambil/internal/domain/models"
	"ayambil/internal/repositories"
)

func testNow() time.Time {
	return time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
}

func validInput() models.SubmissionInput {
	return models.SubmissionInput{
		Name:             "Tester",
		UpiNumber:        "9876543210",
		WhatsappNumber:   "9123456780",
		AyambilShalaName: "Shree Shala",
		City:             "Ahmedabad",
		Email:            "tester@example.com",
		BookingDate:      "2025-06-20",
	}
}

func TestBookingCreateHappyPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("system_settings").
		WillReturnRows(sqlmock.NewRows([]string{"max_bookings_per_day", "max_bookings_per_month"}).AddRow(3, 1000))
	mock.ExpectQuery("calendar_dates").WithArgs("2025-06-20", "2025-06-20").
		WillReturnRows(sqlmock.NewRows([]string{"date", "status"}).AddRow("2025-06-20", "open"))
	mock.ExpectBegin()
	mock.ExpectQuery("WHERE booking_date = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("YEAR\\(booking_date\\)").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectExec("INSERT INTO submissions").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	svc := BookingService{
		SubmissionRepo: repositories.SubmissionRepository{DB: db},
		CalendarRepo:   repositories.CalendarRepository{DB: db},
		SettingsRepo:   repositories.SettingsRepository{DB: db},
		DB:             db,
		Now:            testNow,
	}

	sub, err := svc.Create(validInput(), "127.0.0.1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if sub.ID != 42 {
		t.Fatalf("expected id 42, got %d", sub.ID)
	}
	if sub.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %q", sub.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateRejectsFullDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("system_settings").
		WillReturnRows(sqlmock.NewRows([]string{"max_bookings_per_day", "max_bookings_per_month"}).AddRow(3, 1000))
	mock.ExpectQuery("calendar_dates").WithArgs("2025-06-20", "2025-06-20").
		WillReturnRows(sqlmock.NewRows([]string{"date", "status"}).AddRow("2025-06-20", "open"))
	mock.ExpectBegin()
	mock.ExpectQuery("WHERE booking_date = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectRollback()

	svc := BookingService{
		SubmissionRepo: repositories.SubmissionRepository{DB: db},
		CalendarRepo:   repositories.CalendarRepository{DB: db},
		SettingsRepo:   repositories.SettingsRepository{DB: db},
		DB:             db,
		Now:            testNow,
	}

	_, err = svc.Create(validInput(), "")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestBookingCreateRejectsClosedDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("system_settings").
		WillReturnRows(sqlmock.NewRows([]string{"max_bookings_per_day", "max_bookings_per_month"}).AddRow(3, 1000))
	// no calendar row stored means the date is closed
	mock.ExpectQuery("calendar_dates").WithArgs("2025-06-20", "2025-06-20").
		WillReturnRows(sqlmock.NewRows([]string{"date", "status"}))
	mock.ExpectBegin()
	mock.ExpectQuery("WHERE booking_date = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	svc := BookingService{
		SubmissionRepo: repositories.SubmissionRepository{DB: db},
		CalendarRepo:   repositories.CalendarRepository{DB: db},
		SettingsRepo:   repositories.SettingsRepository{DB: db},
		DB:             db,
		Now:            testNow,
	}

	_, err = svc.Create(validInput(), "")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestBookingCreateFieldValidation(t *testing.T) {
	svc := BookingService{Now: testNow}

	in := validInput()
	in.Name = ""
	in.UpiNumber = "12345"
	in.Email = "not-an-email"

	_, err := svc.Create(in, "")
	fields, ok := domain.AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}

	got := map[string]bool{}
	for _, fe := range fields {
		got[fe.Field] = true
	}
	for _, want := range []string{"name", "upiNumber", "email"} {
		if !got[want] {
			t.Fatalf("missing field error for %q in %v", want, fields)
		}
	}
}

func TestBookingCreateRejectsPastDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("system_settings").
		WillReturnRows(sqlmock.NewRows([]string{"max_bookings_per_day", "max_bookings_per_month"}).AddRow(3, 1000))
	mock.ExpectQuery("calendar_dates").WithArgs("2025-06-05", "2025-06-05").
		WillReturnRows(sqlmock.NewRows([]string{"date", "status"}).AddRow("2025-06-05", "open"))
	mock.ExpectBegin()
	mock.ExpectQuery("WHERE booking_date = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	svc := BookingService{
		SubmissionRepo: repositories.SubmissionRepository{DB: db},
		CalendarRepo:   repositories.CalendarRepository{DB: db},
		SettingsRepo:   repositories.SettingsRepository{DB: db},
		DB:             db,
		Now:            testNow,
	}

	in := validInput()
	in.BookingDate = "2025-06-05"

	_, err = svc.Create(in, "")
	fields, ok := domain.AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}
	if len(fields) != 1 || fields[0].Field != "bookingDate" {
		t.Fatalf("expected single bookingDate error, got %v", fields)
	}
}
