package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"ayambil/internal/domain/models"
)

func TestSubmissionUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	status := "confirmed"

	mock.ExpectExec("UPDATE submissions SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := SubmissionRepository{DB: db}
	err = repo.Update(99, models.SubmissionUpdate{Status: &status})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmissionUpdateUnchangedRowIsNotMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	status := "confirmed"

	// MySQL reports 0 affected rows when the new value equals the old one.
	mock.ExpectExec("UPDATE submissions SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := SubmissionRepository{DB: db}
	if err := repo.Update(7, models.SubmissionUpdate{Status: &status}); err != nil {
		t.Fatalf("expected no error for unchanged row, got %v", err)
	}
}

func TestSubmissionUpdateNoFieldsIsNoOp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := SubmissionRepository{DB: db}
	if err := repo.Update(7, models.SubmissionUpdate{}); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected queries ran: %v", err)
	}
}
