package repositories

import (
	"database/sql"
	"strings"
	"time"

	intdb "ayambil/internal/db"
	"ayambil/internal/domain/models"
)

// SubmissionRepository wraps DB access for booking submissions.
type SubmissionRepository struct {
	DB *sql.DB
}

// SubmissionFilter narrows admin listings.
type SubmissionFilter struct {
	Status string
	City   string
	Date   string // ISO booking date
	Page   int
	Limit  int
}

const submissionColumns = `id, name, upi_number, whatsapp_number, ayambil_shala_name, city,
	COALESCE(email, ''), DATE_FORMAT(booking_date, '%Y-%m-%d'), status, COALESCE(ip_address, ''), created_at, updated_at`

func scanSubmission(row interface{ Scan(...any) error }) (models.Submission, error) {
	var s models.Submission
	err := row.Scan(&s.ID, &s.Name, &s.UpiNumber, &s.WhatsappNumber, &s.AyambilShalaName,
		&s.City, &s.Email, &s.BookingDate, &s.Status, &s.IPAddress, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// CreateTx inserts a submission inside the caller's transaction so the
// capacity check and the insert see the same state.
func (r SubmissionRepository) CreateTx(tx *sql.Tx, in models.SubmissionInput, ip string) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO submissions
			(name, upi_number, whatsapp_number, ayambil_shala_name, city, email, booking_date, status, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.UpiNumber, in.WhatsappNumber, in.AyambilShalaName, in.City,
		intdb.NullIfEmpty(in.Email), in.BookingDate, models.StatusPending, intdb.NullIfEmpty(ip),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r SubmissionRepository) GetByID(id int64) (models.Submission, error) {
	row := r.DB.QueryRow(`SELECT `+submissionColumns+` FROM submissions WHERE id = ?`, id)
	return scanSubmission(row)
}

// List returns one page plus the unpaginated total for the filter.
func (r SubmissionRepository) List(f SubmissionFilter) ([]models.Submission, int, error) {
	where := []string{"1=1"}
	args := []any{}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if f.City != "" {
		where = append(where, "city = ?")
		args = append(args, f.City)
	}
	if f.Date != "" {
		where = append(where, "booking_date = ?")
		args = append(args, f.Date)
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM submissions WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	offset := (f.Page - 1) * f.Limit

	rows, err := r.DB.Query(
		`SELECT `+submissionColumns+` FROM submissions WHERE `+cond+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		append(args, f.Limit, offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

// Search matches name, city or whatsapp number.
func (r SubmissionRepository) Search(q string, limit int) ([]models.Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	like := "%" + q + "%"
	rows, err := r.DB.Query(
		`SELECT `+submissionColumns+` FROM submissions
		 WHERE name LIKE ? OR city LIKE ? OR whatsapp_number LIKE ?
		 ORDER BY created_at DESC LIMIT ?`,
		like, like, like, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update patches only the fields present in upd.
func (r SubmissionRepository) Update(id int64, upd models.SubmissionUpdate) error {
	cols := []string{}
	args := []any{}
	add := func(col string, v *string) {
		if v != nil {
			cols = append(cols, col+" = ?")
			args = append(args, *v)
		}
	}
	add("name", upd.Name)
	add("upi_number", upd.UpiNumber)
	add("whatsapp_number", upd.WhatsappNumber)
	add("ayambil_shala_name", upd.AyambilShalaName)
	add("city", upd.City)
	add("email", upd.Email)
	add("booking_date", upd.BookingDate)
	add("status", upd.Status)
	if len(cols) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := r.DB.Exec(`UPDATE submissions SET `+strings.Join(cols, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// distinguish "not found" from "unchanged"
		var exists int
		if err := r.DB.QueryRow(`SELECT COUNT(*) FROM submissions WHERE id = ?`, id).Scan(&exists); err == nil && exists == 0 {
			return sql.ErrNoRows
		}
	}
	return nil
}

func (r SubmissionRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM submissions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountByDateTx counts active bookings on one date inside a transaction.
func (r SubmissionRepository) CountByDateTx(tx *sql.Tx, date string) (int, error) {
	var n int
	err := tx.QueryRow(
		`SELECT COUNT(*) FROM submissions WHERE booking_date = ? AND status <> ?`,
		date, models.StatusCancelled,
	).Scan(&n)
	return n, err
}

// CountByMonthTx counts active bookings whose date falls in the month of
// the given ISO date.
func (r SubmissionRepository) CountByMonthTx(tx *sql.Tx, date string) (int, error) {
	var n int
	err := tx.QueryRow(
		`SELECT COUNT(*) FROM submissions
		 WHERE YEAR(booking_date) = YEAR(?) AND MONTH(booking_date) = MONTH(?) AND status <> ?`,
		date, date, models.StatusCancelled,
	).Scan(&n)
	return n, err
}

// CountsInRange returns per-date active booking counts for [start, end].
func (r SubmissionRepository) CountsInRange(start, end string) (map[string]int, error) {
	rows, err := r.DB.Query(
		`SELECT DATE_FORMAT(booking_date, '%Y-%m-%d'), COUNT(*)
		 FROM submissions
		 WHERE booking_date BETWEEN ? AND ? AND status <> ?
		 GROUP BY booking_date`,
		start, end, models.StatusCancelled,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var date string
		var n int
		if err := rows.Scan(&date, &n); err != nil {
			return nil, err
		}
		counts[date] = n
	}
	return counts, rows.Err()
}

// Stats aggregates the admin dashboard counters in one pass per bucket.
func (r SubmissionRepository) Stats(now time.Time) (models.SubmissionStats, error) {
	stats := models.SubmissionStats{ByStatus: map[string]int{}}

	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM submissions`).Scan(&stats.Total); err != nil {
		return stats, err
	}

	today := now.Format("2006-01-02")
	if err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM submissions WHERE DATE(created_at) = ?`, today,
	).Scan(&stats.Today); err != nil {
		return stats, err
	}

	if err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM submissions WHERE YEAR(created_at) = ? AND MONTH(created_at) = ?`,
		now.Year(), int(now.Month()),
	).Scan(&stats.ThisMonth); err != nil {
		return stats, err
	}

	rows, err := r.DB.Query(`SELECT status, COUNT(*) FROM submissions GROUP BY status`)
	if err != nil {
		return stats, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return stats, err
		}
		stats.ByStatus[status] = n
	}
	return stats, rows.Err()
}
