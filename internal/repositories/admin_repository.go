package repositories

import (
	"database/sql"

	"ayambil/internal/domain/models"
)

// AdminRepository reads panel accounts.
type AdminRepository struct {
	DB *sql.DB
}

func (r AdminRepository) GetByUsername(username string) (models.AdminUser, error) {
	var u models.AdminUser
	err := r.DB.QueryRow(
		`SELECT id, username, password_hash, role, created_at
		 FROM admin_users WHERE username = ?`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}
