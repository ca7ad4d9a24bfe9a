package config

import (
	"database/sql"
	"fmt"

	intdb "ayambil/internal/db"
)

var tableDDL = map[string]string{
	"submissions": `
CREATE TABLE IF NOT EXISTS submissions (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	upi_number VARCHAR(20) NOT NULL,
	whatsapp_number VARCHAR(20) NOT NULL,
	ayambil_shala_name VARCHAR(255) NOT NULL,
	city VARCHAR(255) NOT NULL,
	email VARCHAR(255) NULL,
	booking_date DATE NOT NULL,
	status VARCHAR(30) NOT NULL DEFAULT 'pending',
	ip_address VARCHAR(64) NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_booking_date (booking_date),
	KEY idx_status (status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	"calendar_dates": `
CREATE TABLE IF NOT EXISTS calendar_dates (
	date DATE PRIMARY KEY,
	status VARCHAR(10) NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	"system_settings": `
CREATE TABLE IF NOT EXISTS system_settings (
	id TINYINT PRIMARY KEY,
	max_bookings_per_day INT NOT NULL,
	max_bookings_per_month INT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	"gallery_images": `
CREATE TABLE IF NOT EXISTS gallery_images (
	id CHAR(36) PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	url VARCHAR(1024) NOT NULL,
	sort_order INT NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	"admin_users": `
CREATE TABLE IF NOT EXISTS admin_users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(30) NOT NULL DEFAULT 'admin',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

// EnsureSchema creates any missing tables at startup.
func EnsureSchema(db *sql.DB) error {
	for table, ddl := range tableDDL {
		if intdb.HasTable(db, table) {
			continue
		}
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
	}
	return nil
}
