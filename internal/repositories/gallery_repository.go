package repositories

import (
	"database/sql"

	"ayambil/internal/domain/models"
)

// GalleryRepository stores anumodana gallery metadata rows.
type GalleryRepository struct {
	DB *sql.DB
}

func (r GalleryRepository) List() ([]models.GalleryImage, error) {
	rows, err := r.DB.Query(
		`SELECT id, title, url, sort_order, created_at
		 FROM gallery_images
		 ORDER BY sort_order, created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.GalleryImage{}
	for rows.Next() {
		var img models.GalleryImage
		if err := rows.Scan(&img.ID, &img.Title, &img.URL, &img.SortOrder, &img.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r GalleryRepository) Create(img models.GalleryImage) error {
	_, err := r.DB.Exec(
		`INSERT INTO gallery_images (id, title, url, sort_order) VALUES (?, ?, ?, ?)`,
		img.ID, img.Title, img.URL, img.SortOrder,
	)
	return err
}

func (r GalleryRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM gallery_images WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
