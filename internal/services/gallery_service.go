package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	intconfig "ayambil/internal/config"
	"ayambil/internal/domain"
	"ayambil/internal/domain/models"
	"ayambil/internal/repositories"
	"ayambil/internal/utils"
)

// GalleryService manages anumodana gallery metadata.
type GalleryService struct {
	GalleryRepo repositories.GalleryRepository
	DB          *sql.DB
	RequestID   string
}

func (s GalleryService) repo() repositories.GalleryRepository {
	if s.GalleryRepo.DB != nil {
		return s.GalleryRepo
	}
	db := s.DB
	if db == nil {
		db = intconfig.DB
	}
	return repositories.GalleryRepository{DB: db}
}

func (s GalleryService) List() ([]models.GalleryImage, error) {
	list, err := s.repo().List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (s GalleryService) Create(title, url string, sortOrder int) (models.GalleryImage, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	if title == "" {
		return models.GalleryImage{}, domain.ValidationError{Field: "title", Msg: "title is required"}
	}
	if url == "" {
		return models.GalleryImage{}, domain.ValidationError{Field: "url", Msg: "url is required"}
	}

	img := models.GalleryImage{
		ID:        uuid.NewString(),
		Title:     title,
		URL:       url,
		SortOrder: sortOrder,
	}
	if err := s.repo().Create(img); err != nil {
		return models.GalleryImage{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "gallery", "create", "id="+img.ID)
	return img, nil
}

func (s GalleryService) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationError{Field: "id", Msg: "id is required"}
	}
	err := s.repo().Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "image", Err: err}
	}
	if err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "gallery", "delete", "id="+id)
	return nil
}
