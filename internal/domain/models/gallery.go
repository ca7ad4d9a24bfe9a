package models

import "time"

// GalleryImage is one anumodana gallery entry. The image itself is hosted
// elsewhere; only the metadata row lives here.
type GalleryImage struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}
