package models

// DateStatus is one admin-curated calendar entry. Only "open" rows are
// stored; a date without a row is closed.
type DateStatus struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

const (
	DateOpen   = "open"
	DateClosed = "closed"
)
