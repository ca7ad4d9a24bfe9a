package models

// SystemSettings is the singleton capacity configuration.
type SystemSettings struct {
	MaxBookingsPerDay   int `json:"maxBookingsPerDay"`
	MaxBookingsPerMonth int `json:"maxBookingsPerMonth"`
}

// Defaults applied when the settings row does not exist yet.
const (
	DefaultMaxBookingsPerDay   = 3
	DefaultMaxBookingsPerMonth = 1000
)
