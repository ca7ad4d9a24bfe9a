package models

import "time"

// Submission is one booking request for a single date.
type Submission struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	UpiNumber        string    `json:"upiNumber"`
	WhatsappNumber   string    `json:"whatsappNumber"`
	AyambilShalaName string    `json:"ayambilShalaName"`
	City             string    `json:"city"`
	Email            string    `json:"email,omitempty"`
	BookingDate      string    `json:"bookingDate"`
	Status           string    `json:"status"`
	IPAddress        string    `json:"ipAddress,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// SubmissionInput is the public booking form payload.
type SubmissionInput struct {
	Name             string `json:"name"`
	UpiNumber        string `json:"upiNumber"`
	WhatsappNumber   string `json:"whatsappNumber"`
	AyambilShalaName string `json:"ayambilShalaName"`
	City             string `json:"city"`
	Email            string `json:"email"`
	BookingDate      string `json:"bookingDate"`
}

// SubmissionUpdate carries the admin-editable fields; nil means untouched.
type SubmissionUpdate struct {
	Name             *string `json:"name"`
	UpiNumber        *string `json:"upiNumber"`
	WhatsappNumber   *string `json:"whatsappNumber"`
	AyambilShalaName *string `json:"ayambilShalaName"`
	City             *string `json:"city"`
	Email            *string `json:"email"`
	BookingDate      *string `json:"bookingDate"`
	Status           *string `json:"status"`
}

// SubmissionStats backs the admin dashboard counters.
type SubmissionStats struct {
	Total     int            `json:"total"`
	Today     int            `json:"today"`
	ThisMonth int            `json:"thisMonth"`
	ByStatus  map[string]int `json:"byStatus"`
}

// Submission statuses. Cancelled rows do not count toward date capacity.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)
