package domain

import "time"

// Testimonial is a client quote shown on the public site. Only entries with
// IsActive set appear in the public feed.
type Testimonial struct {
	ID        string
	Name      string
	Role      string
	Company   string
	Content   string
	Rating    int
	Image     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subscription is one newsletter signup row in the external sheet.
type Subscription struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Date   string `json:"date"`
	Status string `json:"status"`
}
