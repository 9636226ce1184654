package domain

import "time"

// ServiceKind discriminates the four parallel service catalogues managed by
// the admin panel.
type ServiceKind string

const (
	KindMindfulness ServiceKind = "mindfulness"
	KindCounselling ServiceKind = "counselling"
	KindBeyondWords ServiceKind = "beyond_words"
	KindCorporate   ServiceKind = "corporate"
)

// ServiceKinds lists every kind in a stable order.
var ServiceKinds = []ServiceKind{KindMindfulness, KindCounselling, KindBeyondWords, KindCorporate}

// Valid reports whether k is one of the known catalogue kinds.
func (k ServiceKind) Valid() bool {
	switch k {
	case KindMindfulness, KindCounselling, KindBeyondWords, KindCorporate:
		return true
	}
	return false
}

// Service is a single offering in one of the catalogues. Duration and Level
// are set for mindfulness/counselling entries, Icon and Category for
// corporate ones; the rest are shared. BookingLink holds the external
// scheduling URL (Calendly for individual services, a generic link for
// corporate engagements).
type Service struct {
	ID          string
	Kind        ServiceKind
	Title       string
	Description string
	Duration    string
	Level       string
	Icon        string
	Category    string
	Features    []string
	BookingLink string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
