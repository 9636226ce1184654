package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse carries field-level detail for malformed payloads.
type validationResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// messageResponse is the envelope for side-effect-only successes.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
	Image string `json:"image,omitempty"`
}

type loginResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type meResponse struct {
	User userResponse `json:"user"`
}

// --- Catalog ---

// coreServiceRequest is the input shape shared by the mindfulness and
// counselling catalogues.
type coreServiceRequest struct {
	Title        string   `json:"title"        validate:"required"`
	Description  string   `json:"description"  validate:"required"`
	Duration     string   `json:"duration"     validate:"required"`
	Level        string   `json:"level"        validate:"required"`
	Features     []string `json:"features"`
	CalendlyLink string   `json:"calendlyLink"`
}

type beyondWordsServiceRequest struct {
	Title        string   `json:"title"       validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Features     []string `json:"features"`
	CalendlyLink string   `json:"calendlyLink"`
}

type corporateServiceRequest struct {
	Icon        string   `json:"icon"        validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Features    []string `json:"features"`
	ServiceLink string   `json:"serviceLink"`
}

// serviceResponse is the JSON shape for a catalogue entry. Kind-specific
// fields are omitted when empty, so every catalogue serialises cleanly from
// the same type.
type serviceResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     string    `json:"duration,omitempty"`
	Level        string    `json:"level,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	Category     string    `json:"category,omitempty"`
	Features     []string  `json:"features"`
	CalendlyLink string    `json:"calendlyLink,omitempty"`
	ServiceLink  string    `json:"serviceLink,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// --- Testimonials ---

type testimonialRequest struct {
	Name     string `json:"name"    validate:"required"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Content  string `json:"content" validate:"required"`
	Rating   *int   `json:"rating"  validate:"omitempty,min=1,max=5"`
	Image    string `json:"image"`
	IsActive *bool  `json:"isActive"`
}

type testimonialResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Company   string    `json:"company,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Image     string    `json:"image,omitempty"`
	IsActive  *bool     `json:"isActive,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// --- Contact / Newsletter ---

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Message string `json:"message" validate:"required"`
}

type newsletterRequest struct {
	Name  string `json:"name"  validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

// countsResponse mirrors the original dashboard payload.
type countsResponse struct {
	MindfulnessServices int64 `json:"mindfulnessServices"`
	CounsellingServices int64 `json:"counsellingServices"`
	BeyondWordsServices int64 `json:"beyondWordsServices"`
	CorporateServices   int64 `json:"corporateServices"`
}
