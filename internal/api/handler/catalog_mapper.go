package handler

import (
	"github.com/infinitechange/coaching-site/internal/core/domain"
)

// Mapping between transport types and the domain catalogue record. The
// request shapes differ per kind; the response type is shared, with the
// booking link surfaced under the field name each catalogue historically
// used (calendlyLink for individual services, serviceLink for corporate).

func (r coreServiceRequest) toDomain(kind domain.ServiceKind) *domain.Service {
	return &domain.Service{
		Kind:        kind,
		Title:       r.Title,
		Description: r.Description,
		Duration:    r.Duration,
		Level:       r.Level,
		Features:    r.Features,
		BookingLink: r.CalendlyLink,
	}
}

func (r beyondWordsServiceRequest) toDomain() *domain.Service {
	return &domain.Service{
		Kind:        domain.KindBeyondWords,
		Title:       r.Title,
		Description: r.Description,
		Features:    r.Features,
		BookingLink: r.CalendlyLink,
	}
}

func (r corporateServiceRequest) toDomain() *domain.Service {
	return &domain.Service{
		Kind:        domain.KindCorporate,
		Icon:        r.Icon,
		Category:    r.Category,
		Title:       r.Title,
		Description: r.Description,
		Features:    r.Features,
		BookingLink: r.ServiceLink,
	}
}

func toServiceResponse(s *domain.Service) serviceResponse {
	resp := serviceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Duration:    s.Duration,
		Level:       s.Level,
		Icon:        s.Icon,
		Category:    s.Category,
		Features:    s.Features,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if resp.Features == nil {
		resp.Features = []string{}
	}
	if s.Kind == domain.KindCorporate {
		resp.ServiceLink = s.BookingLink
	} else {
		resp.CalendlyLink = s.BookingLink
	}
	return resp
}

func toServiceResponses(services []domain.Service) []serviceResponse {
	out := make([]serviceResponse, 0, len(services))
	for i := range services {
		out = append(out, toServiceResponse(&services[i]))
	}
	return out
}
