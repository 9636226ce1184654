package ports

import (
	"context"

	"github.com/infinitechange/coaching-site/internal/core/domain"
)

// Mailer delivers a single email. Calls are fire-and-forget from the
// caller's perspective: failures surface as errors but are never retried.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// SubscriberLog is the append-only newsletter store (a spreadsheet in
// production).
type SubscriberLog interface {
	Exists(ctx context.Context, email string) (bool, error)
	Append(ctx context.Context, sub domain.Subscription) error
	List(ctx context.Context) ([]domain.Subscription, error)
}

// ContactService handles contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) error
}

// ContactInput is a validated contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// NewsletterService handles newsletter signups.
type NewsletterService interface {
	Subscribe(ctx context.Context, name, email string) error
	Subscriptions(ctx context.Context) ([]domain.Subscription, error)
}
