package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/infinitechange/coaching-site/internal/core/ports"
)

// ContactService delivers the two emails a contact submission triggers: a
// notification to the site owner and an acknowledgment to the visitor. Both
// sends are always attempted; if either fails the submission is reported as
// failed with no partial-success state, and nothing is retried.
type ContactService struct {
	mailer ports.Mailer
	owner  string
	logger zerolog.Logger
}

func NewContactService(mailer ports.Mailer, owner string, logger zerolog.Logger) *ContactService {
	return &ContactService{mailer: mailer, owner: owner, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) error {
	ownerErr := s.mailer.Send(ctx, s.owner,
		"New Contact Form Submission",
		ownerText(in), ownerHTML(in))
	if ownerErr != nil {
		s.logger.Error().Err(ownerErr).Str("email", in.Email).Msg("owner notification failed")
	}

	ackErr := s.mailer.Send(ctx, in.Email,
		"Thank you for contacting us - Infinite Change",
		ackText(in), ackHTML(in))
	if ackErr != nil {
		s.logger.Error().Err(ackErr).Str("email", in.Email).Msg("acknowledgment mail failed")
	}

	if ownerErr != nil || ackErr != nil {
		return fmt.Errorf("contact mail delivery: %w", errors.Join(ownerErr, ackErr))
	}

	s.logger.Info().Str("email", in.Email).Msg("contact submission delivered")
	return nil
}

func ownerText(in ports.ContactInput) string {
	return fmt.Sprintf(`New Contact Form Submission:

Name: %s
Email: %s
Phone: %s
Message: %s

Please respond to this inquiry as soon as possible.
`, in.Name, in.Email, in.Phone, in.Message)
}

func ownerHTML(in ports.ContactInput) string {
	return fmt.Sprintf(`<div>
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Phone:</strong> %s</p>
  <p><strong>Message:</strong></p>
  <p>%s</p>
  <p>Please respond to this inquiry as soon as possible.</p>
</div>`, in.Name, in.Email, in.Phone, in.Message)
}

func ackText(in ports.ContactInput) string {
	return fmt.Sprintf(`Hi %s,

Thank you for contacting us! We've received your message and will get back to you within 24 hours.

Your message:
%s

We appreciate your interest and look forward to connecting with you soon.

Best regards,
The Infinite Change Team
`, in.Name, in.Message)
}

func ackHTML(in ports.ContactInput) string {
	return fmt.Sprintf(`<div>
  <h2>Thank You for Contacting Us!</h2>
  <p>Hi %s,</p>
  <p>Thank you for contacting us! We've received your message and will get back to you within 24 hours.</p>
  <p><strong>Your message:</strong></p>
  <p>%s</p>
  <p>We appreciate your interest and look forward to connecting with you soon.</p>
  <p>Best regards,<br>The Infinite Change Team</p>
</div>`, in.Name, in.Message)
}
