package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
)

const subscribedStatus = "Subscribed"

// NewsletterService records newsletter signups in the external subscriber
// log. The duplicate check reads the log itself; there is no local cache.
type NewsletterService struct {
	log    ports.SubscriberLog
	logger zerolog.Logger
	now    func() time.Time
}

func NewNewsletterService(log ports.SubscriberLog, logger zerolog.Logger) *NewsletterService {
	return &NewsletterService{log: log, logger: logger, now: time.Now}
}

// Subscribe appends a signup row. An email already present in the log
// returns domain.ErrAlreadySubscribed.
func (s *NewsletterService) Subscribe(ctx context.Context, name, email string) error {
	exists, err := s.log.Exists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadySubscribed
	}

	sub := domain.Subscription{
		Name:   name,
		Email:  email,
		Date:   s.now().UTC().Format("2006-01-02"),
		Status: subscribedStatus,
	}
	if err := s.log.Append(ctx, sub); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("newsletter subscription added")
	return nil
}

func (s *NewsletterService) Subscriptions(ctx context.Context) ([]domain.Subscription, error) {
	return s.log.List(ctx)
}
