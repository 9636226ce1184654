package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
)

const (
	appendRange = "Sheet1!A:D"
	emailRange  = "Sheet1!B:B"
	listRange   = "Sheet1!A:D"
)

// ErrNotConfigured is returned by New when the service account credentials
// or spreadsheet id are missing.
var ErrNotConfigured = errors.New("sheets: missing credentials or spreadsheet id")

// SubscriberLog stores newsletter signups in a Google spreadsheet, one row
// per subscriber.
type SubscriberLog struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// New authenticates a service account against the Sheets API. The private
// key may carry literal "\n" sequences when injected through the
// environment; they are unescaped here.
func New(ctx context.Context, clientEmail, privateKey, spreadsheetID string) (*SubscriberLog, error) {
	if clientEmail == "" || privateKey == "" || spreadsheetID == "" {
		return nil, ErrNotConfigured
	}

	conf := &jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(strings.ReplaceAll(privateKey, `\n`, "\n")),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	return &SubscriberLog{svc: svc, spreadsheetID: spreadsheetID}, nil
}

var _ ports.SubscriberLog = (*SubscriberLog)(nil)

// Exists reports whether email already appears in the subscriber column.
// Matching is case-insensitive.
func (l *SubscriberLog) Exists(ctx context.Context, email string) (bool, error) {
	resp, err := l.svc.Spreadsheets.Values.Get(l.spreadsheetID, emailRange).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("read subscriber column: %w", err)
	}

	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		cell, ok := row[0].(string)
		if ok && strings.EqualFold(strings.TrimSpace(cell), email) {
			return true, nil
		}
	}
	return false, nil
}

// Append adds one subscriber row to the sheet.
func (l *SubscriberLog) Append(ctx context.Context, sub domain.Subscription) error {
	values := &sheetsapi.ValueRange{
		Values: [][]interface{}{{sub.Name, sub.Email, sub.Date, sub.Status}},
	}

	_, err := l.svc.Spreadsheets.Values.Append(l.spreadsheetID, appendRange, values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append subscriber row: %w", err)
	}
	return nil
}

// List returns every subscriber row, skipping the header if present.
func (l *SubscriberLog) List(ctx context.Context) ([]domain.Subscription, error) {
	resp, err := l.svc.Spreadsheets.Values.Get(l.spreadsheetID, listRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read subscriber rows: %w", err)
	}

	subs := make([]domain.Subscription, 0, len(resp.Values))
	for i, row := range resp.Values {
		sub := toSubscription(row)
		if i == 0 && strings.EqualFold(sub.Email, "email") {
			continue
		}
		if sub.Email == "" {
			continue
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func toSubscription(row []interface{}) domain.Subscription {
	var sub domain.Subscription
	get := func(i int) string {
		if i >= len(row) {
			return ""
		}
		s, _ := row[i].(string)
		return strings.TrimSpace(s)
	}
	sub.Name = get(0)
	sub.Email = get(1)
	sub.Date = get(2)
	sub.Status = get(3)
	return sub
}
