package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/infinitechange/coaching-site/internal/core/ports"
)

type sentMail struct {
	to      string
	subject string
	text    string
	html    string
}

type stubMailer struct {
	sent    []sentMail
	failFor map[string]error
}

func (m *stubMailer) Send(_ context.Context, to, subject, text, html string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, text: text, html: html})
	if err, ok := m.failFor[to]; ok {
		return err
	}
	return nil
}

func testInput() ports.ContactInput {
	return ports.ContactInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "+44 1234 567890",
		Message: "I would like to book a session.",
	}
}

func TestContactService_Submit_Success(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewContactService(mailer, "owner@example.com", zerolog.Nop())

	if err := svc.Submit(context.Background(), testInput()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 mails, got %d", len(mailer.sent))
	}

	owner := mailer.sent[0]
	if owner.to != "owner@example.com" {
		t.Fatalf("owner mail sent to %s", owner.to)
	}
	if owner.subject != "New Contact Form Submission" {
		t.Fatalf("unexpected owner subject: %s", owner.subject)
	}
	if !strings.Contains(owner.text, "jane@example.com") || !strings.Contains(owner.text, "book a session") {
		t.Fatalf("owner body missing submission details: %s", owner.text)
	}

	ack := mailer.sent[1]
	if ack.to != "jane@example.com" {
		t.Fatalf("ack mail sent to %s", ack.to)
	}
	if !strings.Contains(ack.subject, "Thank you for contacting us") {
		t.Fatalf("unexpected ack subject: %s", ack.subject)
	}
	if !strings.Contains(ack.text, "Jane Doe") {
		t.Fatalf("ack body missing name: %s", ack.text)
	}
	if ack.html == "" {
		t.Fatalf("expected html alternative")
	}
}

func TestContactService_Submit_OwnerFailureStillSendsAck(t *testing.T) {
	boom := errors.New("smtp timeout")
	mailer := &stubMailer{failFor: map[string]error{"owner@example.com": boom}}
	svc := NewContactService(mailer, "owner@example.com", zerolog.Nop())

	err := svc.Submit(context.Background(), testInput())
	if err == nil {
		t.Fatalf("expected error when owner mail fails")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped smtp error, got %v", err)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("both sends must be attempted, got %d", len(mailer.sent))
	}
}

func TestContactService_Submit_AckFailure(t *testing.T) {
	boom := errors.New("mailbox full")
	mailer := &stubMailer{failFor: map[string]error{"jane@example.com": boom}}
	svc := NewContactService(mailer, "owner@example.com", zerolog.Nop())

	err := svc.Submit(context.Background(), testInput())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("both sends must be attempted, got %d", len(mailer.sent))
	}
}
