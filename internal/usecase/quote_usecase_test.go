package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/pkg/e"
)

func validQuote() *domain.QuoteRequest {
	return domain.NewQuoteRequest("buyer@example.com", "Corner Store", []domain.QuoteItem{
		{Name: strPtr("Lighter"), Quantity: intPtr(2)},
	})
}

func TestSubmitQuoteRejectsBeforeTransport(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *domain.QuoteRequest)
	}{
		{"empty items", func(q *domain.QuoteRequest) { q.Items = nil }},
		{"malformed email", func(q *domain.QuoteRequest) { q.Email = "not-an-email" }},
		{"email without tld", func(q *domain.QuoteRequest) { q.Email = "buyer@host" }},
		{"blank company", func(q *domain.QuoteRequest) { q.Company = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			uc := NewQuoteUC(mailer, &testLogger{})

			q := validQuote()
			tt.mutate(q)

			err := uc.SubmitQuote(context.Background(), q)
			if !errors.Is(err, e.ErrInvalidQuotePayload) {
				t.Errorf("expected ErrInvalidQuotePayload, got %v", err)
			}
			if len(mailer.sent) != 0 {
				t.Error("mailer must not be called for an invalid payload")
			}
		})
	}
}

func TestSubmitQuoteSendsNormalizedRequest(t *testing.T) {
	mailer := &fakeMailer{}
	uc := NewQuoteUC(mailer, &testLogger{})

	q := validQuote()
	q.Email = "  buyer@example.com  "
	q.Company = "  Corner Store  "

	if err := uc.SubmitQuote(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(mailer.sent))
	}
	sent := mailer.sent[0]
	if sent.Email != "buyer@example.com" || sent.Company != "Corner Store" {
		t.Errorf("payload not trimmed: %+v", sent)
	}
}

func TestSubmitQuoteHidesTransportDetail(t *testing.T) {
	log := &testLogger{}
	mailer := &fakeMailer{sendErr: errors.New("smtp: 535 auth failed")}
	uc := NewQuoteUC(mailer, log)

	err := uc.SubmitQuote(context.Background(), validQuote())
	if !errors.Is(err, e.ErrQuoteSendFailed) {
		t.Fatalf("expected ErrQuoteSendFailed, got %v", err)
	}
	if errors.Is(err, mailer.sendErr) {
		t.Error("transport detail must not leak into the returned error")
	}
	if len(log.errors) == 0 {
		t.Error("expected transport failure to be logged")
	}
}
