package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/shan-traders/storefront-backend/internal/cfg"
	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer отправляет письма с заявками на расценки через SMTP.
// Письмо уходит фиксированному получателю, Reply-To указывает на покупателя.
type SMTPMailer struct {
	smtpCfg  *cfg.SMTPCfg
	quoteCfg *cfg.QuoteCfg
	logger   logger.Logger
}

func NewSMTPMailer(smtpCfg *cfg.SMTPCfg, quoteCfg *cfg.QuoteCfg, logger logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		smtpCfg:  smtpCfg,
		quoteCfg: quoteCfg,
		logger:   logger,
	}
}

// SendQuote собирает и отправляет письмо с заявкой.
// При ненастроенном транспорте отправка завершается ошибкой немедленно,
// без попытки соединения.
func (m *SMTPMailer) SendQuote(ctx context.Context, req *domain.QuoteRequest) error {
	const op = "SMTPMailer.SendQuote"

	if !m.smtpCfg.Configured() {
		return e.Wrap(op, e.ErrMailNotConfigured)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.smtpCfg.From)
	msg.SetHeader("To", m.quoteCfg.Recipient)
	msg.SetHeader("Reply-To", req.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Quote Request from %s", req.Company))
	msg.SetBody("text/plain", buildQuoteBody(req))

	dialer := gomail.NewDialer(m.smtpCfg.Host, m.smtpCfg.Port, m.smtpCfg.User, m.smtpCfg.Password)
	dialer.SSL = m.smtpCfg.Port == 465

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(op, err)
		}
	case <-ctx.Done():
		return e.Wrap(op, ctx.Err())
	}

	m.logger.Infof("quote request mail sent. company: %s, items: %d", req.Company, len(req.Items))
	return nil
}

// buildQuoteBody формирует текст письма: шапка заявки и нумерованный список позиций.
func buildQuoteBody(req *domain.QuoteRequest) string {
	lines := []string{
		"A new quote request was submitted through the cart.",
		"",
		fmt.Sprintf("Company: %s", req.Company),
		fmt.Sprintf("Customer Email: %s", req.Email),
		"",
		"Requested Products:",
	}

	for i, item := range req.Items {
		name := fmt.Sprintf("Product %d", i+1)
		if item.Name != nil && strings.TrimSpace(*item.Name) != "" {
			name = strings.TrimSpace(*item.Name)
		}

		quantity := 1
		if item.Quantity != nil && *item.Quantity > 0 {
			quantity = *item.Quantity
		}

		lines = append(lines, fmt.Sprintf("%d. %s — Qty: %d", i+1, name, quantity))
	}

	return strings.Join(lines, "\n")
}
