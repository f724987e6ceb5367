package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

// emailPattern — намеренно простая проверка формы local@domain.tld.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// QuoteUseCase проверяет заявку на расценки и отправляет письмо.
type QuoteUseCase struct {
	mailer Mailer
	logger logger.Logger
}

func NewQuoteUC(mailer Mailer, logger logger.Logger) *QuoteUseCase {
	return &QuoteUseCase{
		mailer: mailer,
		logger: logger,
	}
}

// SubmitQuote валидирует полезную нагрузку и отправляет письмо.
// Невалидная заявка отклоняется до любого обращения к транспорту.
// Детали сбоя транспорта остаются в логах, наружу уходит общая ошибка.
func (q *QuoteUseCase) SubmitQuote(ctx context.Context, req *domain.QuoteRequest) error {
	const op = "QuoteUseCase.SubmitQuote"

	email := strings.TrimSpace(req.Email)
	company := strings.TrimSpace(req.Company)

	if len(req.Items) == 0 || !emailPattern.MatchString(email) || company == "" {
		return e.Wrap(op, e.ErrInvalidQuotePayload)
	}

	normalized := domain.NewQuoteRequest(email, company, req.Items)

	if err := q.mailer.SendQuote(ctx, normalized); err != nil {
		q.logger.Errorf(e.Wrap(op, err), "quote mail delivery failed. company: %s", company)
		return e.Wrap(op, e.ErrQuoteSendFailed)
	}

	return nil
}
