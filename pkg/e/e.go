package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки чтения каталога
	ErrUndefinedColumn = fmt.Errorf("undefined column")
	ErrProductNotFound = fmt.Errorf("product not found")

	// Ошибки области видимости корзины
	ErrCartScopeMissing = fmt.Errorf("cart is not attached to the request scope")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrUnknownCategory      = fmt.Errorf("unknown category")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrFileTooLarge         = fmt.Errorf("file is too large")
	ErrInvalidQuotePayload  = fmt.Errorf("invalid quote payload")

	// 401/403
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrNotAdministrator   = fmt.Errorf("administrator access required")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrMailNotConfigured   = fmt.Errorf("mail transport is not configured")
	ErrQuoteSendFailed     = fmt.Errorf("failed to send quote request")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
