package usecase

import (
	"context"

	"github.com/shan-traders/storefront-backend/internal/domain"
)

// ImagesInfra управляет загрузкой изображений и фоновой очисткой блобов.
type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
	CleanupImages(keys []string)
}

// Mailer отправляет письмо с заявкой на расценки.
type Mailer interface {
	SendQuote(ctx context.Context, req *domain.QuoteRequest) error
}
