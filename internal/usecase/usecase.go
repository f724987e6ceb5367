package usecase

import (
	"context"

	"github.com/shan-traders/storefront-backend/internal/domain"
)

// CatalogUC — публичное чтение каталога.
type CatalogUC interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListCategoryProducts(ctx context.Context, category string) ([]domain.Product, error)
}

// ProductUC — операции администратора над товарами.
type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// QuoteUC — отправка заявки на расценки.
type QuoteUC interface {
	SubmitQuote(ctx context.Context, req *domain.QuoteRequest) error
}

// AuthUC — вход администратора и разрешение сессий.
type AuthUC interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	SignOut(ctx context.Context, token string) error
}
