package usecase

import (
	"context"

	"github.com/shan-traders/storefront-backend/internal/domain"
)

// ProductRepository — строки товаров в PostgreSQL.
// List возвращает e.ErrUndefinedColumn, если таблица имеет устаревшую схему
// без колонок in_stock/is_popular/category; ListLegacy читает минимальный
// набор колонок для такой схемы.
type ProductRepository interface {
	List(ctx context.Context) ([]ProductRow, error)
	ListByCategory(ctx context.Context, category string) ([]ProductRow, error)
	ListLegacy(ctx context.Context) ([]ProductRow, error)
	GetByID(ctx context.Context, id int64) (*ProductRow, error)
	Insert(ctx context.Context, row *NewProductRow) (*ProductRow, error)
	Update(ctx context.Context, row *UpdateProductRow) (*ProductRow, error)
	Delete(ctx context.Context, id int64) error
}

// ImageRepository — блобы изображений в объектном хранилище.
type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

// SessionRepository — сессии администратора с TTL.
// Get возвращает (nil, nil) для неизвестного или истёкшего токена.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
