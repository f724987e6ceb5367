package usecase

import (
	"context"
	"errors"

	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

// CatalogUseCase реализует публичное чтение каталога товаров.
type CatalogUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListProducts возвращает все товары, упорядоченные по имени.
// Если таблица имеет устаревшую схему без новых колонок, выполняется
// повторное чтение минимального набора колонок, а недостающие значения
// синтезируются. Любая другая ошибка чтения фатальна для запроса.
func (c *CatalogUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	rows, err := c.productRepo.List(ctx)
	if err != nil {
		if !errors.Is(err, e.ErrUndefinedColumn) {
			return nil, e.Wrap(op, err)
		}

		c.logger.Warnf("catalogue columns not found, falling back to legacy schema")

		rows, err = c.productRepo.ListLegacy(ctx)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	return normalizeRows(rows), nil
}

// ListCategoryProducts возвращает товары одной категории.
// Ошибка чтения логируется, а страница категории получает пустой список.
func (c *CatalogUseCase) ListCategoryProducts(ctx context.Context, category string) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListCategoryProducts"

	rows, err := c.productRepo.ListByCategory(ctx, category)
	if err != nil {
		c.logger.Errorf(e.Wrap(op, err), "category fetch failed, rendering empty listing. category: %s", category)
		return []domain.Product{}, nil
	}

	return normalizeRows(rows), nil
}

// normalizeRow применяет значения по умолчанию на границе чтения:
// отсутствующий in_stock трактуется как true, is_popular как false,
// неизвестная категория заменяется категорией-заглушкой.
func normalizeRow(row ProductRow) domain.Product {
	product := domain.Product{
		ID:        row.ID,
		Name:      row.Name,
		ImageURL:  row.ImageURL,
		InStock:   true,
		IsPopular: false,
		Category:  domain.DefaultCategory,
	}

	if row.InStock != nil {
		product.InStock = *row.InStock
	}

	if row.IsPopular != nil {
		product.IsPopular = *row.IsPopular
	}

	if row.Category != nil {
		product.Category = domain.NormalizeCategory(*row.Category)
	}

	return product
}

func normalizeRows(rows []ProductRow) []domain.Product {
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, normalizeRow(row))
	}

	return products
}
