package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shan-traders/storefront-backend/internal/repository/pgdb/converter"
	"github.com/shan-traders/storefront-backend/internal/usecase"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/tr"
)

// Код SQLSTATE, который PostgreSQL возвращает при обращении к несуществующей колонке.
const undefinedColumnCode = "42703"

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// List возвращает все товары, упорядоченные по имени без учёта регистра.
// Обращение к колонке, отсутствующей в устаревшей схеме, транслируется
// в e.ErrUndefinedColumn, чтобы вызывающий мог перечитать минимальный набор.
func (p *ProductRepo) List(ctx context.Context) ([]usecase.ProductRow, error) {
	query := `
		SELECT id, name, image_url, in_stock, is_popular, category
		FROM products
		ORDER BY lower(name) ASC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), translateColumnErr(err))
	}
	defer rows.Close()

	models := make([]*converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.ImageURL, &model.InStock, &model.IsPopular, &model.Category); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), translateColumnErr(err))
	}

	return p.conv.ToArrRows(models), nil
}

// ListLegacy возвращает товары по минимальному набору колонок,
// который присутствует в любой версии схемы.
func (p *ProductRepo) ListLegacy(ctx context.Context) ([]usecase.ProductRow, error) {
	query := `
		SELECT id, name, image_url
		FROM products
		ORDER BY lower(name) ASC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.ImageURL); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrRows(models), nil
}

// ListByCategory возвращает товары одной категории, упорядоченные по имени.
func (p *ProductRepo) ListByCategory(ctx context.Context, category string) ([]usecase.ProductRow, error) {
	query := `
		SELECT id, name, image_url, in_stock, is_popular, category
		FROM products
		WHERE category = $1
		ORDER BY lower(name) ASC
	`

	rows, err := p.pool.Query(ctx, query, category)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.ImageURL, &model.InStock, &model.IsPopular, &model.Category); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrRows(models), nil
}

// GetByID возвращает строку товара или e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*usecase.ProductRow, error) {
	query := `
		SELECT id, name, image_url, in_stock, is_popular, category
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.ImageURL, &model.InStock, &model.IsPopular, &model.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToRow(&model), nil
}

// Insert вставляет строку товара в рамках транзакции из контекста.
func (p *ProductRepo) Insert(ctx context.Context, row *usecase.NewProductRow) (*usecase.ProductRow, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (name, image_url, in_stock, is_popular, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, image_url, in_stock, is_popular, category
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query, row.Name, row.ImageURL, row.InStock, row.IsPopular, row.Category).
		Scan(&model.ID, &model.Name, &model.ImageURL, &model.InStock, &model.IsPopular, &model.Category)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToRow(&model), nil
}

// Update перезаписывает все колонки строки товара в рамках транзакции из контекста.
func (p *ProductRepo) Update(ctx context.Context, row *usecase.UpdateProductRow) (*usecase.ProductRow, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET name = $2, image_url = $3, in_stock = $4, is_popular = $5, category = $6
		WHERE id = $1
		RETURNING id, name, image_url, in_stock, is_popular, category
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query, row.ID, row.Name, row.ImageURL, row.InStock, row.IsPopular, row.Category).
		Scan(&model.ID, &model.Name, &model.ImageURL, &model.InStock, &model.IsPopular, &model.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToRow(&model), nil
}

// Delete удаляет строку товара в рамках транзакции из контекста.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// translateColumnErr заменяет ошибку SQLSTATE 42703 сигнальной ошибкой пакета e.
func translateColumnErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedColumnCode {
		return e.ErrUndefinedColumn
	}

	return err
}
