package usecase

import (
	"context"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/shan-traders/storefront-backend/internal/cfg"
	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/internal/images"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

// ProductUseCase реализует операции администратора над каталогом.
// Порядок побочных эффектов фиксирован: запись в хранилище блобов
// предшествует записи строки, запись строки предшествует удалению
// старого блоба. Неудачное удаление старого блоба не откатывает правку.
type ProductUseCase struct {
	productRepo ProductRepository
	imagesInfra ImagesInfra
	dbPool      transaction.Transactional
	minioCfg    *cfg.MinIOCfg
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	imagesInfra ImagesInfra,
	dbPool transaction.Transactional,
	minioCfg *cfg.MinIOCfg,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		imagesInfra: imagesInfra,
		dbPool:      dbPool,
		minioCfg:    minioCfg,
		logger:      logger,
	}
}

// CreateProduct загружает изображение (если оно есть), затем вставляет строку товара.
// Если вставка не удалась, только что загруженный блоб отправляется в очистку,
// чтобы успешная строка никогда не ссылалась на несуществующий объект и наоборот.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}

	var (
		imageURL    *string
		uploadedKey string
	)

	if req.Image != nil {
		res, err := p.imagesInfra.UploadImage(ctx, NewUploadImageReq(*req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		imageURL = &res.PublicURL
		uploadedKey = res.ObjectKey
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		p.cleanupOnFailure(op, uploadedKey, err)
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
			p.cleanupOnFailure(op, uploadedKey, err)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	row, err := p.productRepo.Insert(ctx, &NewProductRow{
		Name:      name,
		ImageURL:  imageURL,
		InStock:   boolOrDefault(req.InStock, true),
		IsPopular: boolOrDefault(req.IsPopular, false),
		Category:  domain.NormalizeCategory(req.Category),
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product := normalizeRow(*row)
	return &product, nil
}

// UpdateProduct правит строку товара. Новое изображение сначала загружается
// под новым ключом; путь прежнего блоба вычисляется заранее и удаляется
// только после успешной записи строки, в режиме best effort.
// nil-поля запроса сохраняют значения, записанные до правки.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	current, err := p.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	name := current.Name
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, e.Wrap(op, e.ErrProductNameRequired)
		}
	}

	currentNormalized := normalizeRow(*current)

	var (
		imageURL    = current.ImageURL
		uploadedKey string
		oldPath     string
	)

	if req.Image != nil {
		res, err := p.imagesInfra.UploadImage(ctx, NewUploadImageReq(*req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		imageURL = &res.PublicURL
		uploadedKey = res.ObjectKey

		if current.ImageURL != nil {
			oldPath = images.ExtractStoragePath(p.minioCfg.PublicBaseURL, p.minioCfg.BucketName, *current.ImageURL)
		}
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		p.cleanupOnFailure(op, uploadedKey, err)
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
			p.cleanupOnFailure(op, uploadedKey, err)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	category := currentNormalized.Category
	if req.Category != nil {
		category = domain.NormalizeCategory(*req.Category)
	}

	row, err := p.productRepo.Update(ctx, &UpdateProductRow{
		ID:        req.ID,
		Name:      name,
		ImageURL:  imageURL,
		InStock:   boolOrDefault(req.InStock, currentNormalized.InStock),
		IsPopular: boolOrDefault(req.IsPopular, currentNormalized.IsPopular),
		Category:  category,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Прежний блоб удаляется после фиксации строки; неудача не фатальна.
	if oldPath != "" {
		p.imagesInfra.CleanupImages([]string{oldPath})
	}

	product := normalizeRow(*row)
	return &product, nil
}

// DeleteProduct удаляет строку товара, затем best-effort удаляет связанный блоб.
// Невозможность вычислить путь блоба не препятствует удалению строки.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "ProductUseCase.DeleteProduct"

	current, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	storagePath := ""
	if current.ImageURL != nil {
		storagePath = images.ExtractStoragePath(p.minioCfg.PublicBaseURL, p.minioCfg.BucketName, *current.ImageURL)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	err = p.productRepo.Delete(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	if storagePath != "" {
		p.imagesInfra.CleanupImages([]string{storagePath})
	}

	return nil
}

// cleanupOnFailure отправляет осиротевший после неудачной записи блоб в очистку.
func (p *ProductUseCase) cleanupOnFailure(op, uploadedKey string, cause error) {
	if uploadedKey == "" {
		return
	}

	p.logger.Warnf("cleaning up orphaned image after failed write. key: %s, error: %v", uploadedKey, e.Wrap(op, cause))
	p.imagesInfra.CleanupImages([]string{uploadedKey})
}

func boolOrDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}

	return def
}
