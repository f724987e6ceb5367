package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shan-traders/storefront-backend/internal/cfg"
	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/internal/images"
	"github.com/shan-traders/storefront-backend/internal/usecase"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

// ProductResponse — товар в ответах API. Ссылка на изображение уже
// развёрнута в публичный URL либо заменена заглушкой.
type ProductResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	InStock   bool   `json:"in_stock"`
	IsPopular bool   `json:"is_popular"`
	Category  string `json:"category"`
}

// CategoryResponse — категория витрины с её слагом.
type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	minioCfg       *cfg.MinIOCfg
	adminCfg       *cfg.AdminCfg
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, minioCfg *cfg.MinIOCfg,
	adminCfg *cfg.AdminCfg, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		minioCfg:       minioCfg,
		adminCfg:       adminCfg,
		logger:         logger,
	}
}

// listProducts
//
//	@Summary		Список товаров каталога
//	@Description	Возвращает все товары, упорядоченные по имени. Анонимный вызов видит только товары в наличии.
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		ProductResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUsecase.ListProducts(r.Context())
	if err != nil {
		h.logger.Errorf(err, "product listing failed")
		WriteError(w, err)
		return
	}

	// Посетитель видит только товары в наличии; администратор — всё.
	isAdmin := SessionFromContext(r.Context()).IsAdmin(h.adminCfg.Email)
	if !isAdmin {
		visible := make([]domain.Product, 0, len(products))
		for _, product := range products {
			if product.InStock {
				visible = append(visible, product)
			}
		}
		products = visible
	}

	WriteSuccess(w, http.StatusOK, h.toResponses(products))
}

// listCategories
//
//	@Summary	Список категорий витрины
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	CategoryResponse
//	@Router		/categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories := make([]CategoryResponse, 0, len(domain.CategoryOrder))
	for _, category := range domain.CategoryOrder {
		categories = append(categories, CategoryResponse{
			Name: category,
			Slug: domain.CategoryToSlug(category),
		})
	}

	WriteSuccess(w, http.StatusOK, categories)
}

// listCategoryProducts
//
//	@Summary	Товары одной категории
//	@Tags		catalog
//	@Produce	json
//	@Param		slug	path		string	true	"Слаг категории"
//	@Success	200		{array}		ProductResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/categories/{slug}/products [get]
func (h *CatalogHandler) listCategoryProducts(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	category, ok := domain.SlugToCategory(slug)
	if !ok {
		WriteError(w, e.ErrUnknownCategory)
		return
	}

	products, err := h.catalogUsecase.ListCategoryProducts(r.Context(), category)
	if err != nil {
		h.logger.Errorf(err, "category listing failed. category: %s", category)
		WriteError(w, err)
		return
	}

	if !SessionFromContext(r.Context()).IsAdmin(h.adminCfg.Email) {
		visible := make([]domain.Product, 0, len(products))
		for _, product := range products {
			if product.InStock {
				visible = append(visible, product)
			}
		}
		products = visible
	}

	WriteSuccess(w, http.StatusOK, h.toResponses(products))
}

func (h *CatalogHandler) toResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, h.toResponse(product))
	}

	return responses
}

func (h *CatalogHandler) toResponse(product domain.Product) ProductResponse {
	imageRef := ""
	if product.ImageURL != nil {
		imageRef = *product.ImageURL
	}

	return ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		ImageURL:  images.ResolveURL(h.minioCfg.PublicBaseURL, h.minioCfg.BucketName, imageRef),
		InStock:   product.InStock,
		IsPopular: product.IsPopular,
		Category:  product.Category,
	}
}
