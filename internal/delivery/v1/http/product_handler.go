package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shan-traders/storefront-backend/internal/cfg"
	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/internal/images"
	"github.com/shan-traders/storefront-backend/internal/usecase"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	minioCfg       *cfg.MinIOCfg
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, minioCfg *cfg.MinIOCfg, logger logger.Logger) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		minioCfg:       minioCfg,
		logger:         logger,
	}
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создаёт товар каталога с опциональным изображением
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название товара"
//	@Param			category	formData	string	false	"Категория"
//	@Param			in_stock	formData	boolean	false	"В наличии"
//	@Param			is_popular	formData	boolean	false	"Популярный"
//	@Param			image		formData	file	false	"Изображение товара"
//	@Success		201			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/admin/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	fields, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	name := ""
	if fields.Name != nil {
		name = *fields.Name
	}

	category := ""
	if fields.Category != nil {
		category = *fields.Category
	}

	product, err := p.productUsecase.CreateProduct(r.Context(),
		usecase.NewCreateProductReq(name, fields.InStock, fields.IsPopular, category, fields.Image))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, p.toResponse(product))
}

// updateProduct
//
//	@Summary	Изменение товара
//	@Tags		admin
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id			path		integer	true	"ID товара"
//	@Param		name		formData	string	false	"Название товара"
//	@Param		category	formData	string	false	"Категория"
//	@Param		in_stock	formData	boolean	false	"В наличии"
//	@Param		is_popular	formData	boolean	false	"Популярный"
//	@Param		image		formData	file	false	"Новое изображение"
//	@Success	200			{object}	ProductResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/admin/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
	)

	id, err := parseProductID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	fields, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(),
		usecase.NewUpdateProductReq(id, fields.Name, fields.InStock, fields.IsPopular, fields.Category, fields.Image))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, p.toResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		admin
//	@Produce	json
//	@Param		id	path		integer	true	"ID товара"
//	@Success	200	{object}	SuccessResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.DeleteProduct(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, SuccessResponse{Success: true})
}

func parseProductID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, e.Wrap("product id", e.ErrStatusBadRequest)
	}

	return id, nil
}

func (p *ProductHandler) toResponse(product *domain.Product) ProductResponse {
	imageRef := ""
	if product.ImageURL != nil {
		imageRef = *product.ImageURL
	}

	return ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		ImageURL:  images.ResolveURL(p.minioCfg.PublicBaseURL, p.minioCfg.BucketName, imageRef),
		InStock:   product.InStock,
		IsPopular: product.IsPopular,
		Category:  product.Category,
	}
}
