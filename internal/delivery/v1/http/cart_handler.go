package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shan-traders/storefront-backend/internal/cart"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

// CartResponse — содержимое корзины с суммарным количеством.
type CartResponse struct {
	Items      []cart.Line `json:"items"`
	TotalCount int         `json:"total_count"`
}

// AddCartItemRequest — добавление товара в корзину.
type AddCartItemRequest struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	ImageURL  *string `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// UpdateCartItemRequest — новое количество позиции.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartHandler struct {
	logger logger.Logger
}

func NewCartHandler(logger logger.Logger) *CartHandler {
	return &CartHandler{logger: logger}
}

// getCart
//
//	@Summary	Содержимое корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := cart.FromContext(r.Context())
	if err != nil {
		h.logger.Errorf(err, "cart scope missing")
		WriteError(w, err)
		return
	}

	writeCart(w, c)
}

// addItem
//
//	@Summary	Добавление товара в корзину
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		body	body		AddCartItemRequest	true	"Позиция"
//	@Success	200		{object}	CartResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/cart/items [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	c, err := cart.FromContext(r.Context())
	if err != nil {
		h.logger.Errorf(err, "cart scope missing")
		WriteError(w, err)
		return
	}

	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if req.ProductID == 0 || req.Name == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	c.AddItem(req.ProductID, req.Name, req.ImageURL, req.Quantity)
	writeCart(w, c)
}

// updateItem
//
//	@Summary	Изменение количества позиции
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer					true	"ID товара"
//	@Param		body	body		UpdateCartItemRequest	true	"Количество"
//	@Success	200		{object}	CartResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/cart/items/{id} [put]
func (h *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	c, err := cart.FromContext(r.Context())
	if err != nil {
		h.logger.Errorf(err, "cart scope missing")
		WriteError(w, err)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var req UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	c.UpdateQuantity(id, req.Quantity)
	writeCart(w, c)
}

// removeItem
//
//	@Summary	Удаление позиции из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		integer	true	"ID товара"
//	@Success	200	{object}	CartResponse
//	@Router		/cart/items/{id} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	c, err := cart.FromContext(r.Context())
	if err != nil {
		h.logger.Errorf(err, "cart scope missing")
		WriteError(w, err)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	c.RemoveItem(id)
	writeCart(w, c)
}

// clearCart
//
//	@Summary	Очистка корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [delete]
func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	c, err := cart.FromContext(r.Context())
	if err != nil {
		h.logger.Errorf(err, "cart scope missing")
		WriteError(w, err)
		return
	}

	c.Clear()
	writeCart(w, c)
}

func writeCart(w http.ResponseWriter, c *cart.Cart) {
	WriteSuccess(w, http.StatusOK, CartResponse{
		Items:      c.Items(),
		TotalCount: c.TotalCount(),
	})
}
