package http

import (
	"encoding/json"
	"net/http"

	"github.com/shan-traders/storefront-backend/internal/cart"
	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/internal/usecase"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

// QuoteItemRequest — позиция заявки. Название и количество опциональны.
type QuoteItemRequest struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
}

// QuoteRequestBody — полезная нагрузка POST /quote.
type QuoteRequestBody struct {
	Email   string             `json:"email"`
	Company string             `json:"company"`
	Items   []QuoteItemRequest `json:"items"`
}

type QuoteHandler struct {
	quoteUsecase usecase.QuoteUC
	carts        *cart.Store
	logger       logger.Logger
}

func NewQuoteHandler(quoteUsecase usecase.QuoteUC, carts *cart.Store, logger logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteUsecase: quoteUsecase,
		carts:        carts,
		logger:       logger,
	}
}

// submitQuote
//
//	@Summary		Отправка заявки на расценки
//	@Description	Проверяет заявку и отправляет письмо менеджеру. Успех опустошает корзину посетителя.
//	@Tags			quote
//	@Accept			json
//	@Produce		json
//	@Param			body	body		QuoteRequestBody	true	"Заявка"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/quote [post]
func (h *QuoteHandler) submitQuote(w http.ResponseWriter, r *http.Request) {
	var body QuoteRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.ErrInvalidQuotePayload)
		return
	}

	items := make([]domain.QuoteItem, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, domain.QuoteItem{
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	if err := h.quoteUsecase.SubmitQuote(r.Context(), domain.NewQuoteRequest(body.Email, body.Company, items)); err != nil {
		WriteError(w, err)
		return
	}

	// Отправленная заявка опустошает корзину посетителя, если она есть.
	if id := CartIDFromContext(r.Context()); id != "" {
		h.carts.Clear(id)
	}

	WriteSuccess(w, http.StatusOK, SuccessResponse{Success: true})
}
