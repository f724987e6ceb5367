package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/shan-traders/storefront-backend/internal/usecase"
	"github.com/shan-traders/storefront-backend/pkg/e"
)

// ErrorResponse — единый формат ошибок API: {"error": "..."}.
// Формат фиксирован контрактом витрины и не меняется между конечными точками.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse — подтверждение без полезной нагрузки: {"success": true}.
type SuccessResponse struct {
	Success bool `json:"success"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// ToHTTPResponse переводит ошибку приложения в статус и публичное сообщение.
// Сообщения стабильны: детали остаются в логах, наружу уходит контрактный текст.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidQuotePayload):
		return http.StatusBadRequest, "Invalid payload"
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusBadRequest, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, e.ErrInvalidCredentials.Error()
	case errors.Is(err, e.ErrNotAdministrator):
		return http.StatusForbidden, e.ErrNotAdministrator.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrUnknownCategory):
		return http.StatusNotFound, e.ErrUnknownCategory.Error()
	case errors.Is(err, e.ErrQuoteSendFailed), errors.Is(err, e.ErrMailNotConfigured):
		return http.StatusInternalServerError, "Failed to send quote request."
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// productFormFields — разобранные поля multipart-формы товара.
// Указатели отличают отсутствующее поле от пустого.
type productFormFields struct {
	Name      *string
	InStock   *bool
	IsPopular *bool
	Category  *string
	Image     *usecase.ProductImage
}

// parseProductForm разбирает multipart-форму товара.
// Поля name, in_stock, is_popular, category опциональны: отсутствующее поле
// остаётся nil и трактуется вызывающим как "не менять"/"по умолчанию".
func parseProductForm(r *http.Request) (*productFormFields, error) {
	fields := &productFormFields{}

	if values, ok := r.MultipartForm.Value["name"]; ok && len(values) > 0 {
		fields.Name = &values[0]
	}

	if values, ok := r.MultipartForm.Value["category"]; ok && len(values) > 0 {
		fields.Category = &values[0]
	}

	inStock, err := parseOptionalBool(r, "in_stock")
	if err != nil {
		return nil, err
	}
	fields.InStock = inStock

	isPopular, err := parseOptionalBool(r, "is_popular")
	if err != nil {
		return nil, err
	}
	fields.IsPopular = isPopular

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		return nil, err
	}
	fields.Image = image

	return fields, nil
}

func parseOptionalBool(r *http.Request, field string) (*bool, error) {
	values, ok := r.MultipartForm.Value[field]
	if !ok || len(values) == 0 {
		return nil, nil
	}

	v, err := strconv.ParseBool(values[0])
	if err != nil {
		return nil, e.Wrap(field, e.ErrStatusBadRequest)
	}

	return &v, nil
}

// parseImage читает единственный опциональный файл изображения.
func parseImage(files []*multipart.FileHeader) (*usecase.ProductImage, error) {
	const maxFileSize = 15 << 20

	if len(files) == 0 {
		return nil, nil
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, maxFileSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data[:min(len(data), 512)])
	}
	return data, mimeType, nil
}
