package cart

import (
	"context"

	"github.com/shan-traders/storefront-backend/pkg/e"
)

type ctxKey struct{}

// NewContext прикрепляет корзину к контексту запроса.
func NewContext(ctx context.Context, c *Cart) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext извлекает корзину из контекста.
// Обращение вне области, установленной middleware, считается ошибкой
// программирования и возвращает e.ErrCartScopeMissing.
func FromContext(ctx context.Context) (*Cart, error) {
	c, ok := ctx.Value(ctxKey{}).(*Cart)
	if !ok {
		return nil, e.ErrCartScopeMissing
	}

	return c, nil
}
