package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shan-traders/storefront-backend/internal/cart"
	"github.com/shan-traders/storefront-backend/internal/cfg"
	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/internal/usecase"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

const (
	// SessionCookie — HttpOnly cookie с токеном сессии администратора.
	SessionCookie = "st_session"
	// CartCookie — идентификатор корзины посетителя.
	CartCookie = "cart_id"
)

type sessionCtxKey struct{}
type cartIDCtxKey struct{}

// Middleware связывает cookie запроса с сессией и корзиной.
type Middleware struct {
	authUC   usecase.AuthUC
	carts    *cart.Store
	adminCfg *cfg.AdminCfg
	redisCfg *cfg.RedisCfg
	logger   logger.Logger
}

func NewMiddleware(authUC usecase.AuthUC, carts *cart.Store, adminCfg *cfg.AdminCfg,
	redisCfg *cfg.RedisCfg, logger logger.Logger) *Middleware {
	return &Middleware{
		authUC:   authUC,
		carts:    carts,
		adminCfg: adminCfg,
		redisCfg: redisCfg,
		logger:   logger,
	}
}

// WithSession разрешает cookie сессии на каждом запросе.
// Сбой разрешения логируется и даёт анонимный запрос, но никогда не 500.
func (m *Middleware) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			token = cookie.Value
		}

		session, err := m.authUC.Resolve(r.Context(), token)
		if err != nil {
			m.logger.Warnf("session resolution failed, continuing as anonymous: %v", err)
			session = nil
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только сессию с адресом администратора.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := SessionFromContext(r.Context())
		if session == nil {
			WriteError(w, e.ErrInvalidCredentials)
			return
		}

		if !session.IsAdmin(m.adminCfg.Email) {
			WriteError(w, e.ErrNotAdministrator)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WithCart прикрепляет корзину посетителя к контексту запроса.
// Cookie выдаётся при первом обращении; корзина создаётся по требованию.
func (m *Middleware) WithCart(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if cookie, err := r.Cookie(CartCookie); err == nil {
			id = cookie.Value
		}

		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CartCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := cart.NewContext(r.Context(), m.carts.Get(id))
		ctx = context.WithValue(ctx, cartIDCtxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext возвращает сессию запроса или nil для анонимного вызова.
func SessionFromContext(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(sessionCtxKey{}).(*domain.Session)
	return session
}

// CartIDFromContext возвращает идентификатор корзины, если middleware его установил.
func CartIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(cartIDCtxKey{}).(string)
	return id
}

// SetSessionCookie выставляет HttpOnly cookie сессии с TTL хранилища.
func (m *Middleware) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(m.redisCfg.SessionTTL),
	})
}

// ClearSessionCookie немедленно гасит cookie сессии.
func (m *Middleware) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
