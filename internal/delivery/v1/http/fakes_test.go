package http

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shan-traders/storefront-backend/internal/cart"
	"github.com/shan-traders/storefront-backend/internal/cfg"
	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/internal/usecase"
)

type testLogger struct{}

func (testLogger) Infof(format string, args ...any)            {}
func (testLogger) Warnf(format string, args ...any)            {}
func (testLogger) Errorf(err error, format string, args ...any) {}

type fakeCatalogUC struct {
	products []domain.Product
	listErr  error
}

func (f *fakeCatalogUC) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeCatalogUC) ListCategoryProducts(ctx context.Context, category string) ([]domain.Product, error) {
	result := make([]domain.Product, 0)
	for _, p := range f.products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeProductUC struct {
	created *usecase.CreateProductReq
	deleted int64
}

func (f *fakeProductUC) CreateProduct(ctx context.Context, req *usecase.CreateProductReq) (*domain.Product, error) {
	f.created = req
	return &domain.Product{ID: 1, Name: req.Name, InStock: true, Category: "Others"}, nil
}

func (f *fakeProductUC) UpdateProduct(ctx context.Context, req *usecase.UpdateProductReq) (*domain.Product, error) {
	return &domain.Product{ID: req.ID, Name: "updated", InStock: true, Category: "Others"}, nil
}

func (f *fakeProductUC) DeleteProduct(ctx context.Context, id int64) error {
	f.deleted = id
	return nil
}

type fakeQuoteUC struct {
	submitErr error
	received  []*domain.QuoteRequest
}

func (f *fakeQuoteUC) SubmitQuote(ctx context.Context, req *domain.QuoteRequest) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.received = append(f.received, req)
	return nil
}

// fakeAuthUC резолвит токены по заранее заполненной карте.
type fakeAuthUC struct {
	sessions map[string]*domain.Session
	loginErr error
}

func newFakeAuthUC() *fakeAuthUC {
	return &fakeAuthUC{sessions: make(map[string]*domain.Session)}
}

func (f *fakeAuthUC) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	session := domain.NewSession("issued-token", email, time.Now())
	f.sessions[session.Token] = session
	return session, nil
}

func (f *fakeAuthUC) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, nil
	}
	return f.sessions[token], nil
}

func (f *fakeAuthUC) SignOut(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

type testEnv struct {
	router  *chi.Mux
	carts   *cart.Store
	auth    *fakeAuthUC
	quote   *fakeQuoteUC
	catalog *fakeCatalogUC
	product *fakeProductUC
}

func newTestEnv() *testEnv {
	env := &testEnv{
		carts:   cart.NewStore(),
		auth:    newFakeAuthUC(),
		quote:   &fakeQuoteUC{},
		catalog: &fakeCatalogUC{},
		product: &fakeProductUC{},
	}

	config := &cfg.Config{
		Minio: &cfg.MinIOCfg{
			PublicBaseURL: "https://cdn.example.com",
			BucketName:    "product-images",
		},
		Admin: &cfg.AdminCfg{Email: "admin@example.com"},
		Redis: &cfg.RedisCfg{SessionTTL: time.Hour},
	}

	env.router = chi.NewRouter()
	router := NewRouter(env.router, testLogger{})
	router.Init(env.catalog, env.product, env.quote, env.auth, env.carts, config)

	return env
}
