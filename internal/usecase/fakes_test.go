package usecase

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shan-traders/storefront-backend/internal/domain"
)

// testLogger — заглушка логгера, собирающая сообщения уровня Warn и Error.
type testLogger struct {
	warns  []string
	errors []string
}

func (l *testLogger) Infof(format string, args ...any) {}
func (l *testLogger) Warnf(format string, args ...any) { l.warns = append(l.warns, format) }
func (l *testLogger) Errorf(err error, format string, args ...any) {
	l.errors = append(l.errors, format)
}

// fakeProductRepo — репозиторий товаров с настраиваемыми ответами.
// Поле calls фиксирует порядок обращений всех участников теста.
type fakeProductRepo struct {
	rows       []ProductRow
	legacyRows []ProductRow
	byID       *ProductRow

	listErr   error
	legacyErr error
	byIDErr   error
	insertErr error
	updateErr error
	deleteErr error

	inserted *NewProductRow
	updated  *UpdateProductRow
	deleted  int64

	calls *[]string
}

func (f *fakeProductRepo) record(name string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, name)
	}
}

func (f *fakeProductRepo) List(ctx context.Context) ([]ProductRow, error) {
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeProductRepo) ListByCategory(ctx context.Context, category string) ([]ProductRow, error) {
	f.record("listByCategory")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeProductRepo) ListLegacy(ctx context.Context) ([]ProductRow, error) {
	f.record("listLegacy")
	if f.legacyErr != nil {
		return nil, f.legacyErr
	}
	return f.legacyRows, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*ProductRow, error) {
	f.record("getByID")
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

func (f *fakeProductRepo) Insert(ctx context.Context, row *NewProductRow) (*ProductRow, error) {
	f.record("insert")
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = row
	inStock, isPopular := row.InStock, row.IsPopular
	category := row.Category
	return &ProductRow{
		ID:        1,
		Name:      row.Name,
		ImageURL:  row.ImageURL,
		InStock:   &inStock,
		IsPopular: &isPopular,
		Category:  &category,
	}, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, row *UpdateProductRow) (*ProductRow, error) {
	f.record("update")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = row
	inStock, isPopular := row.InStock, row.IsPopular
	category := row.Category
	return &ProductRow{
		ID:        row.ID,
		Name:      row.Name,
		ImageURL:  row.ImageURL,
		InStock:   &inStock,
		IsPopular: &isPopular,
		Category:  &category,
	}, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	f.record("delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = id
	return nil
}

// fakeImagesInfra — инфраструктура изображений без сети.
type fakeImagesInfra struct {
	uploadErr error
	uploaded  []string
	cleaned   [][]string
	calls     *[]string
}

func (f *fakeImagesInfra) UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	if f.calls != nil {
		*f.calls = append(*f.calls, "upload")
	}
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}

	key := "products/" + req.Image.Name
	f.uploaded = append(f.uploaded, key)
	return NewUploadImageRes(key, "https://cdn.example.com/product-images/"+key), nil
}

func (f *fakeImagesInfra) CleanupImages(keys []string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, "cleanup")
	}
	f.cleaned = append(f.cleaned, keys)
}

// fakeMailer — почтовый транспорт, считающий отправки.
type fakeMailer struct {
	sendErr error
	sent    []*domain.QuoteRequest
}

func (f *fakeMailer) SendQuote(ctx context.Context, req *domain.QuoteRequest) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, req)
	return nil
}

// fakeSessionRepo — хранилище сессий в map.
type fakeSessionRepo struct {
	saveErr  error
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessionRepo) Save(ctx context.Context, session *domain.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) Get(ctx context.Context, token string) (*domain.Session, error) {
	return f.sessions[token], nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

// fakeTx реализует pgx.Tx ровно настолько, насколько нужно менеджеру транзакций.
type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (t *fakeTx) Conn() *pgx.Conn { return nil }

// fakeTransactional выдаёт заранее созданный fakeTx.
type fakeTransactional struct {
	tx       *fakeTx
	beginErr error
}

func (f *fakeTransactional) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}
