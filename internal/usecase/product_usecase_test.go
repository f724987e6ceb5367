package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shan-traders/storefront-backend/internal/cfg"
	"github.com/shan-traders/storefront-backend/pkg/e"
)

func testMinIOCfg() *cfg.MinIOCfg {
	return &cfg.MinIOCfg{
		PublicBaseURL: "https://cdn.example.com",
		BucketName:    "product-images",
	}
}

func newProductUC(repo *fakeProductRepo, infra *fakeImagesInfra, tx *fakeTx) *ProductUseCase {
	return NewProductUC(repo, infra, &fakeTransactional{tx: tx}, testMinIOCfg(), &testLogger{})
}

func testImage() *ProductImage {
	return NewProductImage([]byte("png-bytes"), "image/png", 9, "lighter.png")
}

func TestCreateProductUploadsBeforeInsert(t *testing.T) {
	calls := []string{}
	repo := &fakeProductRepo{calls: &calls}
	infra := &fakeImagesInfra{calls: &calls}
	tx := &fakeTx{}
	uc := newProductUC(repo, infra, tx)

	product, err := uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:     "Lighter",
		Category: "Lighters",
		Image:    testImage(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(calls) < 2 || calls[0] != "upload" || calls[1] != "insert" {
		t.Errorf("expected upload before insert, got %v", calls)
	}
	if !tx.committed {
		t.Error("expected transaction commit")
	}
	if product.ImageURL == nil {
		t.Error("expected image url on created product")
	}
	if !product.InStock || product.IsPopular {
		t.Errorf("defaulted flags wrong: %+v", product)
	}
}

func TestCreateProductRejectsBlankNameBeforeUpload(t *testing.T) {
	infra := &fakeImagesInfra{}
	uc := newProductUC(&fakeProductRepo{}, infra, &fakeTx{})

	_, err := uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:  "   ",
		Image: testImage(),
	})
	if !errors.Is(err, e.ErrProductNameRequired) {
		t.Fatalf("expected ErrProductNameRequired, got %v", err)
	}
	if len(infra.uploaded) != 0 {
		t.Error("blank name must be rejected before any upload")
	}
}

func TestCreateProductCleansUpAfterFailedInsert(t *testing.T) {
	repo := &fakeProductRepo{insertErr: errors.New("insert failed")}
	infra := &fakeImagesInfra{}
	tx := &fakeTx{}
	uc := newProductUC(repo, infra, tx)

	_, err := uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:  "Lighter",
		Image: testImage(),
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if !tx.rolledBack {
		t.Error("expected transaction rollback")
	}
	if len(infra.cleaned) != 1 {
		t.Fatalf("expected one cleanup batch, got %d", len(infra.cleaned))
	}
	if infra.cleaned[0][0] != infra.uploaded[0] {
		t.Errorf("cleanup targeted %v, uploaded %v", infra.cleaned[0], infra.uploaded)
	}
}

func TestCreateProductNormalizesUnknownCategory(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newProductUC(repo, &fakeImagesInfra{}, &fakeTx{})

	_, err := uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:     "Lighter",
		Category: "Snacks",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.inserted.Category != "Others" {
		t.Errorf("unknown category stored as %q", repo.inserted.Category)
	}
}

func TestUpdateProductDeletesOldBlobAfterCommit(t *testing.T) {
	oldURL := "https://cdn.example.com/product-images/products/old.png"
	repo := &fakeProductRepo{
		byID: &ProductRow{ID: 7, Name: "Lighter", ImageURL: &oldURL, InStock: boolPtr(true), IsPopular: boolPtr(false), Category: strPtr("Lighters")},
	}
	infra := &fakeImagesInfra{}
	tx := &fakeTx{}
	uc := newProductUC(repo, infra, tx)

	_, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{
		ID:    7,
		Image: testImage(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !tx.committed {
		t.Fatal("expected commit")
	}
	if len(infra.cleaned) != 1 || infra.cleaned[0][0] != "products/old.png" {
		t.Errorf("expected old blob cleanup, got %v", infra.cleaned)
	}
}

func TestUpdateProductWithoutImageKeepsReference(t *testing.T) {
	oldURL := "https://cdn.example.com/product-images/products/old.png"
	repo := &fakeProductRepo{
		byID: &ProductRow{ID: 7, Name: "Lighter", ImageURL: &oldURL, InStock: boolPtr(true), IsPopular: boolPtr(false), Category: strPtr("Lighters")},
	}
	infra := &fakeImagesInfra{}
	uc := newProductUC(repo, infra, &fakeTx{})

	newName := "Lighter XL"
	product, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{
		ID:   7,
		Name: &newName,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(infra.uploaded) != 0 || len(infra.cleaned) != 0 {
		t.Error("no storage traffic expected without a new image")
	}
	if product.ImageURL == nil || *product.ImageURL != oldURL {
		t.Errorf("image reference changed: %v", product.ImageURL)
	}
	if repo.updated.Name != "Lighter XL" {
		t.Errorf("name not updated: %q", repo.updated.Name)
	}
}

func TestUpdateProductOmittedFieldsKeepPreEditValues(t *testing.T) {
	repo := &fakeProductRepo{
		byID: &ProductRow{ID: 7, Name: "Lighter", InStock: boolPtr(false), IsPopular: boolPtr(true), Category: strPtr("Lighters")},
	}
	uc := newProductUC(repo, &fakeImagesInfra{}, &fakeTx{})

	_, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{ID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.updated.InStock != false || repo.updated.IsPopular != true || repo.updated.Category != "Lighters" {
		t.Errorf("pre-edit values lost: %+v", repo.updated)
	}
}

func TestUpdateProductCleansUpNewBlobOnFailedWrite(t *testing.T) {
	repo := &fakeProductRepo{
		byID:      &ProductRow{ID: 7, Name: "Lighter"},
		updateErr: errors.New("row write failed"),
	}
	infra := &fakeImagesInfra{}
	tx := &fakeTx{}
	uc := newProductUC(repo, infra, tx)

	_, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{
		ID:    7,
		Image: testImage(),
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if !tx.rolledBack {
		t.Error("expected rollback")
	}
	if len(infra.cleaned) != 1 || infra.cleaned[0][0] != infra.uploaded[0] {
		t.Errorf("expected new blob cleanup, got %v", infra.cleaned)
	}
}

func TestDeleteProductRemovesBlobBestEffort(t *testing.T) {
	url := "https://cdn.example.com/product-images/products/old.png"
	repo := &fakeProductRepo{
		byID: &ProductRow{ID: 7, Name: "Lighter", ImageURL: &url},
	}
	infra := &fakeImagesInfra{}
	tx := &fakeTx{}
	uc := newProductUC(repo, infra, tx)

	if err := uc.DeleteProduct(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.deleted != 7 {
		t.Errorf("row not deleted: %d", repo.deleted)
	}
	if !tx.committed {
		t.Error("expected commit")
	}
	if len(infra.cleaned) != 1 || infra.cleaned[0][0] != "products/old.png" {
		t.Errorf("expected blob cleanup, got %v", infra.cleaned)
	}
}

func TestDeleteProductSkipsUnderivablePath(t *testing.T) {
	url := "https://elsewhere.example.com/static/lighter.png"
	repo := &fakeProductRepo{
		byID: &ProductRow{ID: 7, Name: "Lighter", ImageURL: &url},
	}
	infra := &fakeImagesInfra{}
	uc := newProductUC(repo, infra, &fakeTx{})

	if err := uc.DeleteProduct(context.Background(), 7); err != nil {
		t.Fatalf("row delete must not depend on the blob path: %v", err)
	}
	if len(infra.cleaned) != 0 {
		t.Errorf("no cleanup expected for a foreign url, got %v", infra.cleaned)
	}
}
