package converter

import "github.com/shan-traders/storefront-backend/internal/usecase"

// ProductConverter преобразует модель PostgreSQL в строку слоя usecase.
type ProductConverter interface {
	ToRow(model *ProductModel) *usecase.ProductRow
	ToArrRows(models []*ProductModel) []usecase.ProductRow
}

type productConverter struct{}

func NewProductConverter() ProductConverter {
	return &productConverter{}
}

func (c *productConverter) ToRow(model *ProductModel) *usecase.ProductRow {
	if model == nil {
		return nil
	}

	return &usecase.ProductRow{
		ID:        model.ID,
		Name:      model.Name,
		ImageURL:  model.ImageURL,
		InStock:   model.InStock,
		IsPopular: model.IsPopular,
		Category:  model.Category,
	}
}

func (c *productConverter) ToArrRows(models []*ProductModel) []usecase.ProductRow {
	rows := make([]usecase.ProductRow, 0, len(models))
	for _, model := range models {
		rows = append(rows, *c.ToRow(model))
	}

	return rows
}
