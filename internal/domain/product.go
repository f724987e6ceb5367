package domain

// Product описывает позицию оптового каталога.
// Флаги и категория всегда определены: значения по умолчанию
// подставляются на границе чтения, даже если строка в БД их не содержит.
type Product struct {
	ID        int64
	Name      string
	ImageURL  *string // Ссылка на изображение: абсолютный URL либо путь в хранилище
	InStock   bool
	IsPopular bool
	Category  string
}

func NewProduct(name string, imageURL *string, inStock, isPopular bool, category string) *Product {
	return &Product{
		Name:      name,
		ImageURL:  imageURL,
		InStock:   inStock,
		IsPopular: isPopular,
		Category:  category,
	}
}
