package usecase

// PRODUCT USECASE

// CreateProductReq — запрос на создание товара.
// Неуказанные флаги получают значения по умолчанию (in_stock=true, is_popular=false).
type CreateProductReq struct {
	Name      string
	InStock   *bool
	IsPopular *bool
	Category  string
	Image     *ProductImage
}

// UpdateProductReq — запрос на изменение товара.
// nil-поля сохраняют значения, записанные до правки.
type UpdateProductReq struct {
	ID        int64
	Name      *string
	InStock   *bool
	IsPopular *bool
	Category  *string
	Image     *ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (основа ключа объекта)
}

// REPOSITORIES

// ProductRow — строка таблицы products до нормализации.
// Указатели отражают колонки, которые могут отсутствовать или быть NULL
// в устаревших развёртываниях.
type ProductRow struct {
	ID        int64
	Name      string
	ImageURL  *string
	InStock   *bool
	IsPopular *bool
	Category  *string
}

// NewProductRow — данные для вставки строки товара.
type NewProductRow struct {
	Name      string
	ImageURL  *string
	InStock   bool
	IsPopular bool
	Category  string
}

// UpdateProductRow — полный набор колонок для обновления строки товара.
type UpdateProductRow struct {
	ID        int64
	Name      string
	ImageURL  *string
	InStock   bool
	IsPopular bool
	Category  string
}

// INFRASTRUCTURE

// UploadImageReq — запрос на загрузку изображения товара.
type UploadImageReq struct {
	Image ProductImage
}

// UploadImageRes — результат загрузки: ключ объекта и его публичный URL.
type UploadImageRes struct {
	ObjectKey string
	PublicURL string
}

// MAPPERS

func NewCreateProductReq(name string, inStock, isPopular *bool, category string, image *ProductImage) *CreateProductReq {
	return &CreateProductReq{
		Name:      name,
		InStock:   inStock,
		IsPopular: isPopular,
		Category:  category,
		Image:     image,
	}
}

func NewUpdateProductReq(id int64, name *string, inStock, isPopular *bool, category *string, image *ProductImage) *UpdateProductReq {
	return &UpdateProductReq{
		ID:        id,
		Name:      name,
		InStock:   inStock,
		IsPopular: isPopular,
		Category:  category,
		Image:     image,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageReq(image ProductImage) *UploadImageReq {
	return &UploadImageReq{Image: image}
}

func NewUploadImageRes(objectKey, publicURL string) *UploadImageRes {
	return &UploadImageRes{
		ObjectKey: objectKey,
		PublicURL: publicURL,
	}
}
