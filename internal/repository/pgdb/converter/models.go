package converter

// ProductModel представляет запись таблицы products в PostgreSQL.
// Указатели соответствуют колонкам, допускающим NULL, а также колонкам,
// которых может не быть в устаревшей схеме.
type ProductModel struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	ImageURL  *string `db:"image_url"`
	InStock   *bool   `db:"in_stock"`
	IsPopular *bool   `db:"is_popular"`
	Category  *string `db:"category"`
}
