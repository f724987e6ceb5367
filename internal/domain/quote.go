package domain

// QuoteRequest — заявка на расценки, собранная из корзины покупателя.
type QuoteRequest struct {
	Email   string
	Company string
	Items   []QuoteItem
}

// QuoteItem — одна позиция заявки. Название и количество могут отсутствовать
// в полезной нагрузке; значения по умолчанию подставляются при составлении письма.
type QuoteItem struct {
	Name     *string
	Quantity *int
}

func NewQuoteRequest(email, company string, items []QuoteItem) *QuoteRequest {
	return &QuoteRequest{
		Email:   email,
		Company: company,
		Items:   items,
	}
}
