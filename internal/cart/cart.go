// Package cart реализует корзину заявок на расценки.
// Корзины живут только в памяти процесса и привязаны к cookie посетителя:
// перезапуск приложения или новая сессия браузера начинают с пустой корзины.
package cart

import "sync"

// Line — позиция корзины с денормализованными данными товара.
type Line struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	ImageURL  *string `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// Cart — упорядоченный набор позиций одного посетителя.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// AddItem добавляет товар в корзину. Если товар уже есть,
// количества суммируются; новая позиция получает количество не меньше 1.
func (c *Cart) AddItem(productID int64, name string, imageURL *string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity += quantity
			return
		}
	}

	if quantity < 1 {
		quantity = 1
	}

	c.lines = append(c.lines, Line{
		ProductID: productID,
		Name:      name,
		ImageURL:  imageURL,
		Quantity:  quantity,
	})
}

// UpdateQuantity выставляет количество позиции.
// Количество <= 0 удаляет позицию; неизвестный товар игнорируется.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}

		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}

		c.lines[i].Quantity = quantity
		return
	}
}

// RemoveItem удаляет позицию по идентификатору товара.
func (c *Cart) RemoveItem(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear опустошает корзину.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}

// Items возвращает копию позиций в порядке добавления.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Line, len(c.lines))
	copy(items, c.lines)
	return items
}

// TotalCount возвращает суммарное количество по всем позициям.
func (c *Cart) TotalCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}

	return total
}

// Store хранит корзины по идентификатору из cookie.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{
		carts: make(map[string]*Cart),
	}
}

// Get возвращает корзину по идентификатору, создавая её при первом обращении.
func (s *Store) Get(id string) *Cart {
	s.mu.RLock()
	c, ok := s.carts[id]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[id]; ok {
		return c
	}

	c = &Cart{}
	s.carts[id] = c
	return c
}

// Lookup возвращает корзину без создания.
func (s *Store) Lookup(id string) (*Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[id]
	return c, ok
}

// Clear опустошает корзину посетителя, если она существует.
func (s *Store) Clear(id string) {
	if c, ok := s.Lookup(id); ok {
		c.Clear()
	}
}
