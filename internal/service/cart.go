package service

import (
	"log/slog"
	"sync"

	"github.com/linemk/storefront/internal/domain/models"
)

// CartService — корзина текущей сессии. Живёт только в памяти: очищается при
// выходе пользователя и не переживает перезапуск процесса. Позиции хранятся в
// порядке первого добавления, на каждый product.id — не более одной позиции
type CartService struct {
	log *slog.Logger

	mu    sync.Mutex
	items []models.CartItem
}

type CartServiceInterface interface {
	Add(product models.Product)
	Remove(productID int)
	SetQuantity(productID, quantity int)
	Clear()
	Items() []models.CartItem
	Total() float64
}

func NewCartService(log *slog.Logger) *CartService {
	return &CartService{log: log}
}

// Add добавляет товар в корзину. Если позиция с таким product.id уже есть,
// её количество увеличивается на 1, позиция остаётся на прежнем месте.
// Иначе в конец добавляется новая позиция с количеством 1
func (c *CartService) Add(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity++
			c.log.Debug("cart item incremented", slog.Int("productID", product.ID), slog.Int("quantity", c.items[i].Quantity))
			return
		}
	}
	c.items = append(c.items, models.CartItem{Product: product, Quantity: 1})
	c.log.Debug("cart item added", slog.Int("productID", product.ID))
}

// Remove удаляет позицию по product.id; если её нет — no-op
func (c *CartService) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *CartService) removeLocked(productID int) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity выставляет количество для позиции. quantity <= 0 эквивалентно
// Remove; отсутствующий product.id — no-op
func (c *CartService) SetQuantity(productID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear опустошает корзину
func (c *CartService) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.log.Debug("cart cleared")
}

// Items возвращает копию позиций корзины в порядке добавления
func (c *CartService) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total возвращает сумму price*quantity по всем позициям.
// Считается заново при каждом вызове, ничего не кэшируется
func (c *CartService) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}
