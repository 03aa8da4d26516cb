package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/linemk/storefront/internal/domain/models"
	"github.com/linemk/storefront/internal/lib/token"
	"github.com/linemk/storefront/internal/storage"
)

var (
	ErrNoUser    = errors.New("no active user")
	ErrEmptyCart = errors.New("cart is empty")
)

// CurrentUserProvider — источник текущего пользователя для оформления заказа
type CurrentUserProvider interface {
	Current() *models.User
}

// CartAccess — операции корзины, нужные для оформления заказа
type CartAccess interface {
	Items() []models.CartItem
	Total() float64
	Clear()
}

// OrderService превращает снимок корзины в неизменяемый заказ и ведёт
// сохранённый список заказов (новые — в начале списка).
// orders — представление списка на момент последнего Load
type OrderService struct {
	log     *slog.Logger
	store   storage.Store
	session CurrentUserProvider
	cart    CartAccess

	mu     sync.Mutex
	orders []models.Order
}

type OrderServiceInterface interface {
	Place(ctx context.Context) (*models.Order, error)
	Load(ctx context.Context) ([]models.Order, error)
	Orders() []models.Order
}

func NewOrderService(log *slog.Logger, store storage.Store, session CurrentUserProvider, cart CartAccess) *OrderService {
	return &OrderService{
		log:     log,
		store:   store,
		session: session,
		cart:    cart,
	}
}

// Place оформляет заказ из текущей корзины.
// Предусловия: есть текущий пользователь и корзина не пуста; при нарушении
// возвращается соответствующая ошибка и ничего не изменяется.
// Успех: снимок позиций и суммы записывается новым заказом в начало
// сохранённого списка, затем корзина очищается. Шаги "сохранить список" и
// "очистить корзину" выполняются последовательно, без общей транзакции
func (s *OrderService) Place(ctx context.Context) (*models.Order, error) {
	const op = "service.OrderService.Place"
	logger := s.log.With(slog.String("op", op))

	if s.session.Current() == nil {
		logger.Warn("place order without active user")
		return nil, fmt.Errorf("%s: %w", op, ErrNoUser)
	}

	items := s.cart.Items()
	if len(items) == 0 {
		logger.Warn("place order with empty cart")
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyCart)
	}

	// сумма считается по снимку, чтобы заказ был согласован сам с собой
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	order := models.Order{
		ID:         token.New(),
		Date:       time.Now().UTC(),
		Items:      items,
		TotalPrice: total,
	}

	existing, err := s.load(ctx)
	if err != nil {
		logger.Error("failed to load orders", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to load orders: %w", op, err)
	}

	updated := append([]models.Order{order}, existing...)
	if err := storage.SetJSON(ctx, s.store, storage.KeyOrders, updated); err != nil {
		logger.Error("failed to persist orders", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to persist orders: %w", op, err)
	}

	s.mu.Lock()
	s.orders = updated
	s.mu.Unlock()

	s.cart.Clear()

	logger.Info("order placed",
		slog.String("orderID", order.ID),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.TotalPrice),
	)
	return &order, nil
}

// Load перечитывает сохранённый список заказов в представление сервиса.
// Вызывается при старте и после изменений; между вызовами представление
// может отставать от хранилища
func (s *OrderService) Load(ctx context.Context) ([]models.Order, error) {
	const op = "service.OrderService.Load"

	orders, err := s.load(ctx)
	if err != nil {
		s.log.Error("failed to load orders", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return orders, nil
}

// load читает список из хранилища; отсутствие или повреждённое значение
// означает пустой список
func (s *OrderService) load(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := storage.GetJSON(ctx, s.store, storage.KeyOrders, &orders); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.Order{}, nil
		}
		return nil, err
	}
	return orders, nil
}

// Orders возвращает копию списка заказов на момент последнего Load
func (s *OrderService) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}
