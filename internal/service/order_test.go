package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/linemk/storefront/internal/service"
	"github.com/linemk/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
)

func newOrderFixture(store storage.Store) (*service.OrderService, *service.SessionService, *service.CartService) {
	cart := service.NewCartService(testLogger())
	sessions := service.NewSessionService(testLogger(), store, cart)
	orders := service.NewOrderService(testLogger(), store, sessions, cart)
	return orders, sessions, cart
}

func login(t *testing.T, sessions *service.SessionService) {
	t.Helper()
	_, err := sessions.Login(context.Background(), "test@zignuts.com", "123456")
	assert.NoError(t, err)
}

func TestOrderService_Place_NoUser(t *testing.T) {
	store := newMemStore()
	orders, _, cart := newOrderFixture(store)
	cart.Add(product(1, "backpack", 10.0))

	order, err := orders.Place(context.Background())
	assert.ErrorIs(t, err, service.ErrNoUser)
	assert.Nil(t, order)
	assert.Len(t, cart.Items(), 1, "cart must stay intact on failure")

	_, err = store.Get(context.Background(), storage.KeyOrders)
	assert.ErrorIs(t, err, storage.ErrNotFound, "order list must stay untouched")
}

func TestOrderService_Place_EmptyCart(t *testing.T) {
	store := newMemStore()
	orders, sessions, _ := newOrderFixture(store)
	login(t, sessions)

	order, err := orders.Place(context.Background())
	assert.ErrorIs(t, err, service.ErrEmptyCart)
	assert.Nil(t, order)

	loaded, err := orders.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, loaded, "failed place must not create an order")
}

func TestOrderService_Place_Success(t *testing.T) {
	store := newMemStore()
	orders, sessions, cart := newOrderFixture(store)
	login(t, sessions)

	// (P1, $10, qty 2) + (P2, $5, qty 1) = $25.00
	cart.Add(product(1, "backpack", 10.0))
	cart.Add(product(1, "backpack", 10.0))
	cart.Add(product(2, "t-shirt", 5.0))

	before := time.Now().UTC()
	order, err := orders.Place(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.NotEmpty(t, order.ID)
	assert.InDelta(t, 25.0, order.TotalPrice, 0.0001)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 1, order.Items[1].Quantity)
	assert.False(t, order.Date.Before(before.Add(-time.Second)))

	assert.Empty(t, cart.Items(), "cart must be cleared after placing the order")

	// заказ должен оказаться в начале сохранённого списка
	loaded, err := orders.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, order.ID, loaded[0].ID)
}

func TestOrderService_Place_NewestFirst(t *testing.T) {
	store := newMemStore()
	orders, sessions, cart := newOrderFixture(store)
	login(t, sessions)

	cart.Add(product(1, "backpack", 10.0))
	first, err := orders.Place(context.Background())
	assert.NoError(t, err)

	cart.Add(product(2, "t-shirt", 5.0))
	second, err := orders.Place(context.Background())
	assert.NoError(t, err)

	loaded, err := orders.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.Equal(t, second.ID, loaded[0].ID, "latest order must be at index 0")
	assert.Equal(t, first.ID, loaded[1].ID)
}

func TestOrderService_Order_IsSnapshot(t *testing.T) {
	store := newMemStore()
	orders, sessions, cart := newOrderFixture(store)
	login(t, sessions)

	cart.Add(product(1, "backpack", 10.0))
	order, err := orders.Place(context.Background())
	assert.NoError(t, err)

	// изменения корзины после оформления не должны затронуть заказ
	cart.Add(product(2, "t-shirt", 5.0))
	cart.SetQuantity(2, 10)

	loaded, err := orders.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, loaded[0].Items, 1)
	assert.Equal(t, order.TotalPrice, loaded[0].TotalPrice)
}

func TestOrderService_Load_SurvivesRestart(t *testing.T) {
	store := newMemStore()
	orders, sessions, cart := newOrderFixture(store)
	login(t, sessions)

	cart.Add(product(1, "backpack", 10.0))
	placed, err := orders.Place(context.Background())
	assert.NoError(t, err)

	// перезапуск: новые сервисы поверх того же хранилища
	restarted, _, _ := newOrderFixture(store)
	assert.Empty(t, restarted.Orders(), "view is empty until the first Load")

	loaded, err := restarted.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, placed.ID, loaded[0].ID)
	assert.Len(t, restarted.Orders(), 1)
}

func TestOrderService_Load_CorruptedList(t *testing.T) {
	store := newMemStore()
	assert.NoError(t, store.Set(context.Background(), storage.KeyOrders, []byte("[not json")))

	orders, _, _ := newOrderFixture(store)
	loaded, err := orders.Load(context.Background())
	assert.NoError(t, err, "corrupted list is treated as empty")
	assert.Empty(t, loaded)
}
