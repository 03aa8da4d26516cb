package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/linemk/storefront/internal/domain/models"
	"github.com/linemk/storefront/internal/service"
)

// OrdersResponse — список заказов, новые в начале
type OrdersResponse struct {
	Orders []models.Order `json:"orders"`
}

// PlaceOrderHandler обрабатывает запрос POST /api/orders: оформляет заказ из
// текущей корзины
func PlaceOrderHandler(log *slog.Logger, orders service.OrderServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.PlaceOrderHandler"
		logger := log.With(slog.String("op", op))

		order, err := orders.Place(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNoUser):
				http.Error(w, "no active user", http.StatusUnauthorized)
			case errors.Is(err, service.ErrEmptyCart):
				http.Error(w, "cart is empty", http.StatusBadRequest)
			default:
				logger.Error("failed to place order", slog.Any("error", err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(order); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
		}
	}
}

// ListOrdersHandler обрабатывает запрос GET /api/orders: перечитывает
// сохранённый список и возвращает его
func ListOrdersHandler(log *slog.Logger, orders service.OrderServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListOrdersHandler"
		logger := log.With(slog.String("op", op))

		list, err := orders.Load(r.Context())
		if err != nil {
			logger.Error("failed to load orders", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []models.Order{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(OrdersResponse{Orders: list}); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}
