package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/linemk/storefront/internal/domain/models"
	"github.com/linemk/storefront/internal/service"
)

// AddItemRequest — тело запроса на добавление товара в корзину.
// Клиент передаёт товар целиком, как его вернул каталог
type AddItemRequest struct {
	Product models.Product `json:"product"`
}

// SetQuantityRequest — тело запроса на изменение количества
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse — текущее состояние корзины
type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func writeCart(w http.ResponseWriter, logger *slog.Logger, cart service.CartServiceInterface) {
	resp := CartResponse{Items: cart.Items(), Total: cart.Total()}
	if resp.Items == nil {
		resp.Items = []models.CartItem{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// GetCartHandler обрабатывает запрос GET /api/cart
func GetCartHandler(log *slog.Logger, cart service.CartServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.GetCartHandler"
		writeCart(w, log.With(slog.String("op", op)), cart)
	}
}

// AddCartItemHandler обрабатывает запрос POST /api/cart/items
func AddCartItemHandler(log *slog.Logger, cart service.CartServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.AddCartItemHandler"
		logger := log.With(slog.String("op", op))

		var req AddItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		// товар без id или с отрицательной ценой в корзину не попадает
		if req.Product.ID <= 0 || req.Product.Price < 0 {
			logger.Error("invalid request: bad product", slog.Int("productID", req.Product.ID))
			http.Error(w, "validation error", http.StatusBadRequest)
			return
		}

		cart.Add(req.Product)
		writeCart(w, logger, cart)
	}
}

// productIDParam извлекает productID из URL
func productIDParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "productID"))
}

// SetCartItemQuantityHandler обрабатывает запрос PUT /api/cart/items/{productID}.
// Количество <= 0 удаляет позицию
func SetCartItemQuantityHandler(log *slog.Logger, cart service.CartServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.SetCartItemQuantityHandler"
		logger := log.With(slog.String("op", op))

		productID, err := productIDParam(r)
		if err != nil {
			logger.Error("invalid productID", slog.Any("error", err))
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}

		var req SetQuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		cart.SetQuantity(productID, req.Quantity)
		writeCart(w, logger, cart)
	}
}

// RemoveCartItemHandler обрабатывает запрос DELETE /api/cart/items/{productID}
func RemoveCartItemHandler(log *slog.Logger, cart service.CartServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.RemoveCartItemHandler"
		logger := log.With(slog.String("op", op))

		productID, err := productIDParam(r)
		if err != nil {
			logger.Error("invalid productID", slog.Any("error", err))
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}

		cart.Remove(productID)
		writeCart(w, logger, cart)
	}
}

// ClearCartHandler обрабатывает запрос DELETE /api/cart
func ClearCartHandler(log *slog.Logger, cart service.CartServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ClearCartHandler"
		logger := log.With(slog.String("op", op))

		cart.Clear()
		writeCart(w, logger, cart)
	}
}
