package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/linemk/storefront/internal/domain/models"
)

// ProductCatalog — внешний источник товаров (см. internal/catalog)
type ProductCatalog interface {
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id int) (*models.Product, error)
}

// ListProductsHandler обрабатывает запрос GET /api/products:
// проксирует список товаров внешнего каталога
func ListProductsHandler(log *slog.Logger, catalog ProductCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListProductsHandler"
		logger := log.With(slog.String("op", op))

		products, err := catalog.Products(r.Context())
		if err != nil {
			logger.Error("failed to fetch products", slog.Any("error", err))
			http.Error(w, "failed to fetch products", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}

// GetProductHandler обрабатывает запрос GET /api/products/{productID}
func GetProductHandler(log *slog.Logger, catalog ProductCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.GetProductHandler"
		logger := log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "productID"))
		if err != nil {
			logger.Error("invalid productID", slog.Any("error", err))
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}

		product, err := catalog.Product(r.Context(), id)
		if err != nil {
			logger.Error("failed to fetch product", slog.Any("error", err))
			http.Error(w, "failed to fetch product", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}
