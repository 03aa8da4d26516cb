package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/linemk/storefront/internal/domain/models"
)

// Client — read-only клиент внешнего каталога товаров (Fake Store style API).
// Каталог не принадлежит ядру витрины: ответы не валидируются и не кэшируются
type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
}

func New(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		log:     log,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Products возвращает полный список товаров каталога
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	const op = "catalog.Client.Products"

	var products []models.Product
	if err := c.getJSON(ctx, c.baseURL+"/products", &products); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// Product возвращает один товар по идентификатору
func (c *Client) Product(ctx context.Context, id int) (*models.Product, error) {
	const op = "catalog.Client.Product"

	var product models.Product
	if err := c.getJSON(ctx, fmt.Sprintf("%s/products/%d", c.baseURL, id), &product); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &product, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	c.log.Debug("fetching catalog", slog.String("url", url))
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
