package catalog_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/linemk/storefront/internal/catalog"
	"github.com/stretchr/testify/assert"
)

const productsJSON = `[
  {"id":1,"title":"Backpack","price":109.95,"description":"A backpack","category":"men's clothing",
   "image":"https://example.com/1.png","rating":{"rate":3.9,"count":120}},
  {"id":2,"title":"T-Shirt","price":22.3,"description":"A t-shirt","category":"men's clothing",
   "image":"https://example.com/2.png","rating":{"rate":4.1,"count":259}}
]`

const productJSON = `{"id":1,"title":"Backpack","price":109.95,"description":"A backpack",
 "category":"men's clothing","image":"https://example.com/1.png","rating":{"rate":3.9,"count":120}}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestClient_Products(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productsJSON))
	}))
	defer srv.Close()

	client := catalog.New(testLogger(), srv.URL, time.Second)
	products, err := client.Products(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Backpack", products[0].Title)
	assert.InDelta(t, 109.95, products[0].Price, 0.0001)
	assert.InDelta(t, 3.9, products[0].Rating.Rate, 0.0001)
	assert.Equal(t, 120, products[0].Rating.Count)
}

func TestClient_Product(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productJSON))
	}))
	defer srv.Close()

	client := catalog.New(testLogger(), srv.URL, time.Second)
	product, err := client.Product(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, "Backpack", product.Title)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := catalog.New(testLogger(), srv.URL, time.Second)
	_, err := client.Products(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	client := catalog.New(testLogger(), srv.URL, time.Second)
	_, err := client.Products(context.Background())
	assert.Error(t, err)
}
