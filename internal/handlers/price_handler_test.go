package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// mockPriceService resolves prices from a fixed table.
type mockPriceService struct {
	prices map[string]decimal.Decimal
}

func (m *mockPriceService) CurrentPrice(_ context.Context, symbol string) (decimal.Decimal, bool) {
	price, ok := m.prices[symbol]
	return price, ok
}

func (m *mockPriceService) CurrentPrices(ctx context.Context, symbols []string) map[string]decimal.Decimal {
	result := make(map[string]decimal.Decimal)
	for _, sym := range symbols {
		if price, ok := m.CurrentPrice(ctx, sym); ok {
			result[sym] = price
		}
	}
	return result
}

func (m *mockPriceService) IsValidSymbol(ctx context.Context, symbol string) bool {
	price, ok := m.CurrentPrice(ctx, symbol)
	return ok && price.Sign() > 0
}

func setupPriceRouter(svc *mockPriceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPriceHandler(svc)
	router := gin.New()
	router.GET("/api/v1/prices/:symbol", h.GetPrice)
	return router
}

func TestGetPriceHandler(t *testing.T) {
	svc := &mockPriceService{prices: map[string]decimal.Decimal{
		"AAPL": decimal.RequireFromString("155.00"),
	}}
	router := setupPriceRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/prices/AAPL", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp PriceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %q", resp.Symbol)
	}
	if !resp.Price.Equal(decimal.RequireFromString("155.00")) {
		t.Errorf("expected price 155.00, got %s", resp.Price)
	}
}

func TestGetPriceHandlerNoQuote(t *testing.T) {
	svc := &mockPriceService{prices: map[string]decimal.Decimal{}}
	router := setupPriceRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/prices/GHOST", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %s", code)
	}
}
