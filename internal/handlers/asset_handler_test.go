package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/registry"
	"assetfolio/internal/services"
	"assetfolio/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// mockAssetService implements services.AssetServicer with scriptable
// function fields; unset methods panic to catch unintended calls.
type mockAssetService struct {
	listAssets          func(ctx context.Context) ([]services.EnrichedAsset, error)
	getAssetByID        func(ctx context.Context, id string) (*services.EnrichedAsset, error)
	getAssetsByType     func(ctx context.Context, assetType models.AssetType) ([]services.EnrichedAsset, error)
	searchAssets        func(ctx context.Context, query string) ([]services.EnrichedAsset, error)
	createAsset         func(ctx context.Context, assetType models.AssetType, attrs registry.Attributes) (*services.EnrichedAsset, error)
	updateAsset         func(ctx context.Context, id string, attrs registry.Attributes) (*services.EnrichedAsset, error)
	deleteAsset         func(ctx context.Context, id string) error
	getPortfolioSummary func(ctx context.Context) (*services.PortfolioSummary, error)
}

func (m *mockAssetService) ListAssets(ctx context.Context) ([]services.EnrichedAsset, error) {
	return m.listAssets(ctx)
}

func (m *mockAssetService) GetAssetByID(ctx context.Context, id string) (*services.EnrichedAsset, error) {
	return m.getAssetByID(ctx, id)
}

func (m *mockAssetService) GetAssetsByType(ctx context.Context, assetType models.AssetType) ([]services.EnrichedAsset, error) {
	return m.getAssetsByType(ctx, assetType)
}

func (m *mockAssetService) SearchAssets(ctx context.Context, query string) ([]services.EnrichedAsset, error) {
	return m.searchAssets(ctx, query)
}

func (m *mockAssetService) CreateAsset(ctx context.Context, assetType models.AssetType, attrs registry.Attributes) (*services.EnrichedAsset, error) {
	return m.createAsset(ctx, assetType, attrs)
}

func (m *mockAssetService) UpdateAsset(ctx context.Context, id string, attrs registry.Attributes) (*services.EnrichedAsset, error) {
	return m.updateAsset(ctx, id, attrs)
}

func (m *mockAssetService) DeleteAsset(ctx context.Context, id string) error {
	return m.deleteAsset(ctx, id)
}

func (m *mockAssetService) GetPortfolioSummary(ctx context.Context) (*services.PortfolioSummary, error) {
	return m.getPortfolioSummary(ctx)
}

func setupRouter(svc services.AssetServicer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.Register()

	h := NewAssetHandler(svc)
	router := gin.New()

	assets := router.Group("/api/v1/assets")
	assets.POST("", h.CreateAsset)
	assets.GET("", h.ListAssets)
	assets.GET("/search", h.SearchAssets)
	assets.GET("/type/:type", h.GetAssetsByType)
	assets.GET("/:id", h.GetAssetByID)
	assets.PUT("/:id", h.UpdateAsset)
	assets.DELETE("/:id", h.DeleteAsset)
	router.GET("/api/v1/portfolio/summary", h.GetPortfolioSummary)

	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return body.Error.Code
}

func sampleAsset() *services.EnrichedAsset {
	return &services.EnrichedAsset{
		ID:           "0198c5f0-1111-7000-8000-000000000001",
		Symbol:       "AAPL",
		Name:         "Apple Inc",
		Type:         models.AssetTypeStock,
		Quantity:     decimal.RequireFromString("10"),
		BuyPrice:     decimal.RequireFromString("150.00"),
		CurrentPrice: decimal.RequireFromString("155.00"),
		CurrentValue: decimal.RequireFromString("1550.00"),
		CostBasis:    decimal.RequireFromString("1500.00"),
		GainLoss:     decimal.RequireFromString("50.00"),
	}
}

func TestCreateAssetHandler(t *testing.T) {
	var gotType models.AssetType
	var gotAttrs registry.Attributes
	svc := &mockAssetService{
		createAsset: func(_ context.Context, assetType models.AssetType, attrs registry.Attributes) (*services.EnrichedAsset, error) {
			gotType = assetType
			gotAttrs = attrs
			return sampleAsset(), nil
		},
	}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodPost, "/api/v1/assets", gin.H{
		"asset_type": "STOCK",
		"symbol":     "AAPL",
		"name":       "Apple Inc",
		"quantity":   "10",
		"buy_price":  "150.00",
		"exchange":   "NASDAQ",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if gotType != models.AssetTypeStock {
		t.Errorf("expected STOCK, got %s", gotType)
	}
	if gotAttrs.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %q", gotAttrs.Symbol)
	}
	if gotAttrs.Extra["exchange"] != "NASDAQ" {
		t.Errorf("expected exchange in extras, got %v", gotAttrs.Extra)
	}
}

func TestCreateAssetHandlerRejectsBadType(t *testing.T) {
	svc := &mockAssetService{}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodPost, "/api/v1/assets", gin.H{
		"asset_type": "EQUITY",
		"symbol":     "AAPL",
		"name":       "Apple Inc",
		"quantity":   "10",
		"buy_price":  "150.00",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT, got %s", code)
	}
}

func TestCreateAssetHandlerRejectsMissingFields(t *testing.T) {
	svc := &mockAssetService{}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodPost, "/api/v1/assets", gin.H{
		"asset_type": "STOCK",
		"symbol":     "AAPL",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateAssetHandlerRejectsBadCurrency(t *testing.T) {
	svc := &mockAssetService{}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodPost, "/api/v1/assets", gin.H{
		"asset_type": "CASH",
		"symbol":     "USD-SAV",
		"name":       "Savings",
		"quantity":   "1000",
		"buy_price":  "1.00",
		"currency":   "DOLLARS",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid currency code, got %d", w.Code)
	}
}

func TestListAssetsHandler(t *testing.T) {
	svc := &mockAssetService{
		listAssets: func(context.Context) ([]services.EnrichedAsset, error) {
			return []services.EnrichedAsset{*sampleAsset()}, nil
		},
	}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/assets", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var assets []services.EnrichedAsset
	if err := json.Unmarshal(w.Body.Bytes(), &assets); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(assets) != 1 || assets[0].Symbol != "AAPL" {
		t.Errorf("unexpected payload: %v", assets)
	}
}

func TestGetAssetByIDHandlerNotFound(t *testing.T) {
	svc := &mockAssetService{
		getAssetByID: func(context.Context, string) (*services.EnrichedAsset, error) {
			return nil, apperrors.ErrAssetNotFound
		},
	}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/assets/missing-id", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "ASSET_NOT_FOUND" {
		t.Errorf("expected ASSET_NOT_FOUND, got %s", code)
	}
}

func TestGetAssetsByTypeHandler(t *testing.T) {
	var gotType models.AssetType
	svc := &mockAssetService{
		getAssetsByType: func(_ context.Context, assetType models.AssetType) ([]services.EnrichedAsset, error) {
			gotType = assetType
			return nil, nil
		},
	}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/assets/type/CRYPTO", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotType != models.AssetTypeCrypto {
		t.Errorf("expected CRYPTO, got %s", gotType)
	}
}

func TestGetAssetsByTypeHandlerUnknown(t *testing.T) {
	svc := &mockAssetService{
		getAssetsByType: func(context.Context, models.AssetType) ([]services.EnrichedAsset, error) {
			return nil, apperrors.ErrUnknownAssetType
		},
	}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/assets/type/NFT", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "UNKNOWN_ASSET_TYPE" {
		t.Errorf("expected UNKNOWN_ASSET_TYPE, got %s", code)
	}
}

func TestSearchAssetsHandlerPassesQuery(t *testing.T) {
	var gotQuery string
	svc := &mockAssetService{
		searchAssets: func(_ context.Context, query string) ([]services.EnrichedAsset, error) {
			gotQuery = query
			return nil, nil
		},
	}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/assets/search?q=apple", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotQuery != "apple" {
		t.Errorf("expected query %q, got %q", "apple", gotQuery)
	}
}

func TestUpdateAssetHandler(t *testing.T) {
	var gotID string
	svc := &mockAssetService{
		updateAsset: func(_ context.Context, id string, _ registry.Attributes) (*services.EnrichedAsset, error) {
			gotID = id
			return sampleAsset(), nil
		},
	}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodPut, "/api/v1/assets/abc-123", gin.H{
		"symbol":    "AAPL",
		"name":      "Apple Inc",
		"quantity":  "25",
		"buy_price": "140.00",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotID != "abc-123" {
		t.Errorf("expected id abc-123, got %q", gotID)
	}
}

func TestDeleteAssetHandler(t *testing.T) {
	svc := &mockAssetService{
		deleteAsset: func(context.Context, string) error { return nil },
	}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodDelete, "/api/v1/assets/abc-123", nil)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestGetPortfolioSummaryHandler(t *testing.T) {
	svc := &mockAssetService{
		getPortfolioSummary: func(context.Context) (*services.PortfolioSummary, error) {
			return &services.PortfolioSummary{
				TotalValue:  decimal.RequireFromString("21550.00"),
				TotalAssets: 2,
			}, nil
		},
	}
	router := setupRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/portfolio/summary", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var summary services.PortfolioSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if summary.TotalAssets != 2 {
		t.Errorf("expected 2 total assets, got %d", summary.TotalAssets)
	}
}
