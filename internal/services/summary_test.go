package services_test

import (
	"context"
	"testing"

	"assetfolio/internal/models"
	"assetfolio/internal/registry"
	"assetfolio/internal/services"
	"assetfolio/internal/testutil"

	"github.com/shopspring/decimal"
)

func TestGetPortfolioSummary(t *testing.T) {
	svc, _, teardown := newService(t, map[string]string{
		"AAPL": "155.00",
		"BTC":  "40000",
	})
	defer teardown()

	ctx := context.Background()
	_, err := svc.CreateAsset(ctx, models.AssetTypeStock, registry.Attributes{
		Symbol:   "AAPL",
		Name:     "Apple Inc",
		Quantity: decimal.RequireFromString("10"),
		BuyPrice: decimal.RequireFromString("150.00"),
	})
	testutil.AssertNoError(t, err)
	_, err = svc.CreateAsset(ctx, models.AssetTypeCrypto, registry.Attributes{
		Symbol:   "BTC",
		Name:     "Bitcoin",
		Quantity: decimal.RequireFromString("0.5"),
		BuyPrice: decimal.RequireFromString("30000"),
	})
	testutil.AssertNoError(t, err)

	summary, err := svc.GetPortfolioSummary(ctx)
	testutil.AssertNoError(t, err)

	// Stock: cost 1500, value 1550. Crypto: cost 15000, value 20000.
	testutil.AssertDecimalEqual(t, summary.TotalCostBasis, "16500.00")
	testutil.AssertDecimalEqual(t, summary.TotalValue, "21550.00")
	testutil.AssertDecimalEqual(t, summary.TotalGainLoss, "5050.00")
	testutil.AssertDecimalEqual(t, summary.TotalGainLossPct, "30.61")

	if summary.TotalAssets != 2 {
		t.Errorf("expected 2 assets, got %d", summary.TotalAssets)
	}
	if len(summary.Assets) != 2 {
		t.Errorf("expected 2 enriched assets, got %d", len(summary.Assets))
	}

	if len(summary.ByType) != 2 {
		t.Fatalf("expected breakdown for 2 types, got %d", len(summary.ByType))
	}
	stock := summary.ByType[models.AssetTypeStock]
	if stock.Count != 1 {
		t.Errorf("expected 1 stock, got %d", stock.Count)
	}
	testutil.AssertDecimalEqual(t, stock.Value, "1550.00")
	testutil.AssertDecimalEqual(t, stock.Allocation, "7.19")

	crypto := summary.ByType[models.AssetTypeCrypto]
	if crypto.Count != 1 {
		t.Errorf("expected 1 crypto, got %d", crypto.Count)
	}
	testutil.AssertDecimalEqual(t, crypto.Value, "20000.00")
	testutil.AssertDecimalEqual(t, crypto.Allocation, "92.81")
}

func TestGetPortfolioSummaryEmpty(t *testing.T) {
	svc, _, teardown := newService(t, nil)
	defer teardown()

	summary, err := svc.GetPortfolioSummary(context.Background())
	testutil.AssertNoError(t, err)

	testutil.AssertDecimalEqual(t, summary.TotalValue, "0")
	testutil.AssertDecimalEqual(t, summary.TotalCostBasis, "0")
	testutil.AssertDecimalEqual(t, summary.TotalGainLoss, "0")
	testutil.AssertDecimalEqual(t, summary.TotalGainLossPct, "0")
	if summary.TotalAssets != 0 {
		t.Errorf("expected 0 assets, got %d", summary.TotalAssets)
	}
	if len(summary.ByType) != 0 {
		t.Errorf("expected empty breakdown, got %v", summary.ByType)
	}
	if len(summary.TopGainers) != 0 || len(summary.TopLosers) != 0 {
		t.Errorf("expected no movers in an empty portfolio")
	}
}

func TestGetPortfolioSummarySkipsAbsentTypes(t *testing.T) {
	svc, _, teardown := newService(t, nil)
	defer teardown()

	ctx := context.Background()
	_, err := svc.CreateAsset(ctx, models.AssetTypeCash, validAttrs("USD-SAV"))
	testutil.AssertNoError(t, err)

	summary, err := svc.GetPortfolioSummary(ctx)
	testutil.AssertNoError(t, err)

	if len(summary.ByType) != 1 {
		t.Fatalf("expected breakdown for present types only, got %d entries", len(summary.ByType))
	}
	if _, ok := summary.ByType[models.AssetTypeCash]; !ok {
		t.Error("expected a CASH breakdown entry")
	}

	// A lone holding owns the whole portfolio.
	testutil.AssertDecimalEqual(t, summary.ByType[models.AssetTypeCash].Allocation, "100.00")
}

func TestTopMovers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	reg := registry.New(db)
	prices := newFakePrices(map[string]string{
		"WIN1":  "200", // +100%
		"WIN2":  "150", // +50%
		"FLAT":  "100", // 0%
		"LOSS1": "80",  // -20%
		"LOSS2": "40",  // -60%
	})
	svc := services.NewAssetService(reg, prices, 2)

	ctx := context.Background()
	for _, sym := range []string{"WIN1", "WIN2", "FLAT", "LOSS1", "LOSS2"} {
		_, err := svc.CreateAsset(ctx, models.AssetTypeStock, registry.Attributes{
			Symbol:   sym,
			Name:     sym + " Corp",
			Quantity: decimal.RequireFromString("1"),
			BuyPrice: decimal.RequireFromString("100"),
		})
		testutil.AssertNoError(t, err)
	}

	summary, err := svc.GetPortfolioSummary(ctx)
	testutil.AssertNoError(t, err)

	if len(summary.TopGainers) != 2 {
		t.Fatalf("expected 2 top gainers, got %d", len(summary.TopGainers))
	}
	if summary.TopGainers[0].Symbol != "WIN1" || summary.TopGainers[1].Symbol != "WIN2" {
		t.Errorf("expected gainers [WIN1 WIN2], got [%s %s]",
			summary.TopGainers[0].Symbol, summary.TopGainers[1].Symbol)
	}

	if len(summary.TopLosers) != 2 {
		t.Fatalf("expected 2 top losers, got %d", len(summary.TopLosers))
	}
	if summary.TopLosers[0].Symbol != "LOSS2" || summary.TopLosers[1].Symbol != "LOSS1" {
		t.Errorf("expected losers [LOSS2 LOSS1], got [%s %s]",
			summary.TopLosers[0].Symbol, summary.TopLosers[1].Symbol)
	}
}
