package testutil

import (
	"testing"

	"assetfolio/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Dec parses a decimal literal, failing the test on bad input.
func Dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal literal %q: %v", s, err)
	}
	return d
}

// CreateTestStock persists a stock with the given symbol, quantity, and buy price.
func CreateTestStock(t *testing.T, db *gorm.DB, symbol, quantity, buyPrice string) *models.Stock {
	t.Helper()

	stock := &models.Stock{
		AssetCommon: models.AssetCommon{
			Symbol:   symbol,
			Name:     symbol + " Inc",
			Quantity: Dec(t, quantity),
			BuyPrice: Dec(t, buyPrice),
		},
		Exchange: "NASDAQ",
		Sector:   "Technology",
	}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("failed to create test stock: %v", err)
	}
	return stock
}

// CreateTestBond persists a bond with the given symbol, quantity, and buy price.
func CreateTestBond(t *testing.T, db *gorm.DB, symbol, quantity, buyPrice string) *models.Bond {
	t.Helper()

	bond := &models.Bond{
		AssetCommon: models.AssetCommon{
			Symbol:   symbol,
			Name:     symbol + " Bond",
			Quantity: Dec(t, quantity),
			BuyPrice: Dec(t, buyPrice),
		},
		CouponRate: Dec(t, "4.25"),
		Issuer:     "US Treasury",
		BondType:   models.BondTypeTreasury,
	}
	if err := db.Create(bond).Error; err != nil {
		t.Fatalf("failed to create test bond: %v", err)
	}
	return bond
}

// CreateTestEtf persists an ETF with the given symbol, quantity, and buy price.
func CreateTestEtf(t *testing.T, db *gorm.DB, symbol, quantity, buyPrice string) *models.Etf {
	t.Helper()

	etf := &models.Etf{
		AssetCommon: models.AssetCommon{
			Symbol:   symbol,
			Name:     symbol + " ETF",
			Quantity: Dec(t, quantity),
			BuyPrice: Dec(t, buyPrice),
		},
		Exchange: "NYSE",
		Category: "Index",
	}
	if err := db.Create(etf).Error; err != nil {
		t.Fatalf("failed to create test etf: %v", err)
	}
	return etf
}

// CreateTestCrypto persists a crypto holding with the given symbol, quantity,
// and buy price.
func CreateTestCrypto(t *testing.T, db *gorm.DB, symbol, quantity, buyPrice string) *models.Crypto {
	t.Helper()

	crypto := &models.Crypto{
		AssetCommon: models.AssetCommon{
			Symbol:   symbol,
			Name:     symbol + " Coin",
			Quantity: Dec(t, quantity),
			BuyPrice: Dec(t, buyPrice),
		},
		Blockchain: "Bitcoin",
	}
	if err := db.Create(crypto).Error; err != nil {
		t.Fatalf("failed to create test crypto: %v", err)
	}
	return crypto
}

// CreateTestCash persists a cash holding with the given quantity and buy price.
func CreateTestCash(t *testing.T, db *gorm.DB, symbol, quantity, buyPrice string) *models.Cash {
	t.Helper()

	cash := &models.Cash{
		AssetCommon: models.AssetCommon{
			Symbol:   symbol,
			Name:     "Savings " + symbol,
			Quantity: Dec(t, quantity),
			BuyPrice: Dec(t, buyPrice),
		},
		Currency:    "USD",
		AccountType: models.CashAccountSavings,
		BankName:    "Test Bank",
	}
	if err := db.Create(cash).Error; err != nil {
		t.Fatalf("failed to create test cash holding: %v", err)
	}
	return cash
}
