package registry

import (
	"time"

	"assetfolio/internal/models"

	"github.com/shopspring/decimal"
)

// Per-kind field application. Each function copies the kind-specific keys
// it recognizes out of the generic extra map; unknown keys are ignored.

func applyStockFields(rec models.AssetRecord, extra map[string]interface{}) {
	s := rec.(*models.Stock)
	if v, ok := stringField(extra, "exchange"); ok {
		s.Exchange = v
	}
	if v, ok := stringField(extra, "sector"); ok {
		s.Sector = v
	}
	if v, ok := decimalField(extra, "dividend_yield"); ok {
		s.DividendYield = v
	}
	if v, ok := stringField(extra, "market_cap"); ok {
		s.MarketCap = v
	}
}

func applyBondFields(rec models.AssetRecord, extra map[string]interface{}) {
	b := rec.(*models.Bond)
	if v, ok := decimalField(extra, "coupon_rate"); ok {
		b.CouponRate = v
	}
	if v, ok := timeField(extra, "maturity_date"); ok {
		b.MaturityDate = v
	}
	if v, ok := stringField(extra, "issuer"); ok {
		b.Issuer = v
	}
	if v, ok := stringField(extra, "bond_type"); ok {
		b.BondType = models.BondType(v)
	}
	if v, ok := stringField(extra, "credit_rating"); ok {
		b.CreditRating = v
	}
}

func applyEtfFields(rec models.AssetRecord, extra map[string]interface{}) {
	e := rec.(*models.Etf)
	if v, ok := stringField(extra, "exchange"); ok {
		e.Exchange = v
	}
	if v, ok := decimalField(extra, "expense_ratio"); ok {
		e.ExpenseRatio = v
	}
	if v, ok := stringField(extra, "category"); ok {
		e.Category = v
	}
	if v, ok := intField(extra, "holdings_count"); ok {
		e.HoldingsCount = v
	}
	if v, ok := decimalField(extra, "dividend_yield"); ok {
		e.DividendYield = v
	}
}

func applyMutualFundFields(rec models.AssetRecord, extra map[string]interface{}) {
	m := rec.(*models.MutualFund)
	if v, ok := stringField(extra, "fund_family"); ok {
		m.FundFamily = v
	}
	if v, ok := decimalField(extra, "expense_ratio"); ok {
		m.ExpenseRatio = v
	}
	if v, ok := stringField(extra, "category"); ok {
		m.Category = v
	}
	if v, ok := decimalField(extra, "minimum_investment"); ok {
		m.MinimumInvestment = v
	}
	if v, ok := decimalField(extra, "dividend_yield"); ok {
		m.DividendYield = v
	}
}

func applyCryptoFields(rec models.AssetRecord, extra map[string]interface{}) {
	c := rec.(*models.Crypto)
	if v, ok := stringField(extra, "blockchain"); ok {
		c.Blockchain = v
	}
	if v, ok := stringField(extra, "wallet_address"); ok {
		c.WalletAddress = v
	}
	if v, ok := boolField(extra, "staking_enabled"); ok {
		c.StakingEnabled = v
	}
	if v, ok := decimalField(extra, "staking_apy"); ok {
		c.StakingApy = v
	}
}

func applyRealEstateFields(rec models.AssetRecord, extra map[string]interface{}) {
	r := rec.(*models.RealEstate)
	if v, ok := stringField(extra, "property_address"); ok {
		r.PropertyAddress = v
	}
	if v, ok := stringField(extra, "property_type"); ok {
		r.PropertyType = models.PropertyType(v)
	}
	if v, ok := decimalField(extra, "rental_income"); ok {
		r.RentalIncome = v
	}
	if v, ok := intField(extra, "square_footage"); ok {
		r.SquareFootage = v
	}
	if v, ok := intField(extra, "year_built"); ok {
		r.YearBuilt = v
	}
}

func applyCashFields(rec models.AssetRecord, extra map[string]interface{}) {
	c := rec.(*models.Cash)
	if v, ok := stringField(extra, "currency"); ok {
		c.Currency = v
	}
	if v, ok := stringField(extra, "account_type"); ok {
		c.AccountType = models.CashAccountType(v)
	}
	if v, ok := decimalField(extra, "interest_rate"); ok {
		c.InterestRate = v
	}
	if v, ok := stringField(extra, "bank_name"); ok {
		c.BankName = v
	}
}

func stringField(extra map[string]interface{}, key string) (string, bool) {
	v, ok := extra[key].(string)
	return v, ok && v != ""
}

func decimalField(extra map[string]interface{}, key string) (decimal.Decimal, bool) {
	v, ok := extra[key].(decimal.Decimal)
	return v, ok
}

func intField(extra map[string]interface{}, key string) (int, bool) {
	v, ok := extra[key].(int)
	return v, ok
}

func boolField(extra map[string]interface{}, key string) (bool, bool) {
	v, ok := extra[key].(bool)
	return v, ok
}

func timeField(extra map[string]interface{}, key string) (*time.Time, bool) {
	v, ok := extra[key].(*time.Time)
	return v, ok && v != nil
}
