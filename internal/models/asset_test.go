package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCostBasis(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		buyPrice string
		want     string
	}{
		{"whole numbers", "10", "150", "1500"},
		{"fractional quantity", "0.5", "40000", "20000"},
		{"fractional price stays exact", "3", "0.1", "0.3"},
		{"small crypto position", "0.0001", "65000", "6.5"},
		{"zero quantity", "0", "150", "0"},
		{"zero price", "10", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AssetCommon{
				Quantity: decimal.RequireFromString(tt.quantity),
				BuyPrice: decimal.RequireFromString(tt.buyPrice),
			}
			got := c.CostBasis()
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("CostBasis(%s x %s) = %s, want %s", tt.quantity, tt.buyPrice, got, tt.want)
			}
		})
	}
}

func TestCostBasisZeroValue(t *testing.T) {
	var c AssetCommon
	if !c.CostBasis().IsZero() {
		t.Errorf("expected zero cost basis for zero-value common fields, got %s", c.CostBasis())
	}
}

func TestAssetTypeValid(t *testing.T) {
	for _, at := range AssetTypes() {
		if !at.Valid() {
			t.Errorf("expected %s to be valid", at)
		}
	}

	for _, invalid := range []AssetType{"", "stock", "EQUITY", "NFT"} {
		if invalid.Valid() {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}

func TestAssetTypesOrder(t *testing.T) {
	want := []AssetType{
		AssetTypeStock,
		AssetTypeBond,
		AssetTypeEtf,
		AssetTypeMutualFund,
		AssetTypeCrypto,
		AssetTypeRealEstate,
		AssetTypeCash,
	}

	got := AssetTypes()
	if len(got) != len(want) {
		t.Fatalf("expected %d asset types, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRecordTypes(t *testing.T) {
	records := map[AssetType]AssetRecord{
		AssetTypeStock:      &Stock{},
		AssetTypeBond:       &Bond{},
		AssetTypeEtf:        &Etf{},
		AssetTypeMutualFund: &MutualFund{},
		AssetTypeCrypto:     &Crypto{},
		AssetTypeRealEstate: &RealEstate{},
		AssetTypeCash:       &Cash{},
	}

	for want, rec := range records {
		if rec.Type() != want {
			t.Errorf("expected type %s, got %s", want, rec.Type())
		}
		if rec.Common() == nil {
			t.Errorf("expected non-nil common fields for %s", want)
		}
	}
}
