package models

import "github.com/shopspring/decimal"

// CashAccountType represents the category of a cash/savings account.
type CashAccountType string

const (
	CashAccountSavings          CashAccountType = "SAVINGS"
	CashAccountChecking         CashAccountType = "CHECKING"
	CashAccountMoneyMarket      CashAccountType = "MONEY_MARKET"
	CashAccountCD               CashAccountType = "CD"
	CashAccountHighYieldSavings CashAccountType = "HIGH_YIELD_SAVINGS"
)

// Cash represents a cash or savings holding.
type Cash struct {
	AssetCommon
	Currency     string          `gorm:"size:3;default:'USD'" json:"currency,omitempty"`
	AccountType  CashAccountType `gorm:"size:30" json:"account_type,omitempty"`
	InterestRate decimal.Decimal `gorm:"type:numeric(5,2)" json:"interest_rate"` // Annual interest rate %
	BankName     string          `gorm:"size:100" json:"bank_name,omitempty"`
}

// Common returns the shared asset fields.
func (c *Cash) Common() *AssetCommon { return &c.AssetCommon }

// Type returns the asset type tag.
func (*Cash) Type() AssetType { return AssetTypeCash }

// TableName sets the cash_holdings table name.
func (*Cash) TableName() string { return "cash_holdings" }
