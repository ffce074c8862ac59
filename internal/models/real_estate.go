package models

import "github.com/shopspring/decimal"

// PropertyType represents the category of a real estate property.
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "RESIDENTIAL"
	PropertyTypeCommercial  PropertyType = "COMMERCIAL"
	PropertyTypeIndustrial  PropertyType = "INDUSTRIAL"
	PropertyTypeLand        PropertyType = "LAND"
	PropertyTypeREIT        PropertyType = "REIT"
)

// RealEstate represents a real estate holding.
type RealEstate struct {
	AssetCommon
	PropertyAddress string          `gorm:"size:200" json:"property_address,omitempty"`
	PropertyType    PropertyType    `gorm:"size:30" json:"property_type,omitempty"`
	RentalIncome    decimal.Decimal `gorm:"type:numeric(19,2)" json:"rental_income"` // Monthly rental income
	SquareFootage   int             `json:"square_footage,omitempty"`
	YearBuilt       int             `json:"year_built,omitempty"`
}

// Common returns the shared asset fields.
func (r *RealEstate) Common() *AssetCommon { return &r.AssetCommon }

// Type returns the asset type tag.
func (*RealEstate) Type() AssetType { return AssetTypeRealEstate }

// TableName sets the real_estates table name.
func (*RealEstate) TableName() string { return "real_estates" }
