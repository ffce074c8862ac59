// Package registry maps each asset type to its store and to the factory
// that builds or updates records of that type from a generic attribute set.
// It is the only place asset-kind polymorphism is resolved: adding an
// eighth kind means adding one table entry here (plus its model).
package registry

import (
	"strings"
	"time"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/store"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Attributes is the generic field set used to build or update an asset
// record. Common fields are explicit; kind-specific fields travel in Extra
// and are interpreted only by the per-kind apply function.
type Attributes struct {
	Symbol       string
	Name         string
	Quantity     decimal.Decimal
	BuyPrice     decimal.Decimal
	PurchaseDate *time.Time
	Extra        map[string]interface{}
}

// entry holds the dispatch targets for one asset type.
type entry struct {
	store    store.AssetStore
	newBlank func() models.AssetRecord
	apply    func(rec models.AssetRecord, extra map[string]interface{})
}

// Registry is the closed dispatch table from asset type to store and
// record factory.
type Registry struct {
	entries map[models.AssetType]entry
}

// New builds a registry with one generic store per asset type.
func New(db *gorm.DB) *Registry {
	return &Registry{entries: map[models.AssetType]entry{
		models.AssetTypeStock: {
			store:    store.New[models.Stock, *models.Stock](db),
			newBlank: func() models.AssetRecord { return &models.Stock{} },
			apply:    applyStockFields,
		},
		models.AssetTypeBond: {
			store:    store.New[models.Bond, *models.Bond](db),
			newBlank: func() models.AssetRecord { return &models.Bond{} },
			apply:    applyBondFields,
		},
		models.AssetTypeEtf: {
			store:    store.New[models.Etf, *models.Etf](db),
			newBlank: func() models.AssetRecord { return &models.Etf{} },
			apply:    applyEtfFields,
		},
		models.AssetTypeMutualFund: {
			store:    store.New[models.MutualFund, *models.MutualFund](db),
			newBlank: func() models.AssetRecord { return &models.MutualFund{} },
			apply:    applyMutualFundFields,
		},
		models.AssetTypeCrypto: {
			store:    store.New[models.Crypto, *models.Crypto](db),
			newBlank: func() models.AssetRecord { return &models.Crypto{} },
			apply:    applyCryptoFields,
		},
		models.AssetTypeRealEstate: {
			store:    store.New[models.RealEstate, *models.RealEstate](db),
			newBlank: func() models.AssetRecord { return &models.RealEstate{} },
			apply:    applyRealEstateFields,
		},
		models.AssetTypeCash: {
			store:    store.New[models.Cash, *models.Cash](db),
			newBlank: func() models.AssetRecord { return &models.Cash{} },
			apply:    applyCashFields,
		},
	}}
}

// Kinds returns all asset types in canonical order.
func (r *Registry) Kinds() []models.AssetType {
	return models.AssetTypes()
}

// StoreFor returns the store for the given asset type.
func (r *Registry) StoreFor(t models.AssetType) (store.AssetStore, error) {
	e, ok := r.entries[t]
	if !ok {
		return nil, apperrors.ErrUnknownAssetType
	}
	return e.store, nil
}

// Build constructs a new in-memory record of the given type from attrs.
// Required common fields (symbol, name, quantity, buy price) are validated
// here; kind-specific fields are applied without validation.
func (r *Registry) Build(t models.AssetType, attrs Attributes) (models.AssetRecord, error) {
	e, ok := r.entries[t]
	if !ok {
		return nil, apperrors.ErrUnknownAssetType
	}
	if err := validateCommon(attrs); err != nil {
		return nil, err
	}

	rec := e.newBlank()
	setCommon(rec, attrs)
	e.apply(rec, attrs.Extra)
	return rec, nil
}

// ApplyUpdate overwrites the mutable common and kind-specific fields of an
// existing record from attrs. The record's id and type are never altered.
func (r *Registry) ApplyUpdate(rec models.AssetRecord, attrs Attributes) error {
	e, ok := r.entries[rec.Type()]
	if !ok {
		return apperrors.ErrUnknownAssetType
	}
	if err := validateCommon(attrs); err != nil {
		return err
	}

	setCommon(rec, attrs)
	e.apply(rec, attrs.Extra)
	return nil
}

func validateCommon(attrs Attributes) error {
	if strings.TrimSpace(attrs.Symbol) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	if strings.TrimSpace(attrs.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}
	if attrs.Quantity.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity is required")
	}
	if attrs.BuyPrice.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Buy price is required")
	}
	return nil
}

func setCommon(rec models.AssetRecord, attrs Attributes) {
	c := rec.Common()
	c.Symbol = attrs.Symbol
	c.Name = attrs.Name
	c.Quantity = attrs.Quantity
	c.BuyPrice = attrs.BuyPrice
	c.PurchaseDate = attrs.PurchaseDate
}
