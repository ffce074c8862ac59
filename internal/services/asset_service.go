package services

import (
	"context"
	"strings"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/quote"
	"assetfolio/internal/registry"
	"assetfolio/internal/store"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// assetService is the aggregation engine: it fans queries out across the
// per-kind stores, converts records to the unified enriched view, and
// derives financial metrics.
//
// Fan-out failure policy: a failure from any store aborts the whole
// listing or search. Price-lookup failures never do; they degrade to the
// record's buy price.
type assetService struct {
	registry  *registry.Registry
	prices    PriceServicer
	topMovers int
}

// NewAssetService creates a new AssetServicer. topMovers bounds the
// top-gainer/top-loser lists in the portfolio summary.
func NewAssetService(reg *registry.Registry, prices PriceServicer, topMovers int) AssetServicer {
	if topMovers <= 0 {
		topMovers = 5
	}
	return &assetService{registry: reg, prices: prices, topMovers: topMovers}
}

// ListAssets loads every record from every store and returns the enriched
// list in canonical type order (store insertion order within a type). The
// per-type queries run in parallel; concatenation order is fixed by the
// registry, never by completion order.
func (s *assetService) ListAssets(ctx context.Context) ([]EnrichedAsset, error) {
	records, err := s.fanOut(ctx, func(st store.AssetStore) ([]models.AssetRecord, error) {
		return st.FindAll()
	})
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, records), nil
}

// GetAssetByID probes each type's store in canonical order until a hit.
func (s *assetService) GetAssetByID(ctx context.Context, id string) (*EnrichedAsset, error) {
	rec, _, err := s.findRecord(id)
	if err != nil {
		return nil, err
	}
	enriched := s.enrichOne(ctx, rec)
	return &enriched, nil
}

// GetAssetsByType loads and enriches records of a single type.
func (s *assetService) GetAssetsByType(ctx context.Context, assetType models.AssetType) ([]EnrichedAsset, error) {
	st, err := s.registry.StoreFor(assetType)
	if err != nil {
		return nil, err
	}
	records, err := st.FindAll()
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, records), nil
}

// SearchAssets unions, per type, a case-insensitive symbol-substring query
// and a name-substring query, de-duplicated by id. An empty query behaves
// as ListAssets.
func (s *assetService) SearchAssets(ctx context.Context, query string) ([]EnrichedAsset, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListAssets(ctx)
	}

	records, err := s.fanOut(ctx, func(st store.AssetStore) ([]models.AssetRecord, error) {
		bySymbol, err := st.FindBySymbolContaining(query)
		if err != nil {
			return nil, err
		}
		byName, err := st.FindByNameContaining(query)
		if err != nil {
			return nil, err
		}
		// A record matching both queries appears once.
		return lo.UniqBy(append(bySymbol, byName...), recordID), nil
	})
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, records), nil
}

// CreateAsset builds a record of the given type via the registry, persists
// it, and returns the enriched view.
func (s *assetService) CreateAsset(ctx context.Context, assetType models.AssetType, attrs registry.Attributes) (*EnrichedAsset, error) {
	rec, err := s.registry.Build(assetType, attrs)
	if err != nil {
		return nil, err
	}

	st, err := s.registry.StoreFor(assetType)
	if err != nil {
		return nil, err
	}
	if err := st.Save(rec); err != nil {
		return nil, err
	}

	enriched := s.enrichOne(ctx, rec)
	return &enriched, nil
}

// UpdateAsset locates the existing record with the same store-probing
// strategy as GetAssetByID, overwrites its mutable fields, and persists
// it. The record's type and id are never altered.
func (s *assetService) UpdateAsset(ctx context.Context, id string, attrs registry.Attributes) (*EnrichedAsset, error) {
	rec, st, err := s.findRecord(id)
	if err != nil {
		return nil, err
	}
	if err := s.registry.ApplyUpdate(rec, attrs); err != nil {
		return nil, err
	}
	if err := st.Save(rec); err != nil {
		return nil, err
	}

	enriched := s.enrichOne(ctx, rec)
	return &enriched, nil
}

// DeleteAsset locates and removes the record from its owning store.
func (s *assetService) DeleteAsset(ctx context.Context, id string) error {
	rec, st, err := s.findRecord(id)
	if err != nil {
		return err
	}
	return st.Delete(rec)
}

// fanOut runs load against every type's store concurrently and
// concatenates the per-type results in canonical registry order.
func (s *assetService) fanOut(ctx context.Context, load func(store.AssetStore) ([]models.AssetRecord, error)) ([]models.AssetRecord, error) {
	kinds := s.registry.Kinds()
	perKind := make([][]models.AssetRecord, len(kinds))

	g, _ := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		st, err := s.registry.StoreFor(kind)
		if err != nil {
			return nil, err
		}
		i, st := i, st
		g.Go(func() error {
			records, err := load(st)
			if err != nil {
				return err
			}
			perKind[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []models.AssetRecord
	for _, recs := range perKind {
		records = append(records, recs...)
	}
	return records, nil
}

// findRecord probes each type's store in canonical order and returns the
// first record with the given id along with its owning store.
func (s *assetService) findRecord(id string) (models.AssetRecord, store.AssetStore, error) {
	for _, kind := range s.registry.Kinds() {
		st, err := s.registry.StoreFor(kind)
		if err != nil {
			return nil, nil, err
		}
		rec, found, err := st.FindByID(id)
		if err != nil {
			return nil, nil, err
		}
		if found {
			return rec, st, nil
		}
	}
	return nil, nil, apperrors.ErrAssetNotFound
}

// enrichAll resolves prices for the batch in one pass (the quote cache
// de-duplicates symbols) and derives metrics per record.
func (s *assetService) enrichAll(ctx context.Context, records []models.AssetRecord) []EnrichedAsset {
	symbols := lo.Map(records, func(rec models.AssetRecord, _ int) string {
		return rec.Common().Symbol
	})
	prices := s.prices.CurrentPrices(ctx, symbols)

	return lo.Map(records, func(rec models.AssetRecord, _ int) EnrichedAsset {
		price, ok := prices[quote.Normalize(rec.Common().Symbol)]
		return enrich(rec, price, ok)
	})
}

func (s *assetService) enrichOne(ctx context.Context, rec models.AssetRecord) EnrichedAsset {
	price, ok := s.prices.CurrentPrice(ctx, rec.Common().Symbol)
	return enrich(rec, price, ok)
}

// enrich derives the metrics of one record. With no live quote the current
// price falls back to the buy price, which pins gain/loss to zero for
// unquoted kinds (real estate, cash, most bonds) and dead tickers.
func enrich(rec models.AssetRecord, price decimal.Decimal, ok bool) EnrichedAsset {
	c := rec.Common()
	if !ok {
		price = c.BuyPrice
	}

	costBasis := c.CostBasis()
	currentValue := c.Quantity.Mul(price)
	gainLoss := currentValue.Sub(costBasis)

	gainLossPct := decimal.Zero
	if !costBasis.IsZero() {
		gainLossPct = gainLoss.Div(costBasis).Mul(decimal.NewFromInt(100))
	}

	return EnrichedAsset{
		ID:           c.ID,
		Symbol:       c.Symbol,
		Name:         c.Name,
		Type:         rec.Type(),
		Quantity:     c.Quantity,
		BuyPrice:     c.BuyPrice,
		PurchaseDate: c.PurchaseDate,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		CurrentPrice: price,
		CurrentValue: currentValue,
		CostBasis:    costBasis,
		GainLoss:     gainLoss,
		GainLossPct:  gainLossPct,
		Details:      rec,
	}
}

func recordID(rec models.AssetRecord) string {
	return rec.Common().ID
}
