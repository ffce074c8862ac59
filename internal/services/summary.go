package services

import (
	"context"
	"sort"

	"assetfolio/internal/models"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// GetPortfolioSummary lists and enriches all assets, then folds them into
// portfolio-level totals, per-type breakdowns, and top movers. Percentages
// are rounded to two places here, at the display edge only; the underlying
// enriched metrics stay unrounded.
func (s *assetService) GetPortfolioSummary(ctx context.Context) (*PortfolioSummary, error) {
	assets, err := s.ListAssets(ctx)
	if err != nil {
		return nil, err
	}

	totalValue := lo.Reduce(assets, func(acc decimal.Decimal, a EnrichedAsset, _ int) decimal.Decimal {
		return acc.Add(a.CurrentValue)
	}, decimal.Zero)
	totalCostBasis := lo.Reduce(assets, func(acc decimal.Decimal, a EnrichedAsset, _ int) decimal.Decimal {
		return acc.Add(a.CostBasis)
	}, decimal.Zero)
	totalGainLoss := totalValue.Sub(totalCostBasis)

	totalGainLossPct := decimal.Zero
	if !totalCostBasis.IsZero() {
		totalGainLossPct = totalGainLoss.Div(totalCostBasis).Mul(hundred).Round(2)
	}

	byType := make(map[models.AssetType]TypeBreakdown)
	grouped := lo.GroupBy(assets, func(a EnrichedAsset) models.AssetType { return a.Type })
	for _, kind := range s.registry.Kinds() {
		group, ok := grouped[kind]
		if !ok {
			continue
		}
		value := lo.Reduce(group, func(acc decimal.Decimal, a EnrichedAsset, _ int) decimal.Decimal {
			return acc.Add(a.CurrentValue)
		}, decimal.Zero)

		allocation := decimal.Zero
		if !totalValue.IsZero() {
			allocation = value.Div(totalValue).Mul(hundred).Round(2)
		}

		byType[kind] = TypeBreakdown{
			Count:      len(group),
			Value:      value,
			Allocation: allocation,
		}
	}

	return &PortfolioSummary{
		TotalValue:       totalValue,
		TotalCostBasis:   totalCostBasis,
		TotalGainLoss:    totalGainLoss,
		TotalGainLossPct: totalGainLossPct,
		TotalAssets:      len(assets),
		ByType:           byType,
		Assets:           assets,
		TopGainers:       topMovers(assets, s.topMovers, descending),
		TopLosers:        topMovers(assets, s.topMovers, ascending),
	}, nil
}

type sortDirection int

const (
	descending sortDirection = iota
	ascending
)

// topMovers returns up to n assets sorted by gain/loss percentage in the
// given direction. The input slice is not modified.
func topMovers(assets []EnrichedAsset, n int, dir sortDirection) []EnrichedAsset {
	sorted := make([]EnrichedAsset, len(assets))
	copy(sorted, assets)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := sorted[i].GainLossPct.Cmp(sorted[j].GainLossPct)
		if dir == descending {
			return cmp > 0
		}
		return cmp < 0
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
