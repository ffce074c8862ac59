package quote

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"assetfolio/internal/logger"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// errNoQuote marks a source reply with a zero price, i.e. no quote
// available for the symbol. Never cached and never surfaced to callers.
var errNoQuote = errors.New("no quote available")

type cacheEntry struct {
	price     decimal.Decimal
	fetchedAt time.Time
}

// Service resolves symbols to current prices through a TTL cache over an
// external Source. Concurrent requests for the same stale symbol coalesce
// into a single upstream fetch. Failed fetches resolve to an absent price
// and leave the cache untouched so the next call retries.
type Service struct {
	source Source
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry

	group singleflight.Group
}

// NewService creates a price service with the given freshness window.
func NewService(source Source, ttl time.Duration) *Service {
	return &Service{
		source:  source,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// CurrentPrice returns the current price for a symbol, serving from cache
// while the entry is fresh. The boolean is false when the symbol is empty,
// the source has no quote for it, or the fetch fails.
func (s *Service) CurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, bool) {
	sym := Normalize(symbol)
	if sym == "" {
		return decimal.Decimal{}, false
	}

	if price, ok := s.cached(sym); ok {
		return price, true
	}

	v, err, _ := s.group.Do(sym, func() (interface{}, error) {
		// A coalesced waiter may arrive just after the winner stored the
		// entry; serve it from cache instead of refetching.
		if price, ok := s.cached(sym); ok {
			return price, nil
		}

		raw, err := s.source.FetchPrice(ctx, sym)
		if err != nil {
			return nil, err
		}
		if raw.Current.Sign() <= 0 {
			return nil, errNoQuote
		}

		s.store(sym, raw.Current)
		return raw.Current, nil
	})
	if err != nil {
		if !errors.Is(err, errNoQuote) {
			logger.Named("quote").Warnw("price fetch failed",
				"symbol", sym,
				"error", err.Error(),
			)
		}
		return decimal.Decimal{}, false
	}

	return v.(decimal.Decimal), true
}

// CurrentPrices resolves a batch of symbols. Input symbols are normalized
// and de-duplicated; the result maps normalized symbol to price, omitting
// symbols that resolve to an absent price.
func (s *Service) CurrentPrices(ctx context.Context, symbols []string) map[string]decimal.Decimal {
	normalized := lo.FilterMap(symbols, func(sym string, _ int) (string, bool) {
		n := Normalize(sym)
		return n, n != ""
	})

	result := make(map[string]decimal.Decimal)
	for _, sym := range lo.Uniq(normalized) {
		if price, ok := s.CurrentPrice(ctx, sym); ok {
			result[sym] = price
		}
	}
	return result
}

// IsValidSymbol reports whether the symbol resolves to a present, positive
// price.
func (s *Service) IsValidSymbol(ctx context.Context, symbol string) bool {
	price, ok := s.CurrentPrice(ctx, symbol)
	return ok && price.Sign() > 0
}

// Normalize uppercases and trims a symbol; lookups are case-insensitive.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func (s *Service) cached(sym string) (decimal.Decimal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[sym]
	if !ok || time.Since(entry.fetchedAt) >= s.ttl {
		return decimal.Decimal{}, false
	}
	return entry.price, true
}

func (s *Service) store(sym string, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sym] = cacheEntry{price: price, fetchedAt: time.Now()}
}
