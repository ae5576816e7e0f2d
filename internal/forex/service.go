package forex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/riffus/hyperswitch/pkg/clock"
	"github.com/riffus/hyperswitch/pkg/config"
	"github.com/riffus/hyperswitch/pkg/enums"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
	"github.com/riffus/hyperswitch/pkg/logger"
	"github.com/riffus/hyperswitch/pkg/redis"
	"github.com/shopspring/decimal"
)

// Rates is one snapshot of exchange rates against the base currency.
type Rates struct {
	Base        enums.Currency                     `json:"base"`
	RetrievedAt time.Time                          `json:"retrieved_at"`
	Conversions map[enums.Currency]decimal.Decimal `json:"conversions"`
}

// Fetcher retrieves a fresh rates snapshot from the external source.
type Fetcher interface {
	FetchRates(ctx context.Context) (*Rates, error)
}

// Cache is the slice of the redis client the rate cache needs.
type Cache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	CacheKey(parts ...string) string
}

// ServiceParams wires the forex service.
type ServiceParams struct {
	Fetcher Fetcher
	Cache   Cache
	Config  config.ForexConfig
	Clock   clock.Clock
	Logger  *logger.Logger
}

// Service serves exchange rates from a redis-backed cache, refetching from
// the external source when the cached snapshot ages out.
type Service struct {
	fetcher Fetcher
	cache   Cache
	cfg     config.ForexConfig
	clk     clock.Clock
	logg    *logger.Logger
}

func NewService(params ServiceParams) *Service {
	clk := params.Clock
	if clk == nil {
		clk = clock.System()
	}
	return &Service{
		fetcher: params.Fetcher,
		cache:   params.Cache,
		cfg:     params.Config,
		clk:     clk,
		logg:    params.Logger,
	}
}

// GetRates returns the current rates snapshot, cached for the configured call
// delay. Fetch failures retry with the configured delay and count before the
// error surfaces.
func (s *Service) GetRates(ctx context.Context) (*Rates, error) {
	if cached := s.cachedRates(ctx); cached != nil {
		return cached, nil
	}

	rates, err := s.fetchWithRetry(ctx)
	if err != nil {
		return nil, err
	}

	s.storeRates(ctx, rates)
	return rates, nil
}

// Convert translates a minor-unit amount between currencies through the base
// currency of the current snapshot.
func (s *Service) Convert(ctx context.Context, amount decimal.Decimal, from, to enums.Currency) (decimal.Decimal, error) {
	rates, err := s.GetRates(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	fromRate, err := rates.rateFor(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := rates.rateFor(to)
	if err != nil {
		return decimal.Zero, err
	}

	return amount.Div(fromRate).Mul(toRate), nil
}

func (r *Rates) rateFor(currency enums.Currency) (decimal.Decimal, error) {
	if currency == r.Base {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := r.Conversions[currency]
	if !ok || rate.IsZero() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("no exchange rate for %s", currency))
	}
	return rate, nil
}

func (s *Service) cachedRates(ctx context.Context) *Rates {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.cacheKey())
	if err != nil {
		if err != redis.Nil {
			s.logg.Warn(ctx, fmt.Sprintf("forex cache read failed: %v", err))
		}
		return nil
	}
	var rates Rates
	if err := json.Unmarshal([]byte(raw), &rates); err != nil {
		s.logg.Warn(ctx, fmt.Sprintf("forex cache entry corrupt: %v", err))
		return nil
	}
	return &rates
}

func (s *Service) storeRates(ctx context.Context, rates *Rates) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(rates)
	if err != nil {
		s.logg.Error(ctx, "failed to encode forex rates for cache", err)
		return
	}
	if err := s.cache.Set(ctx, s.cacheKey(), string(payload), s.cfg.CallDelay); err != nil {
		s.logg.Warn(ctx, fmt.Sprintf("forex cache write failed: %v", err))
	}
}

func (s *Service) cacheKey() string {
	return s.cache.CacheKey("forex", "rates")
}

func (s *Service) fetchWithRetry(ctx context.Context) (*Rates, error) {
	attempts := s.cfg.LocalFetchRetryCount
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "forex fetch aborted")
			case <-time.After(s.cfg.LocalFetchRetryDelay):
			}
		}
		rates, err := s.fetcher.FetchRates(ctx)
		if err == nil {
			rates.RetrievedAt = s.clk.Now()
			return rates, nil
		}
		lastErr = err
		s.logg.Warn(ctx, fmt.Sprintf("forex fetch attempt %d failed: %v", attempt+1, err))
	}
	return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, lastErr, "forex rates unavailable")
}

// apiResponse is the external rate source's wire shape.
type apiResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// HTTPFetcher pulls rates from the configured external API.
type HTTPFetcher struct {
	cfg    config.ForexConfig
	client *http.Client
}

func NewHTTPFetcher(cfg config.ForexConfig, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPFetcher{cfg: cfg, client: client}
}

func (f *HTTPFetcher) FetchRates(ctx context.Context) (*Rates, error) {
	if f.cfg.APIURL == "" {
		return nil, fmt.Errorf("forex api url not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.APIURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building forex request: %w", err)
	}
	if f.cfg.APIKey != "" {
		req.Header.Set("apikey", f.cfg.APIKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling forex api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forex api returned status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding forex response: %w", err)
	}

	base, err := enums.ParseCurrency(body.Base)
	if err != nil {
		return nil, fmt.Errorf("forex response base: %w", err)
	}

	conversions := make(map[enums.Currency]decimal.Decimal, len(body.Rates))
	for code, rate := range body.Rates {
		currency, err := enums.ParseCurrency(code)
		if err != nil {
			continue
		}
		conversions[currency] = rate
	}

	return &Rates{Base: base, Conversions: conversions}, nil
}
