package forex

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/riffus/hyperswitch/pkg/clock"
	"github.com/riffus/hyperswitch/pkg/config"
	"github.com/riffus/hyperswitch/pkg/enums"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
	"github.com/riffus/hyperswitch/pkg/logger"
	"github.com/riffus/hyperswitch/pkg/redis"
	"github.com/shopspring/decimal"
)

type stubFetcher struct {
	rates *Rates
	errs  []error
	calls int
}

func (f *stubFetcher) FetchRates(context.Context) (*Rates, error) {
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	copied := *f.rates
	return &copied, nil
}

type stubCache struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newStubCache() *stubCache {
	return &stubCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *stubCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	c.values[key] = value.(string)
	c.ttls[key] = ttl
	return nil
}

func (c *stubCache) Get(_ context.Context, key string) (string, error) {
	value, ok := c.values[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (c *stubCache) CacheKey(parts ...string) string {
	key := "hs:cache"
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

func usdRates() *Rates {
	return &Rates{
		Base: enums.CurrencyUSD,
		Conversions: map[enums.Currency]decimal.Decimal{
			enums.CurrencyEUR: decimal.RequireFromString("0.9"),
			enums.CurrencyGBP: decimal.RequireFromString("0.8"),
		},
	}
}

func testForexService(fetcher Fetcher, cache Cache, cfg config.ForexConfig) *Service {
	return NewService(ServiceParams{
		Fetcher: fetcher,
		Cache:   cache,
		Config:  cfg,
		Clock:   clock.Fixed(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		Logger:  logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
}

func TestGetRatesCachesSnapshot(t *testing.T) {
	fetcher := &stubFetcher{rates: usdRates()}
	cache := newStubCache()
	cfg := config.ForexConfig{CallDelay: 6 * time.Hour, LocalFetchRetryCount: 3}
	svc := testForexService(fetcher, cache, cfg)

	rates, err := svc.GetRates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates.Base != enums.CurrencyUSD {
		t.Fatalf("unexpected base %s", rates.Base)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected one fetch, got %d", fetcher.calls)
	}
	if cache.ttls["hs:cache:forex:rates"] != 6*time.Hour {
		t.Fatalf("expected call-delay ttl, got %v", cache.ttls["hs:cache:forex:rates"])
	}

	if _, err := svc.GetRates(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected cache hit to skip the fetcher, got %d calls", fetcher.calls)
	}
}

func TestGetRatesRetriesThenSucceeds(t *testing.T) {
	fetcher := &stubFetcher{
		rates: usdRates(),
		errs:  []error{errors.New("timeout"), errors.New("timeout")},
	}
	cfg := config.ForexConfig{LocalFetchRetryCount: 3, LocalFetchRetryDelay: time.Millisecond}
	svc := testForexService(fetcher, newStubCache(), cfg)

	rates, err := svc.GetRates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates == nil || fetcher.calls != 3 {
		t.Fatalf("expected success on third attempt, got %d calls", fetcher.calls)
	}
}

func TestGetRatesExhaustsRetries(t *testing.T) {
	fetcher := &stubFetcher{
		rates: usdRates(),
		errs:  []error{errors.New("down"), errors.New("down")},
	}
	cfg := config.ForexConfig{LocalFetchRetryCount: 2, LocalFetchRetryDelay: time.Millisecond}
	svc := testForexService(fetcher, newStubCache(), cfg)

	_, err := svc.GetRates(context.Background())
	if !pkgerrors.IsCode(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected DEPENDENCY_ERROR, got %v", err)
	}
	if fetcher.calls != 2 {
		t.Fatalf("expected exactly the configured attempts, got %d", fetcher.calls)
	}
}

func TestGetRatesIgnoresCorruptCacheEntry(t *testing.T) {
	fetcher := &stubFetcher{rates: usdRates()}
	cache := newStubCache()
	cache.values["hs:cache:forex:rates"] = "{not json"
	svc := testForexService(fetcher, cache, config.ForexConfig{LocalFetchRetryCount: 1})

	rates, err := svc.GetRates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates.Base != enums.CurrencyUSD || fetcher.calls != 1 {
		t.Fatalf("expected refetch past corrupt entry, got %d calls", fetcher.calls)
	}
}

func TestConvert(t *testing.T) {
	fetcher := &stubFetcher{rates: usdRates()}
	svc := testForexService(fetcher, newStubCache(), config.ForexConfig{LocalFetchRetryCount: 1})

	converted, err := svc.Convert(context.Background(), decimal.NewFromInt(90), enums.CurrencyEUR, enums.CurrencyGBP)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !converted.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expected 80, got %s", converted)
	}

	converted, err = svc.Convert(context.Background(), decimal.NewFromInt(100), enums.CurrencyUSD, enums.CurrencyEUR)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !converted.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected 90, got %s", converted)
	}

	_, err = svc.Convert(context.Background(), decimal.NewFromInt(100), enums.CurrencyUSD, enums.CurrencyZAR)
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND for missing rate, got %v", err)
	}
}

func TestRatesCacheRoundTrip(t *testing.T) {
	payload, err := json.Marshal(usdRates())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded Rates
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decoded.Conversions[enums.CurrencyEUR].Equal(decimal.RequireFromString("0.9")) {
		t.Fatalf("unexpected decoded rate %s", decoded.Conversions[enums.CurrencyEUR])
	}
}
