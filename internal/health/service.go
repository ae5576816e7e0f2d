package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riffus/hyperswitch/pkg/config"
	"github.com/riffus/hyperswitch/pkg/logger"
	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/riffus/hyperswitch/pkg/db/models"
	"go.uber.org/multierr"
)

const probeTimeout = 5 * time.Second

// RedisProber is the key-level surface the readiness probe exercises.
type RedisProber interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	ProbeKey(name string) string
}

// ServiceParams wires the readiness probes.
type ServiceParams struct {
	DB         *gorm.DB
	Redis      RedisProber
	Locker     config.LockerConfig
	Logger     *logger.Logger
	HTTPClient *http.Client
}

// Service runs the deep readiness verification. Probes execute sequentially;
// every failure is collected so one report names all unhealthy dependencies.
type Service struct {
	db     *gorm.DB
	redis  RedisProber
	locker config.LockerConfig
	logg   *logger.Logger
	client *http.Client
}

func NewService(params ServiceParams) *Service {
	client := params.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: probeTimeout}
	}
	return &Service{
		db:     params.DB,
		redis:  params.Redis,
		locker: params.Locker,
		logg:   params.Logger,
		client: client,
	}
}

// Check runs every configured probe and returns the aggregated failures.
func (s *Service) Check(ctx context.Context) error {
	var result error

	if err := s.checkDatabase(ctx); err != nil {
		s.logg.Error(ctx, "database health probe failed", err)
		result = multierr.Append(result, fmt.Errorf("database: %w", err))
	}
	if err := s.checkRedis(ctx); err != nil {
		s.logg.Error(ctx, "redis health probe failed", err)
		result = multierr.Append(result, fmt.Errorf("redis: %w", err))
	}
	if err := s.checkLocker(ctx); err != nil {
		s.logg.Error(ctx, "locker health probe failed", err)
		result = multierr.Append(result, fmt.Errorf("locker: %w", err))
	}

	return result
}

// checkDatabase verifies both reads and writes: a trivial select, then an
// insert/delete round trip of a throwaway config row.
func (s *Service) checkDatabase(ctx context.Context) error {
	if s.db == nil {
		return nil
	}

	var two int
	if err := s.db.WithContext(ctx).Raw("SELECT 1 + 1").Scan(&two).Error; err != nil {
		return fmt.Errorf("read check: %w", err)
	}

	entry := models.ConfigEntry{
		Key:    fmt.Sprintf("probe_%s", uuid.NewString()),
		Config: "health check entry, safe to delete",
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("write check: %w", err)
	}
	if err := s.db.WithContext(ctx).Delete(&entry).Error; err != nil {
		return fmt.Errorf("delete check: %w", err)
	}
	return nil
}

// checkRedis round-trips a probe key through set/get/del.
func (s *Service) checkRedis(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}

	key := s.redis.ProbeKey(uuid.NewString())
	if err := s.redis.Set(ctx, key, "ok", probeTimeout); err != nil {
		return fmt.Errorf("set check: %w", err)
	}
	value, err := s.redis.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("get check: %w", err)
	}
	if value != "ok" {
		return fmt.Errorf("get check: unexpected value %q", value)
	}
	if err := s.redis.Del(ctx, key); err != nil {
		return fmt.Errorf("del check: %w", err)
	}
	return nil
}

// checkLocker probes the card vault's health endpoint. A mocked locker is
// reported healthy without a network call.
func (s *Service) checkLocker(ctx context.Context) error {
	if s.locker.MockLocker || s.locker.Host == "" {
		return nil
	}

	url := fmt.Sprintf("%s/health", s.locker.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return nil
}
