package health

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riffus/hyperswitch/pkg/config"
	"github.com/riffus/hyperswitch/pkg/logger"
	"go.uber.org/multierr"
)

type stubRedis struct {
	values  map[string]string
	setErr  error
	getErr  error
	deleted []string
}

func newStubRedis() *stubRedis {
	return &stubRedis{values: map[string]string{}}
}

func (s *stubRedis) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value.(string)
	return nil
}

func (s *stubRedis) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.values[key], nil
}

func (s *stubRedis) Del(_ context.Context, keys ...string) error {
	s.deleted = append(s.deleted, keys...)
	return nil
}

func (s *stubRedis) ProbeKey(name string) string {
	return "hs:probe:" + name
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestCheckAllProbesHealthy(t *testing.T) {
	svc := NewService(ServiceParams{
		Redis:  newStubRedis(),
		Locker: config.LockerConfig{MockLocker: true},
		Logger: testLogger(),
	})

	if err := svc.Check(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
}

func TestCheckRedisFailureNamesProbe(t *testing.T) {
	redis := newStubRedis()
	redis.setErr = errors.New("connection refused")
	svc := NewService(ServiceParams{
		Redis:  redis,
		Locker: config.LockerConfig{MockLocker: true},
		Logger: testLogger(),
	})

	err := svc.Check(context.Background())
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "redis:") {
		t.Fatalf("expected error to name the redis probe, got %v", err)
	}
}

func TestCheckLockerProbe(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	svc := NewService(ServiceParams{
		Redis:  newStubRedis(),
		Locker: config.LockerConfig{Host: healthy.URL, MockLocker: false},
		Logger: testLogger(),
	})
	if err := svc.Check(context.Background()); err != nil {
		t.Fatalf("expected healthy locker, got %v", err)
	}

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer broken.Close()

	svc = NewService(ServiceParams{
		Redis:  newStubRedis(),
		Locker: config.LockerConfig{Host: broken.URL, MockLocker: false},
		Logger: testLogger(),
	})
	err := svc.Check(context.Background())
	if err == nil || !strings.Contains(err.Error(), "locker:") {
		t.Fatalf("expected locker failure, got %v", err)
	}
}

func TestCheckCollectsAllFailures(t *testing.T) {
	redis := newStubRedis()
	redis.setErr = errors.New("redis down")

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer broken.Close()

	svc := NewService(ServiceParams{
		Redis:  redis,
		Locker: config.LockerConfig{Host: broken.URL, MockLocker: false},
		Logger: testLogger(),
	})

	err := svc.Check(context.Background())
	if err == nil {
		t.Fatal("expected failures")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Fatalf("expected both failures collected, got %d: %v", got, err)
	}
}
