package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"realuseragent/internal/catalog"
	"realuseragent/pkg/logging/logging"
)

func TestRecordCacheRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()

	rc := NewRecordCache(NewLoggingStore(s, zaptest.NewLogger(t)))
	ctx := context.Background()

	records := []catalog.Record{
		{UserAgent: "ua-1", SoftwareVersion: "60", OperatingSystem: "Windows", HardwareType: "Computer", Popularity: "Very common"},
		{UserAgent: "ua-2", SoftwareVersion: "61", OperatingSystem: "Linux", HardwareType: "Computer", Popularity: "Common"},
	}

	if err := rc.Set(ctx, "k", records, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := rc.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 2 || got[0] != records[0] || got[1] != records[1] {
		t.Fatalf("records changed through the cache: %#v", got)
	}
}

func TestRecordCacheEmptyEntry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()

	rc := NewRecordCache(s)
	ctx := context.Background()

	if err := rc.Set(ctx, "k", nil, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := rc.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected stored empty entry, got ok=%v err=%v", ok, err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestRecordCacheCorruptValue(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()

	ctx := context.Background()
	_ = s.Set(ctx, "k", []byte("not json"), time.Minute)

	_, ok, err := NewRecordCache(s).Get(ctx, "k")
	if ok || err == nil {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errStoreDown
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errStoreDown
}

func TestLoggingStorePassesErrorsThrough(t *testing.T) {
	s := NewLoggingStore(failingStore{}, zaptest.NewLogger(t))
	ctx := context.Background()

	if _, _, err := s.Get(ctx, "k"); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error from Get, got %v", err)
	}
	if err := s.Set(ctx, "k", []byte("v"), time.Minute); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error from Set, got %v", err)
	}
}

func TestLoggingStoreUsesOwnLoggerWithoutContextLogger(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	s := NewLoggingStore(failingStore{}, zap.New(core))

	_, _, _ = s.Get(context.Background(), "k")
	_ = s.Set(context.Background(), "k", []byte("v"), time.Minute)

	if got := logs.FilterMessage("record_cache_get").Len(); got != 1 {
		t.Fatalf("expected get error on the store logger, got %d entries", got)
	}
	if got := logs.FilterMessage("record_cache_set").Len(); got != 1 {
		t.Fatalf("expected set error on the store logger, got %d entries", got)
	}
}

func TestLoggingStorePrefersContextLogger(t *testing.T) {
	ownCore, ownLogs := observer.New(zap.ErrorLevel)
	reqCore, reqLogs := observer.New(zap.ErrorLevel)
	s := NewLoggingStore(failingStore{}, zap.New(ownCore))

	ctx := logging.WithLogger(context.Background(), zap.New(reqCore))
	_, _, _ = s.Get(ctx, "k")

	if reqLogs.Len() != 1 || ownLogs.Len() != 0 {
		t.Fatalf("expected the request logger to be used, got request=%d store=%d", reqLogs.Len(), ownLogs.Len())
	}
}

func TestLoggingStoreNopLoggerStaysSilent(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := logging.DefaultLogger()
	logging.SetDefault(zap.New(core))
	t.Cleanup(func() { logging.SetDefault(prev) })

	s := NewLoggingStore(failingStore{}, zap.NewNop())
	_, _, _ = s.Get(context.Background(), "k")

	if logs.Len() != 0 {
		t.Fatalf("a configured logger must keep cache errors off the default logger, got %d entries", logs.Len())
	}
}
