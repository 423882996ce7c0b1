package scoring

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

// fakeStore реализация store.Store для тестов.
type fakeStore struct {
	data  map[string]string
	cache map[string]string

	getErr error
	setErr error

	cacheGets int
	cacheSets int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data:  make(map[string]string),
		cache: make(map[string]string),
	}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	val, ok := f.data[key]
	return val, ok, nil
}

func (f *fakeStore) CacheGet(_ context.Context, key string) (string, bool) {
	f.cacheGets++
	if f.getErr != nil {
		return "", false
	}
	val, ok := f.cache[key]
	return val, ok
}

func (f *fakeStore) CacheSet(_ context.Context, key string, value string, _ time.Duration) error {
	f.cacheSets++
	if f.setErr != nil {
		return f.setErr
	}
	f.cache[key] = value
	return nil
}

func (f *fakeStore) Ping(_ context.Context) error {
	if f.getErr != nil {
		return f.getErr
	}
	return nil
}

func (f *fakeStore) Close() error { return nil }

var errStoreDown = errors.New("connection refused")

func newTestService(t *testing.T, st *fakeStore) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(st, nil, log)
}
