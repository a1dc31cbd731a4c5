// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/pixelthorn/gdx/internal/models"
)

// MemKV is an in-memory test double for [storage.KV]
type MemKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemKV() *MemKV {
	return &MemKV{data: map[string][]byte{}}
}

func (m *MemKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *MemKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Seed stores raw bytes under key, bypassing any encoding.
func (m *MemKV) Seed(key string, value []byte) {
	m.Set(key, value)
}

// FailingKV rejects every write, for exercising storage-write failure paths.
// Reads delegate to the wrapped KV when present.
type FailingKV struct {
	Wrapped *MemKV
}

var ErrWriteRefused = errors.New("write refused")

func (f *FailingKV) Get(key string) ([]byte, bool, error) {
	if f.Wrapped == nil {
		return nil, false, nil
	}
	return f.Wrapped.Get(key)
}

func (f *FailingKV) Set(key string, value []byte) error { return ErrWriteRefused }
func (f *FailingKV) Delete(key string) error            { return ErrWriteRefused }

// MockFetcher is a test double for [services.Fetcher]
type MockFetcher struct {
	Games []models.Game
	Err   error
	Calls int
}

func (m *MockFetcher) FetchPopular(ctx context.Context) ([]models.Game, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Games, nil
}

func (m *MockFetcher) Name() string { return "mock" }

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
