package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"pixelfront/internal/dummyjson"
)

// Status describes the one-shot load lifecycle.
type Status int

const (
	StatusPending Status = iota
	StatusReady
	StatusFailed
)

// Fetcher retrieves the raw catalog. *dummyjson.Client implements it.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]dummyjson.Record, error)
}

var _ Fetcher = (*dummyjson.Client)(nil)

// Snapshot is an immutable view of the store at a point in time.
type Snapshot struct {
	Status     Status
	Products   []Product
	Categories []string
	Err        error
	LoadedAt   time.Time
}

// Ready reports whether the catalog is available.
func (s Snapshot) Ready() bool { return s.Status == StatusReady }

// Store holds the catalog after its single load. The catalog is read-only once
// loaded; a failed load stores no partial data and is never retried.
type Store struct {
	mu       sync.RWMutex
	once     sync.Once
	snapshot Snapshot
}

// Load fetches and normalizes the catalog exactly once per Store. Subsequent
// calls are no-ops regardless of the first outcome.
func (s *Store) Load(ctx context.Context, fetcher Fetcher) {
	s.once.Do(func() {
		records, err := fetcher.FetchProducts(ctx)
		s.mu.Lock()
		defer s.mu.Unlock()

		s.snapshot.LoadedAt = time.Now()
		if err != nil {
			s.snapshot.Status = StatusFailed
			s.snapshot.Err = fmt.Errorf("fetch catalog: %w", err)
			return
		}
		s.snapshot.Status = StatusReady
		s.snapshot.Products = NormalizeAll(records)
		s.snapshot.Categories = categoriesOf(s.snapshot.Products)
	})
}

// Snapshot returns a copy of the current state. The returned slices are
// independent of the store's own.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Products = cloneProducts(s.snapshot.Products)
	snap.Categories = append([]string(nil), s.snapshot.Categories...)
	return snap
}

// categoriesOf derives the sorted unique category list from the catalog.
func categoriesOf(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	var categories []string
	for _, p := range products {
		key := strings.ToLower(p.Category)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

func cloneProducts(products []Product) []Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]Product, len(products))
	copy(dup, products)
	return dup
}
