package usecase

import (
	"context"
	"fmt"
	"sync"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
)

// fakeCatalog is an in-memory CatalogRepository. gate, when set for a call
// name, blocks that call until the channel yields.
type fakeCatalog struct {
	mu    sync.Mutex
	calls []string

	lists   map[string][]entity.MovieSummary
	detail  *entity.MovieDetail
	certs   *entity.CertificationSet
	errs    map[string]error
	gate    map[string]chan struct{}
	queries []string
}

var _ repository.CatalogRepository = (*fakeCatalog)(nil)

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		lists: map[string][]entity.MovieSummary{},
		errs:  map[string]error{},
		gate:  map[string]chan struct{}{},
	}
}

func (f *fakeCatalog) record(name string) (chan struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.gate[name], f.errs[name]
}

func (f *fakeCatalog) list(name string) ([]entity.MovieSummary, error) {
	gate, err := f.record(name)
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists[name], nil
}

func (f *fakeCatalog) FetchPopular(ctx context.Context) ([]entity.MovieSummary, error) {
	return f.list("popular")
}

func (f *fakeCatalog) FetchTopRated(ctx context.Context) ([]entity.MovieSummary, error) {
	return f.list("top_rated")
}

func (f *fakeCatalog) FetchUpcoming(ctx context.Context) ([]entity.MovieSummary, error) {
	return f.list("upcoming")
}

func (f *fakeCatalog) Search(ctx context.Context, query string) ([]entity.MovieSummary, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	return f.list("search")
}

func (f *fakeCatalog) FetchDetail(ctx context.Context, id int64) (*entity.MovieDetail, error) {
	gate, err := f.record("detail")
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return f.detail, nil
}

func (f *fakeCatalog) FetchCertifications(ctx context.Context, id int64) (*entity.CertificationSet, error) {
	gate, err := f.record("certifications")
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return f.certs, nil
}

func (f *fakeCatalog) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func movies(n int) []entity.MovieSummary {
	out := make([]entity.MovieSummary, n)
	for i := range out {
		out[i] = entity.MovieSummary{ID: int64(i + 1), Title: fmt.Sprintf("Movie %d", i+1)}
	}
	return out
}
