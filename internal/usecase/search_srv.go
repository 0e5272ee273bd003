package usecase

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

// QueryParam is the shareable address parameter carrying the search text.
const QueryParam = "q"

const searchPath = "/search"

// SearchController drives the Search page.
type SearchController struct {
	catalog repository.CatalogRepository
	log     *zap.Logger

	mu    sync.Mutex
	query string
	state *stateHolder[[]entity.MovieSummary]
}

func newSearchController(catalog repository.CatalogRepository, log *zap.Logger) *SearchController {
	return &SearchController{
		catalog: catalog,
		log:     log.With(zap.String("page", "search")),
		state:   newStateHolder[[]entity.MovieSummary]("search"),
	}
}

// Submit handles a form submission. Empty or whitespace-only text is rejected
// locally: no request is issued and neither the query nor the state change.
// On success the trimmed query is reflected into the returned address
// parameters and searched.
func (c *SearchController) Submit(ctx context.Context, raw string) (url.Values, error) {
	query := strings.TrimSpace(raw)

	req := request.SearchRequest{Query: query}
	if err := validationError(utils.ValidateStruct(req)); err != nil {
		c.log.Debug("Search submission rejected", zap.Error(err))
		return nil, err
	}

	c.setQuery(query)
	c.run(ctx, query)

	return ShareParams(query), nil
}

// Restore re-runs the search carried by an address. It reports whether a
// search was triggered.
func (c *SearchController) Restore(ctx context.Context, params url.Values) bool {
	query := strings.TrimSpace(params.Get(QueryParam))
	if query == "" {
		return false
	}

	c.setQuery(query)
	c.run(ctx, query)
	return true
}

// Clear drops the query and returns the page to Idle.
func (c *SearchController) Clear() {
	c.setQuery("")
	c.state.reset()
}

func (c *SearchController) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// ShareURL is the address that restores the current search.
func (c *SearchController) ShareURL() string {
	query := c.Query()
	if query == "" {
		return searchPath
	}
	return searchPath + "?" + ShareParams(query).Encode()
}

func (c *SearchController) State() RequestState[[]entity.MovieSummary] {
	return c.state.get()
}

func (c *SearchController) setQuery(query string) {
	c.mu.Lock()
	c.query = query
	c.mu.Unlock()
}

func (c *SearchController) run(ctx context.Context, query string) {
	t := c.state.begin()

	movies, err := c.catalog.Search(ctx, query)
	if err != nil {
		c.log.Error("Search failed",
			zap.Error(err),
			zap.String("query", query),
		)
		c.state.resolve(t, nil, err)
		return
	}

	c.log.Info("Search completed",
		zap.String("query", query),
		zap.Int("count", len(movies)),
	)
	c.state.resolve(t, movies, nil)
}

// ShareParams builds the address parameters for query.
func ShareParams(query string) url.Values {
	params := url.Values{}
	params.Set(QueryParam, query)
	return params
}
