package usecase

import (
	"context"
	"sync"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type Filter string

const (
	FilterPopular  Filter = "popular"
	FilterTopRated Filter = "top_rated"
	FilterUpcoming Filter = "upcoming"
)

// HomeListingLimit is how many popular movies the home page shows.
const HomeListingLimit = 20

type FilterOption struct {
	Key         Filter
	Label       string
	Description string
}

var ExploreFilters = []FilterOption{
	{Key: FilterPopular, Label: "Popular", Description: "Most popular movies right now"},
	{Key: FilterTopRated, Label: "Top Rated", Description: "Highest rated movies of all time"},
	{Key: FilterUpcoming, Label: "Upcoming", Description: "Coming soon to theaters"},
}

func LookupFilter(key Filter) (FilterOption, bool) {
	for _, f := range ExploreFilters {
		if f.Key == key {
			return f, true
		}
	}
	return FilterOption{}, false
}

// ListingController drives the Home and Explore pages.
type ListingController struct {
	catalog    repository.CatalogRepository
	log        *zap.Logger
	limit      int
	selectable bool

	mu     sync.Mutex
	filter Filter
	state  *stateHolder[[]entity.MovieSummary]
}

func newHomeController(catalog repository.CatalogRepository, log *zap.Logger) *ListingController {
	return &ListingController{
		catalog: catalog,
		log:     log.With(zap.String("page", "home")),
		limit:   HomeListingLimit,
		filter:  FilterPopular,
		state:   newStateHolder[[]entity.MovieSummary]("home"),
	}
}

func newExploreController(catalog repository.CatalogRepository, log *zap.Logger) *ListingController {
	return &ListingController{
		catalog:    catalog,
		log:        log.With(zap.String("page", "explore")),
		selectable: true,
		filter:     FilterPopular,
		state:      newStateHolder[[]entity.MovieSummary]("explore"),
	}
}

// Mount loads the listing for the current filter.
func (c *ListingController) Mount(ctx context.Context) {
	c.load(ctx, c.Filter())
}

// Select switches the Explore filter and reloads. An unknown filter is
// rejected without a request and leaves the state untouched. A fetch still in
// flight for the previous filter is not cancelled.
func (c *ListingController) Select(ctx context.Context, key string) error {
	if !c.selectable {
		return ErrFilterNotSupported
	}

	req := request.ExploreRequest{Filter: key}
	if err := validationError(utils.ValidateStruct(req)); err != nil {
		c.log.Warn("Invalid explore filter", zap.String("filter", key))
		return err
	}

	f := Filter(key)
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()

	c.load(ctx, f)
	return nil
}

func (c *ListingController) Filter() Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

func (c *ListingController) State() RequestState[[]entity.MovieSummary] {
	return c.state.get()
}

func (c *ListingController) load(ctx context.Context, f Filter) {
	t := c.state.begin()

	movies, err := c.fetch(ctx, f)
	if err != nil {
		c.log.Error("Failed to load listing",
			zap.Error(err),
			zap.String("filter", string(f)),
		)
		c.state.resolve(t, nil, err)
		return
	}

	if c.limit > 0 && len(movies) > c.limit {
		movies = movies[:c.limit]
	}

	c.log.Info("Listing loaded",
		zap.String("filter", string(f)),
		zap.Int("count", len(movies)),
	)
	c.state.resolve(t, movies, nil)
}

func (c *ListingController) fetch(ctx context.Context, f Filter) ([]entity.MovieSummary, error) {
	switch f {
	case FilterTopRated:
		return c.catalog.FetchTopRated(ctx)
	case FilterUpcoming:
		return c.catalog.FetchUpcoming(ctx)
	default:
		return c.catalog.FetchPopular(ctx)
	}
}
