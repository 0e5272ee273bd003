package usecase

import (
	"context"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

// DetailController drives the Movie Detail page.
type DetailController struct {
	catalog repository.CatalogRepository
	log     *zap.Logger
	state   *stateHolder[*entity.MovieDetail]
}

func newDetailController(catalog repository.CatalogRepository, log *zap.Logger) *DetailController {
	return &DetailController{
		catalog: catalog,
		log:     log.With(zap.String("page", "detail")),
		state:   newStateHolder[*entity.MovieDetail]("detail"),
	}
}

// Mount fetches the movie named by the address path segment rawID.
func (c *DetailController) Mount(ctx context.Context, rawID string) {
	t := c.state.begin()

	id, err := parseMovieID(rawID)
	if err != nil {
		c.log.Warn("Invalid movie ID", zap.String("movie_id", rawID), zap.Error(err))
		c.state.resolve(t, nil, err)
		return
	}

	movie, err := c.catalog.FetchDetail(ctx, id)
	if err != nil {
		c.log.Error("Failed to load movie detail",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		c.state.resolve(t, nil, err)
		return
	}

	c.log.Info("Movie detail loaded",
		zap.Int64("movie_id", id),
		zap.String("title", movie.Title),
	)
	c.state.resolve(t, movie, nil)
}

func (c *DetailController) State() RequestState[*entity.MovieDetail] {
	return c.state.get()
}

// parseMovieID validates an address path segment as a catalog id.
func parseMovieID(rawID string) (int64, error) {
	req := request.MovieIDRequest{ID: rawID}
	if err := validationError(utils.ValidateStruct(req)); err != nil {
		return 0, err
	}

	id, err := utils.ParseMovieID(rawID)
	if err != nil {
		return 0, &ValidationError{Fields: map[string]string{"ID": "Must be a positive movie id"}}
	}
	return id, nil
}
