package usecase

import (
	"context"
	"fmt"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CertificationPayload is what the Certification page renders: both halves
// are always present together.
type CertificationPayload struct {
	Movie          *entity.MovieDetail
	Certifications *entity.CertificationSet
}

// CertificationController drives the Certification page.
type CertificationController struct {
	catalog repository.CatalogRepository
	log     *zap.Logger
	state   *stateHolder[CertificationPayload]
}

func newCertificationController(catalog repository.CatalogRepository, log *zap.Logger) *CertificationController {
	return &CertificationController{
		catalog: catalog,
		log:     log.With(zap.String("page", "certification")),
		state:   newStateHolder[CertificationPayload]("certification"),
	}
}

// Mount fetches detail and certifications concurrently and leaves Loading
// only once both have resolved. Either failure fails the page; a failing half
// does not cancel the other.
func (c *CertificationController) Mount(ctx context.Context, rawID string) {
	t := c.state.begin()

	id, err := parseMovieID(rawID)
	if err != nil {
		c.log.Warn("Invalid movie ID", zap.String("movie_id", rawID), zap.Error(err))
		c.state.resolve(t, CertificationPayload{}, err)
		return
	}

	var (
		g       errgroup.Group
		payload CertificationPayload
	)

	g.Go(func() error {
		movie, err := c.catalog.FetchDetail(ctx, id)
		if err != nil {
			return fmt.Errorf("detail: %w", err)
		}
		payload.Movie = movie
		return nil
	})

	g.Go(func() error {
		set, err := c.catalog.FetchCertifications(ctx, id)
		if err != nil {
			return fmt.Errorf("certifications: %w", err)
		}
		payload.Certifications = set
		return nil
	})

	if err := g.Wait(); err != nil {
		c.log.Error("Failed to load certifications",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		c.state.resolve(t, CertificationPayload{}, err)
		return
	}

	c.log.Info("Certifications loaded",
		zap.Int64("movie_id", id),
		zap.Int("countries", len(payload.Certifications.Countries)),
	)
	c.state.resolve(t, payload, nil)
}

func (c *CertificationController) State() RequestState[CertificationPayload] {
	return c.state.get()
}
