package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"moviehub/internal/data/entity"
	"moviehub/pkg/remote"

	"go.uber.org/zap"
)

// ErrEmptyQuery is returned by Search without contacting the catalog.
var ErrEmptyQuery = errors.New("search query is empty")

type CatalogRepository interface {
	// Listings, first page only
	FetchPopular(ctx context.Context) ([]entity.MovieSummary, error)
	FetchTopRated(ctx context.Context) ([]entity.MovieSummary, error)
	FetchUpcoming(ctx context.Context) ([]entity.MovieSummary, error)
	Search(ctx context.Context, query string) ([]entity.MovieSummary, error)

	// Single movie
	FetchDetail(ctx context.Context, id int64) (*entity.MovieDetail, error)
	FetchCertifications(ctx context.Context, id int64) (*entity.CertificationSet, error)
}

type catalogRepository struct {
	client remote.HTTPIface
	log    *zap.Logger
}

func NewCatalogRepository(client remote.HTTPIface, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		client: client,
		log:    log.With(zap.String("repository", "catalog")),
	}
}

func (r *catalogRepository) FetchPopular(ctx context.Context) ([]entity.MovieSummary, error) {
	return r.fetchList(ctx, "popular", "/movie/popular", nil)
}

func (r *catalogRepository) FetchTopRated(ctx context.Context) ([]entity.MovieSummary, error) {
	return r.fetchList(ctx, "top_rated", "/movie/top_rated", nil)
}

func (r *catalogRepository) FetchUpcoming(ctx context.Context) ([]entity.MovieSummary, error) {
	return r.fetchList(ctx, "upcoming", "/movie/upcoming", nil)
}

func (r *catalogRepository) Search(ctx context.Context, query string) ([]entity.MovieSummary, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("query", query)

	return r.fetchList(ctx, "search", "/search/movie", params)
}

func (r *catalogRepository) FetchDetail(ctx context.Context, id int64) (*entity.MovieDetail, error) {
	const endpoint = "movie_detail"

	body, err := r.client.Get(ctx, endpoint, fmt.Sprintf("/movie/%d", id), nil)
	if err != nil {
		r.log.Error("Failed to fetch movie detail",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("fetch movie detail: %w", err)
	}

	var movie entity.MovieDetail
	if err := json.Unmarshal(body, &movie); err != nil {
		return nil, r.decodeFailed(endpoint, err)
	}
	if movie.ID == 0 {
		return nil, r.decodeFailed(endpoint, errors.New("missing movie id"))
	}

	r.log.Debug("Movie detail fetched",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return &movie, nil
}

func (r *catalogRepository) FetchCertifications(ctx context.Context, id int64) (*entity.CertificationSet, error) {
	const endpoint = "release_dates"

	body, err := r.client.Get(ctx, endpoint, fmt.Sprintf("/movie/%d/release_dates", id), nil)
	if err != nil {
		r.log.Error("Failed to fetch certifications",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("fetch certifications: %w", err)
	}

	var set entity.CertificationSet
	if err := json.Unmarshal(body, &set); err != nil {
		return nil, r.decodeFailed(endpoint, err)
	}

	// Missing results means no certification data, not a malformed body.
	if set.Countries == nil {
		set.Countries = []entity.CountryRelease{}
	}
	if set.MovieID == 0 {
		set.MovieID = id
	}

	r.log.Debug("Certifications fetched",
		zap.Int64("movie_id", id),
		zap.Int("countries", len(set.Countries)),
	)

	return &set, nil
}

func (r *catalogRepository) fetchList(ctx context.Context, endpoint, path string, params url.Values) ([]entity.MovieSummary, error) {
	body, err := r.client.Get(ctx, endpoint, path, params)
	if err != nil {
		r.log.Error("Failed to fetch movies",
			zap.Error(err),
			zap.String("endpoint", endpoint),
		)
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}

	var page entity.Page[entity.MovieSummary]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, r.decodeFailed(endpoint, err)
	}
	if page.Results == nil {
		return nil, r.decodeFailed(endpoint, errors.New("missing results"))
	}

	r.log.Debug("Movies fetched",
		zap.String("endpoint", endpoint),
		zap.Int("count", len(page.Results)),
		zap.Int("total_results", page.TotalResults),
	)

	return page.Results, nil
}

func (r *catalogRepository) decodeFailed(endpoint string, err error) error {
	derr := &remote.DecodeError{Endpoint: endpoint, Err: err}
	r.log.Error("Failed to decode catalog response",
		zap.Error(derr),
		zap.String("endpoint", endpoint),
	)
	return derr
}
