package response

import (
	"strconv"
	"strings"

	"moviehub/internal/data/entity"
)

const (
	PosterSize   = "w500"
	BackdropSize = "w1280"

	CardPlaceholder   = "https://via.placeholder.com/300x450/1f2937/ffffff?text=No+Image"
	DetailPlaceholder = "https://via.placeholder.com/500x750/1f2937/ffffff?text=No+Image"

	NoOverview = "No overview available for this movie."
)

// Images builds artwork URLs against the image CDN base.
type Images struct {
	BaseURL string
}

func (i Images) url(size, path string) string {
	return strings.TrimRight(i.BaseURL, "/") + "/" + size + path
}

func (i Images) Poster(path *string, placeholder string) string {
	p, ok := entity.Optional(path)
	if !ok {
		return placeholder
	}
	return i.url(PosterSize, p)
}

// Backdrop returns nil when the movie has no backdrop.
func (i Images) Backdrop(path *string) *string {
	p, ok := entity.Optional(path)
	if !ok {
		return nil
	}
	u := i.url(BackdropSize, p)
	return &u
}

type MovieCardResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Href        string `json:"href"`
	PosterURL   string `json:"poster_url"`
	Overview    string `json:"overview,omitempty"`
	ReleaseDate string `json:"release_date"`
	Rating      string `json:"rating"`
	VoteCount   int    `json:"vote_count"`
}

type MovieDetailResponse struct {
	ID                  int64             `json:"id"`
	Title               string            `json:"title"`
	Tagline             string            `json:"tagline,omitempty"`
	Overview            string            `json:"overview"`
	PosterURL           string            `json:"poster_url"`
	BackdropURL         *string           `json:"backdrop_url,omitempty"`
	ReleaseDate         string            `json:"release_date"`
	Rating              string            `json:"rating"`
	VoteCount           int               `json:"vote_count"`
	Runtime             string            `json:"runtime"`
	Status              string            `json:"status"`
	OriginalLanguage    string            `json:"original_language"`
	LanguageName        string            `json:"language_name"`
	Budget              string            `json:"budget"`
	Revenue             string            `json:"revenue"`
	Genres              []GenreResponse   `json:"genres"`
	ProductionCompanies []CompanyResponse `json:"production_companies"`
	CertificationHref   string            `json:"certification_href"`
}

func MovieHref(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

func CertificationHref(id int64) string {
	return MovieHref(id) + "/certification"
}

func MovieToCard(movie entity.MovieSummary, images Images) MovieCardResponse {
	overview, _ := entity.Optional(movie.Overview)

	return MovieCardResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Href:        MovieHref(movie.ID),
		PosterURL:   images.Poster(movie.PosterPath, CardPlaceholder),
		Overview:    overview,
		ReleaseDate: FormatCardDate(movie.ReleaseDate),
		Rating:      FormatRating(movie.VoteAverage),
		VoteCount:   voteCount(movie.VoteCount),
	}
}

// MoviesToCards always returns a non-nil slice.
func MoviesToCards(movies []entity.MovieSummary, images Images) []MovieCardResponse {
	cards := make([]MovieCardResponse, 0, len(movies))
	for _, m := range movies {
		cards = append(cards, MovieToCard(m, images))
	}
	return cards
}

func MovieToDetailResponse(movie *entity.MovieDetail, images Images) MovieDetailResponse {
	overview, ok := entity.Optional(movie.Overview)
	if !ok {
		overview = NoOverview
	}

	status := movie.Status
	if status == "" {
		status = NotAvailable
	}

	return MovieDetailResponse{
		ID:                  movie.ID,
		Title:               movie.Title,
		Tagline:             movie.Tagline,
		Overview:            overview,
		PosterURL:           images.Poster(movie.PosterPath, DetailPlaceholder),
		BackdropURL:         images.Backdrop(movie.BackdropPath),
		ReleaseDate:         FormatCardDate(movie.ReleaseDate),
		Rating:              FormatRating(movie.VoteAverage),
		VoteCount:           voteCount(movie.VoteCount),
		Runtime:             FormatRuntime(movie.Runtime),
		Status:              status,
		OriginalLanguage:    LanguageCode(&movie.OriginalLanguage),
		LanguageName:        LanguageName(movie.OriginalLanguage),
		Budget:              FormatCurrency(movie.Budget),
		Revenue:             FormatCurrency(movie.Revenue),
		Genres:              GenresToResponse(movie.Genres),
		ProductionCompanies: CompaniesToResponse(movie.ProductionCompanies),
		CertificationHref:   CertificationHref(movie.ID),
	}
}

func voteCount(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
