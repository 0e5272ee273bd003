package entity

// MovieSummary is the listing record produced by the popular, top rated,
// upcoming and search endpoints.
type MovieSummary struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	PosterPath  *string  `json:"poster_path"`
	Overview    *string  `json:"overview"`
	ReleaseDate *string  `json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`
	VoteCount   *int     `json:"vote_count"`
}

// MovieDetail is the full record of a single movie.
type MovieDetail struct {
	MovieSummary
	Tagline             string              `json:"tagline"`
	Runtime             *int                `json:"runtime"` // minutes
	Budget              *int64              `json:"budget"`
	Revenue             *int64              `json:"revenue"`
	Status              string              `json:"status"`
	OriginalLanguage    string              `json:"original_language"`
	Genres              []Genre             `json:"genres"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	BackdropPath        *string             `json:"backdrop_path"`
}

// Optional returns the value behind an optional string field, treating the
// catalog's empty strings the same as an absent field.
func Optional(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}
