package response

import (
	"strconv"
	"strings"
)

type FilterResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Href        string `json:"href"`
	Active      bool   `json:"active"`
}

type ListingResponse struct {
	Heading     string              `json:"heading"`
	Description string              `json:"description"`
	Filters     []FilterResponse    `json:"filters,omitempty"`
	Movies      []MovieCardResponse `json:"movies"`
}

type SearchResponse struct {
	Query    string              `json:"query"`
	ShareURL string              `json:"share_url"`
	Heading  string              `json:"heading,omitempty"`
	Summary  string              `json:"summary,omitempty"`
	Movies   []MovieCardResponse `json:"movies"`
}

const (
	HomeTitle    = "Welcome to MovieHub"
	HomeSubtitle = "Discover millions of movies, TV shows and people. Explore what's trending and find your next favorite."
	HomeHeading  = "Popular Movies"
	HomeTagline  = "Trending movies that everyone's talking about"
	HomeFailure  = "Unable to load movies at the moment. Please try again later."

	ExploreTitle    = "Explore Movies"
	ExploreSubtitle = "Discover movies by categories and find your next favorite"

	SearchTitle    = "Search Movies"
	SearchSubtitle = "Discover your next favorite movie from millions of titles"
	SearchHeading  = "Search Results"
	SearchIdle     = "Enter a movie title above to discover amazing films"
)

func ExploreFailure(label string) string {
	return "Unable to load " + strings.ToLower(label) + " movies at the moment."
}

func SearchSummary(count int, query string) string {
	return "Found " + strconv.Itoa(count) + " results for \"" + query + "\""
}

func SearchEmpty(query string) string {
	return "We couldn't find any movies matching \"" + query + "\""
}
