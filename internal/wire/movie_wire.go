package wire

import (
	"moviehub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET / - Home, first 20 popular movies
	r.Get("/", movieHandler.Home)

	// GET /explore?filter=popular|top_rated|upcoming
	r.Get("/explore", movieHandler.Explore)

	// GET /{id} - Movie details
	r.Get("/{id}", movieHandler.Detail)
}
