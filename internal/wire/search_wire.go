package wire

import (
	"moviehub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSearch(r chi.Router, searchHandler *adaptor.SearchHandler) {
	// GET /search?q= - Search page, q repeats a shared search
	r.Get("/search", searchHandler.Page)

	// POST /search - form submission with field "query"
	r.Post("/search", searchHandler.Submit)
}
