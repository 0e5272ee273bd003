package wire

import (
	"moviehub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCertification(r chi.Router, certificationHandler *adaptor.CertificationHandler) {
	// GET /{id}/certification - release dates and ratings per country
	r.Get("/{id}/certification", certificationHandler.Page)
}
