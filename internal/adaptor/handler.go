package adaptor

import (
	"moviehub/internal/dto/response"
	"moviehub/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie         *MovieHandler
	Search        *SearchHandler
	Certification *CertificationHandler
}

func NewHandler(service *usecase.Service, images response.Images, log *zap.Logger) *Handler {
	return &Handler{
		Movie:         NewMovieHandler(service, images, log),
		Search:        NewSearchHandler(service, images, log),
		Certification: NewCertificationHandler(service, images, log),
	}
}
