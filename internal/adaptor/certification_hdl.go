package adaptor

import (
	"net/http"

	"moviehub/internal/dto/response"
	"moviehub/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CertificationHandler struct {
	service *usecase.Service
	images  response.Images
	log     *zap.Logger
}

func NewCertificationHandler(service *usecase.Service, images response.Images, log *zap.Logger) *CertificationHandler {
	return &CertificationHandler{
		service: service,
		images:  images,
		log:     log.With(zap.String("handler", "certification")),
	}
}

// Page handles GET /{id}/certification
func (h *CertificationHandler) Page(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	page := h.service.Certification()
	page.Mount(r.Context(), id)
	state := page.State()

	doc := response.PageResponse{
		Page:       "certification",
		Title:      response.CertificationTitle,
		Navigation: navigation(r, ""),
		Actions:    []response.ActionResponse{{Label: "Back to Movie Details", Href: "/" + id}},
	}

	if state.Phase == usecase.PhaseSuccess {
		content := response.CertificationToResponse(state.Data.Movie, state.Data.Certifications, h.images)
		doc.Subtitle = content.Subtitle
		doc.Content = content
		if content.EmptyLabel != "" {
			doc.Notice = content.EmptyLabel
		}
	}

	writePage(w, doc, state, "Certifications retrieved successfully")
}
