package adaptor

import (
	"net/http"

	"moviehub/internal/dto/response"
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FilterParam selects the Explore listing.
const FilterParam = "filter"

type MovieHandler struct {
	service *usecase.Service
	images  response.Images
	log     *zap.Logger
}

func NewMovieHandler(service *usecase.Service, images response.Images, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		images:  images,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// Home handles GET /
func (h *MovieHandler) Home(w http.ResponseWriter, r *http.Request) {
	page := h.service.Home()
	page.Mount(r.Context())
	state := page.State()

	doc := response.PageResponse{
		Page:       "home",
		Title:      response.HomeTitle,
		Subtitle:   response.HomeSubtitle,
		Navigation: navigation(r, "/"),
		Content: response.ListingResponse{
			Heading:     response.HomeHeading,
			Description: response.HomeTagline,
			Movies:      response.MoviesToCards(state.Data, h.images),
		},
		Actions: []response.ActionResponse{
			{Label: "Start Searching", Href: "/search"},
			{Label: "Explore Movies", Href: "/explore"},
		},
	}
	if state.Phase == usecase.PhaseFailure {
		doc.Notice = response.HomeFailure
	}

	writePage(w, doc, state, "Popular movies retrieved successfully")
}

// Explore handles GET /explore?filter=
func (h *MovieHandler) Explore(w http.ResponseWriter, r *http.Request) {
	page := h.service.Explore()

	if key := r.URL.Query().Get(FilterParam); key != "" {
		if err := page.Select(r.Context(), key); err != nil {
			fields, _ := validationFields(err)
			utils.ResponseBadRequest(w, "Invalid filter", fields)
			return
		}
	} else {
		page.Mount(r.Context())
	}

	state := page.State()
	active, _ := usecase.LookupFilter(page.Filter())

	filters := make([]response.FilterResponse, 0, len(usecase.ExploreFilters))
	for _, f := range usecase.ExploreFilters {
		filters = append(filters, response.FilterResponse{
			Key:         string(f.Key),
			Label:       f.Label,
			Description: f.Description,
			Href:        "/explore?" + FilterParam + "=" + string(f.Key),
			Active:      f.Key == active.Key,
		})
	}

	doc := response.PageResponse{
		Page:       "explore",
		Title:      response.ExploreTitle,
		Subtitle:   response.ExploreSubtitle,
		Navigation: navigation(r, "/explore"),
		Content: response.ListingResponse{
			Heading:     active.Label + " Movies",
			Description: active.Description,
			Filters:     filters,
			Movies:      response.MoviesToCards(state.Data, h.images),
		},
	}
	if state.Phase == usecase.PhaseFailure {
		doc.Notice = response.ExploreFailure(active.Label)
	}

	writePage(w, doc, state, active.Label+" movies retrieved successfully")
}

// Detail handles GET /{id}
func (h *MovieHandler) Detail(w http.ResponseWriter, r *http.Request) {
	page := h.service.Detail()
	page.Mount(r.Context(), chi.URLParam(r, "id"))
	state := page.State()

	doc := response.PageResponse{
		Page:       "detail",
		Navigation: navigation(r, ""),
	}

	if state.Phase == usecase.PhaseSuccess {
		detail := response.MovieToDetailResponse(state.Data, h.images)
		doc.Title = detail.Title
		doc.Subtitle = detail.Tagline
		doc.Content = detail
		doc.Actions = []response.ActionResponse{
			{Label: "View Certifications", Href: detail.CertificationHref},
		}
	} else {
		doc.Title = "Movie Not Found"
		doc.Actions = []response.ActionResponse{{Label: "Back to Home", Href: "/"}}
	}

	writePage(w, doc, state, "Movie retrieved successfully")
}
