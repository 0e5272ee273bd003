package adaptor

import (
	"net/http"

	"moviehub/internal/dto/response"
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

// QueryField is the form field of a search submission.
const QueryField = "query"

type SearchHandler struct {
	service *usecase.Service
	images  response.Images
	log     *zap.Logger
}

func NewSearchHandler(service *usecase.Service, images response.Images, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		images:  images,
		log:     log.With(zap.String("handler", "search")),
	}
}

// Page handles GET /search. A q parameter repeats that search.
func (h *SearchHandler) Page(w http.ResponseWriter, r *http.Request) {
	page := h.service.Search()
	page.Restore(r.Context(), r.URL.Query())

	h.write(w, r, page)
}

// Submit handles POST /search. The response names the shareable address in
// Content-Location.
func (h *SearchHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	page := h.service.Search()
	if _, err := page.Submit(r.Context(), r.PostForm.Get(QueryField)); err != nil {
		fields, _ := validationFields(err)
		utils.ResponseBadRequest(w, "Please enter a movie title", fields)
		return
	}

	w.Header().Set("Content-Location", page.ShareURL())
	h.write(w, r, page)
}

func (h *SearchHandler) write(w http.ResponseWriter, r *http.Request, page *usecase.SearchController) {
	state := page.State()
	query := page.Query()

	content := response.SearchResponse{
		Query:    query,
		ShareURL: page.ShareURL(),
		Movies:   response.MoviesToCards(state.Data, h.images),
	}

	doc := response.PageResponse{
		Page:       "search",
		Title:      response.SearchTitle,
		Subtitle:   response.SearchSubtitle,
		Navigation: navigation(r, "/search"),
		Content:    content,
	}

	switch state.Phase {
	case usecase.PhaseIdle:
		doc.Notice = response.SearchIdle
	case usecase.PhaseSuccess:
		if len(state.Data) == 0 {
			doc.Notice = response.SearchEmpty(query)
		} else {
			content.Heading = response.SearchHeading
			content.Summary = response.SearchSummary(len(state.Data), query)
			doc.Content = content
		}
	}

	if query != "" {
		doc.Actions = []response.ActionResponse{{Label: "Clear Search", Href: "/search"}}
	}

	writePage(w, doc, state, "Search completed")
}
