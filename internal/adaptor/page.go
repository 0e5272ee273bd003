package adaptor

import (
	"errors"
	"net/http"

	"moviehub/internal/dto/response"
	"moviehub/internal/usecase"
	"moviehub/pkg/remote"
	"moviehub/pkg/utils"
)

// MenuParam opens the navigation menu when set to "open".
const MenuParam = "menu"

func navigation(r *http.Request, active string) response.NavigationResponse {
	nav := usecase.NewNavigation()
	if r.URL.Query().Get(MenuParam) == "open" {
		nav.Toggle()
	}

	links := nav.Links()
	out := make([]response.LinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, response.LinkResponse{Label: l.Label, Href: l.Href})
	}
	return response.NewNavigation(nav.IsOpen(), active, out)
}

// failureStatus maps the error behind a Failure state to an HTTP status.
func failureStatus(err error) int {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case remote.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// writePage renders page for state. Failures carry only the user-facing
// reason; the underlying error stays in the logs.
func writePage[T any](w http.ResponseWriter, page response.PageResponse, state usecase.RequestState[T], message string) {
	page.State = state.Phase.String()

	if state.Phase == usecase.PhaseFailure {
		if page.Notice == "" {
			page.Notice = state.Reason
		}
		utils.ResponsePage(w, failureStatus(state.Err), state.Reason, page)
		return
	}

	utils.ResponsePage(w, http.StatusOK, message, page)
}

func validationFields(err error) (map[string]string, bool) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields, true
	}
	return nil, false
}
