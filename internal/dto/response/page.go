package response

// PageResponse is the document rendered for one page address. Content is
// only set once the page has data to show.
type PageResponse struct {
	Page       string             `json:"page"`
	State      string             `json:"state"`
	Title      string             `json:"title"`
	Subtitle   string             `json:"subtitle,omitempty"`
	Navigation NavigationResponse `json:"navigation"`
	Content    any                `json:"content,omitempty"`
	Notice     string             `json:"notice,omitempty"`
	Actions    []ActionResponse   `json:"actions,omitempty"`
}

type LinkResponse struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type NavigationResponse struct {
	Brand    string         `json:"brand"`
	MenuOpen bool           `json:"menu_open"`
	Links    []LinkResponse `json:"links"`
}

// ActionResponse is a follow-up the page offers, such as clearing a search
// or going back to the movie.
type ActionResponse struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

const Brand = "MovieHub"

func NewNavigation(menuOpen bool, active string, links []LinkResponse) NavigationResponse {
	out := make([]LinkResponse, len(links))
	for i, l := range links {
		l.Active = l.Href == active
		out[i] = l
	}
	return NavigationResponse{Brand: Brand, MenuOpen: menuOpen, Links: out}
}
