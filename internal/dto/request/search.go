package request

// SearchRequest is a search submission after trimming. Any non-blank text is
// a valid query.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}
