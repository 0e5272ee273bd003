package entity

// Page is the list envelope returned by the catalog for listing and search
// endpoints. Only the first page is ever requested.
type Page[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}
