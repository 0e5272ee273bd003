package request

type ExploreRequest struct {
	Filter string `json:"filter" validate:"required,oneof=popular top_rated upcoming"`
}
