package request

// MovieIDRequest is the movie identifier taken from the address path.
type MovieIDRequest struct {
	ID string `json:"id" validate:"required,number,max=12"`
}
