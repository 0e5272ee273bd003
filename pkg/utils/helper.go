package utils

import (
	"fmt"
	"strconv"
)

// ParseMovieID converts a path segment into a catalog movie id.
func ParseMovieID(value string) (int64, error) {
	if value == "" {
		return 0, fmt.Errorf("movie id is empty")
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid movie id %q: %w", value, err)
	}

	if id < 1 {
		return 0, fmt.Errorf("invalid movie id %q: must be positive", value)
	}

	return id, nil
}
