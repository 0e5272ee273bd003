package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// ValidRequestID reports whether an inbound X-Request-ID can be reused as is.
func ValidRequestID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
