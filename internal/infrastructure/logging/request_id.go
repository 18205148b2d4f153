package logging

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a new request identifier
func GenerateRequestID() string {
	return "req_" + uuid.New().String()
}
