package id

import "github.com/google/uuid"

// New returns a random UUIDv4 string used to correlate log lines of one request.
func New() string {
	return uuid.NewString()
}
