package httpx

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type APIError struct {
	Service string
	Status  int
	Body    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api status %d: %s", e.Service, e.Status, e.Body)
}
