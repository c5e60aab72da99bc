package blog

import (
	"errors"
	"fmt"
)

type Op string

const (
	OpList   Op = "list"
	OpGet    Op = "get"
	OpCreate Op = "create"
)

// ErrFetch matches any *FetchError via errors.Is.
var ErrFetch = errors.New("fetch error")

// FetchError is returned when the remote blog service answers with a non 2xx status.
// Not found and every other failure are reported the same way.
type FetchError struct {
	Op         Op
	StatusCode int
	Message    string
}

func newFetchError(op Op, statusCode int) *FetchError {
	return &FetchError{
		Op:         op,
		StatusCode: statusCode,
		Message:    fetchErrorMessages[op],
	}
}

var fetchErrorMessages = map[Op]string{
	OpList:   "Failed to fetch blogs",
	OpGet:    "Failed to fetch blog",
	OpCreate: "Failed to create blog",
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

func (e *FetchError) String() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
}
