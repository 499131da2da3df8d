package service

import (
	"context"
	"errors"
	"io"
)

// ErrContentNotFound is returned when no artifact exists for a course.
var ErrContentNotFound = errors.New("course content not found")

// ContentStore resolves downloadable course artifacts. The entitlement check
// happens before this layer; the store only answers existence and streaming.
type ContentStore interface {
	// Open returns a reader over the course's content archive along with the
	// suggested attachment filename. Missing artifacts are reported as
	// ErrContentNotFound.
	Open(ctx context.Context, courseID string) (io.ReadCloser, string, error)
}
