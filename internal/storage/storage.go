// Package storage resolves uploaded files to hosted URLs. The rest of the
// backend only ever reads the resulting URL strings.
package storage

import (
	"context"
	"io"
)

// Uploader stores an object under key and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
