// Package artifact publishes generated report documents to a destination:
// a local export directory or an S3-compatible bucket. Call sites depend on
// the Store interface instead of concrete implementations.
package artifact

import "context"

// Store persists a named artifact and returns its final location (a file
// path or an object URL).
type Store interface {
	Put(ctx context.Context, name string, data []byte) (location string, err error)
}
