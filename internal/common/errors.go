// Package common defines shared sentinel errors used across the hunt engine.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Catalog-level errors.
	ErrorUnknownItem = errors.New("unknown catalog item")

	// Photo evidence errors: marking an item found requires a decodable photo.
	ErrorPhotoRequired = errors.New("photo required")
	ErrorInvalidPhoto  = errors.New("invalid photo payload")

	// Export errors.
	ErrorNothingToExport = errors.New("nothing to export")
)
