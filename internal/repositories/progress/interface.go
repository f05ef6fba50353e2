package progress

import (
	"context"

	"github.com/dkoroteev/streethunt/internal/models"
)

// Repository stores one ProgressRecord per catalog item id.
type Repository interface {
	// Load returns the persisted record for the item, or the default
	// unfound record when none exists or the stored value is unreadable.
	Load(ctx context.Context, itemID string) models.ProgressRecord

	// Save upserts the record under the item's key. The write is atomic
	// from the reader's perspective.
	Save(ctx context.Context, itemID string, rec models.ProgressRecord) error
}
