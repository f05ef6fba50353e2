// Package hunt implements the progress controller: the single owner of all
// per-item discovery state.
package hunt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dkoroteev/streethunt/internal/catalog"
	"github.com/dkoroteev/streethunt/internal/common"
	"github.com/dkoroteev/streethunt/internal/geoloc"
	"github.com/dkoroteev/streethunt/internal/imagex"
	"github.com/dkoroteev/streethunt/internal/logging"
	"github.com/dkoroteev/streethunt/internal/models"
	"github.com/dkoroteev/streethunt/internal/repositories/progress"
	"github.com/dkoroteev/streethunt/internal/services/reward"
)

// Service holds the authoritative in-memory cache of every item's
// ProgressRecord, loaded from the repository at construction.
//
// Service is not internally synchronized. Callers must serialize all
// mutating calls (MarkFound, ClearFound, ResetAll, Subscribe) on a single
// goroutine; reads may interleave on that same goroutine. Subscribers are
// invoked synchronously from the mutating call.
//
// Persistence is best-effort: save failures are logged and swallowed, the
// in-memory state stays authoritative for the life of the process.
type Service struct {
	catalog *catalog.Catalog
	repo    progress.Repository
	log     logging.Logger
	now     func() time.Time

	cache   map[string]models.ProgressRecord
	subs    map[int]func(Event)
	nextSub int
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used to stamp FoundAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService loads the record of every catalog item through the repository
// and returns a ready controller. Items without a persisted record start as
// the default unfound record.
func NewService(ctx context.Context, cat *catalog.Catalog, repo progress.Repository, log logging.Logger, opts ...Option) *Service {
	s := &Service{
		catalog: cat,
		repo:    repo,
		log:     log,
		now:     time.Now,
		cache:   make(map[string]models.ProgressRecord, cat.Size()),
		subs:    make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, item := range cat.Items() {
		s.cache[item.ID] = repo.Load(ctx, item.ID)
	}

	return s
}

// Subscribe registers fn to receive progress events. The returned func
// removes the subscription.
func (s *Service) Subscribe(fn func(Event)) func() {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Service) notify(ev Event) {
	for _, fn := range s.subs {
		fn(ev)
	}
}

// Items returns the full catalog in seed order.
func (s *Service) Items() []models.HuntItem {
	return s.catalog.Items()
}

// IsFound reports whether the item has been found. Unknown ids are simply
// not found.
func (s *Service) IsFound(itemID string) bool {
	return s.cache[itemID].Found
}

// Photo returns the stored photo for the item, or nil when the item has not
// been found or no photo survived decoding.
func (s *Service) Photo(itemID string) []byte {
	return s.cache[itemID].Photo
}

// Record returns the current progress record for the item.
func (s *Service) Record(itemID string) (models.ProgressRecord, bool) {
	rec, ok := s.cache[itemID]
	return rec, ok
}

// FoundCount returns the number of found items.
func (s *Service) FoundCount() int {
	n := 0
	for _, rec := range s.cache {
		if rec.Found {
			n++
		}
	}
	return n
}

// Summary evaluates the reward tier for the current found count. Note that
// the code changes on every call.
func (s *Service) Summary() reward.Summary {
	return reward.Summarize(s.FoundCount(), s.catalog.Size())
}

// Filter returns catalog items whose name or address contains the query,
// case-insensitively, preserving catalog order. An empty or whitespace-only
// query returns the full catalog.
func (s *Service) Filter(query string) []models.HuntItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.catalog.Items()
	}

	var out []models.HuntItem
	for _, item := range s.catalog.Items() {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Address), q) {
			out = append(out, item)
		}
	}
	return out
}

// MarkFound records the item as found: the photo is downsampled and
// re-encoded, FoundAt is stamped with the current time, and any location
// info in fix is copied through. Calling it on an already-found item
// replaces the previous photo, timestamp and location.
//
// The photo is required evidence: an empty or undecodable payload is
// rejected and the record is left untouched.
func (s *Service) MarkFound(ctx context.Context, itemID string, photo []byte, fix geoloc.Fix) error {
	if _, ok := s.catalog.ByID(itemID); !ok {
		return fmt.Errorf("%w: %s", common.ErrorUnknownItem, itemID)
	}
	if len(photo) == 0 {
		return common.ErrorPhotoRequired
	}

	thumb, err := imagex.Thumbnail(photo, imagex.MaxLongEdge)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorInvalidPhoto, err)
	}

	ts := s.now()
	rec := models.ProgressRecord{
		Found:        true,
		Photo:        thumb,
		FoundAt:      &ts,
		FoundAddress: fix.Address,
		FoundLat:     fix.Lat,
		FoundLon:     fix.Lon,
	}

	s.cache[itemID] = rec
	s.save(ctx, itemID, rec)
	s.notify(Event{Kind: EventFound, ItemID: itemID})
	return nil
}

// ClearFound resets the item to the default unfound record, nulling the
// photo, timestamp and location as one group. Clearing an already-unfound
// item converges to the same state (the write still happens).
func (s *Service) ClearFound(ctx context.Context, itemID string) error {
	if _, ok := s.catalog.ByID(itemID); !ok {
		return fmt.Errorf("%w: %s", common.ErrorUnknownItem, itemID)
	}

	rec := models.ProgressRecord{}
	s.cache[itemID] = rec
	s.save(ctx, itemID, rec)
	s.notify(Event{Kind: EventCleared, ItemID: itemID})
	return nil
}

// ResetAll clears every catalog item and notifies subscribers exactly once
// after the whole catalog has been reset.
func (s *Service) ResetAll(ctx context.Context) {
	for _, item := range s.catalog.Items() {
		rec := models.ProgressRecord{}
		s.cache[item.ID] = rec
		s.save(ctx, item.ID, rec)
	}
	s.notify(Event{Kind: EventReset})
}

// save persists best-effort; failures are logged, the cache stays
// authoritative.
func (s *Service) save(ctx context.Context, itemID string, rec models.ProgressRecord) {
	if err := s.repo.Save(ctx, itemID, rec); err != nil {
		s.log.Error(ctx, "failed to persist progress", "item", itemID, "error", err)
	}
}
