package progress

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dkoroteev/streethunt/internal/logging"
	"github.com/dkoroteev/streethunt/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE progress (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func newRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	return NewSQLiteRepository(db, logging.NewDefault()), db
}

func ptr[T any](v T) *T { return &v }

func TestLoad_MissingRowYieldsDefault(t *testing.T) {
	r, _ := newRepo(t)

	rec := r.Load(context.Background(), "item-1")
	assert.True(t, rec.Equal(models.ProgressRecord{}))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()
	ts := time.Date(2025, 3, 2, 15, 4, 5, 0, time.UTC)

	in := models.ProgressRecord{
		Found:        true,
		Photo:        []byte{0xff, 0xd8, 0x00, 0x10},
		FoundAt:      &ts,
		FoundAddress: ptr("47 Victoria Rd"),
		FoundLat:     ptr(43.66054),
		FoundLon:     ptr(-79.37699),
	}
	require.NoError(t, r.Save(ctx, "item-1", in))

	got := r.Load(ctx, "item-1")
	assert.True(t, in.Equal(got), "got %+v", got)
}

func TestSave_OverwritesPriorValue(t *testing.T) {
	r, db := newRepo(t)
	ctx := context.Background()
	ts := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, r.Save(ctx, "item-1", models.ProgressRecord{
		Found: true, Photo: []byte("first"), FoundAt: &ts,
	}))
	require.NoError(t, r.Save(ctx, "item-1", models.ProgressRecord{}))

	got := r.Load(ctx, "item-1")
	assert.True(t, got.Equal(models.ProgressRecord{}))

	// still exactly one row under the namespaced key
	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM progress`).Scan(&n))
	assert.Equal(t, 1, n)

	var key string
	require.NoError(t, db.QueryRow(`SELECT key FROM progress`).Scan(&key))
	assert.Equal(t, "hunt_item_item-1", key)
}

func TestLoad_CorruptRowYieldsDefault(t *testing.T) {
	r, db := newRepo(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO progress (key, value) VALUES (?, ?)`,
		"hunt_item_item-1", []byte("{not json"))
	require.NoError(t, err)

	rec := r.Load(ctx, "item-1")
	assert.True(t, rec.Equal(models.ProgressRecord{}))
}

func TestRecordsAreIndependentPerKey(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()
	ts := time.Now().UTC()

	require.NoError(t, r.Save(ctx, "a", models.ProgressRecord{Found: true, Photo: []byte("pa"), FoundAt: &ts}))

	assert.True(t, r.Load(ctx, "a").Found)
	assert.False(t, r.Load(ctx, "b").Found)
}
