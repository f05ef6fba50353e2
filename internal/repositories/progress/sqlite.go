package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkoroteev/streethunt/internal/dbx"
	"github.com/dkoroteev/streethunt/internal/logging"
	"github.com/dkoroteev/streethunt/internal/models"
)

const keyPrefix = "hunt_item_"

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db  dbx.DBTX
	log logging.Logger
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX, log logging.Logger) *SQLiteRepository {
	return &SQLiteRepository{db: db, log: log}
}

func storageKey(itemID string) string {
	return keyPrefix + itemID
}

// Load returns the stored record for the item. Any failure — no row, an
// unreadable row, a scan error — decodes to the default unfound record; only
// a warning is logged.
func (r *SQLiteRepository) Load(ctx context.Context, itemID string) models.ProgressRecord {
	var value []byte
	query := `SELECT value FROM progress WHERE key = ?`
	err := r.db.QueryRowContext(ctx, query, storageKey(itemID)).Scan(&value)
	if err != nil {
		return models.ProgressRecord{}
	}

	var rec models.ProgressRecord
	if err := json.Unmarshal(value, &rec); err != nil {
		r.log.Warn(ctx, "corrupt progress row, using default", "item", itemID, "error", err)
		return models.ProgressRecord{}
	}
	return rec
}

// Save upserts the record by key. On conflict the value column is replaced.
func (r *SQLiteRepository) Save(ctx context.Context, itemID string, rec models.ProgressRecord) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode progress record: %w", err)
	}

	query := `INSERT INTO progress (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err = r.db.ExecContext(ctx, query, storageKey(itemID), value)
	if err != nil {
		return fmt.Errorf("failed to upsert progress record: %w", err)
	}
	return nil
}
