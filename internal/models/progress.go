package models

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// ProgressRecord is the mutable discovery state for one catalog item.
//
// Invariants:
//   - Found == false implies Photo, FoundAt and all location fields are absent.
//   - Found == true implies Photo is present; location fields are best-effort.
type ProgressRecord struct {
	Found        bool
	Photo        []byte
	FoundAt      *time.Time
	FoundAddress *string
	FoundLat     *float64
	FoundLon     *float64
}

// progressJSON is the wire form of ProgressRecord: the photo is carried as
// base64 text, the timestamp as RFC 3339.
type progressJSON struct {
	Found        bool     `json:"found"`
	Photo        string   `json:"photo,omitempty"`
	FoundAt      string   `json:"found_at,omitempty"`
	FoundAddress *string  `json:"found_address,omitempty"`
	FoundLat     *float64 `json:"found_lat,omitempty"`
	FoundLon     *float64 `json:"found_lon,omitempty"`
}

// MarshalJSON encodes the record into its wire form.
func (r ProgressRecord) MarshalJSON() ([]byte, error) {
	w := progressJSON{
		Found:        r.Found,
		FoundAddress: r.FoundAddress,
		FoundLat:     r.FoundLat,
		FoundLon:     r.FoundLon,
	}
	if len(r.Photo) > 0 {
		w.Photo = base64.StdEncoding.EncodeToString(r.Photo)
	}
	if r.FoundAt != nil {
		w.FoundAt = r.FoundAt.UTC().Format(time.RFC3339Nano)
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the wire form. A photo that fails base64 decoding is
// treated as absent, not as an error.
func (r *ProgressRecord) UnmarshalJSON(data []byte) error {
	var w progressJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	rec := ProgressRecord{
		Found:        w.Found,
		FoundAddress: w.FoundAddress,
		FoundLat:     w.FoundLat,
		FoundLon:     w.FoundLon,
	}
	if w.Photo != "" {
		if b, err := base64.StdEncoding.DecodeString(w.Photo); err == nil {
			rec.Photo = b
		}
	}
	if w.FoundAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, w.FoundAt); err == nil {
			rec.FoundAt = &t
		}
	}

	*r = rec
	return nil
}

// Equal reports whether two records hold the same state. Timestamps compare
// by instant, photos byte-wise.
func (r ProgressRecord) Equal(o ProgressRecord) bool {
	if r.Found != o.Found {
		return false
	}
	if string(r.Photo) != string(o.Photo) {
		return false
	}
	if !eqTime(r.FoundAt, o.FoundAt) {
		return false
	}
	return eqStr(r.FoundAddress, o.FoundAddress) &&
		eqFloat(r.FoundLat, o.FoundLat) &&
		eqFloat(r.FoundLon, o.FoundLon)
}

func eqTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func eqStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func eqFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
