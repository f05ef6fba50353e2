package models

// HuntItem is a single point of interest in the scavenger-hunt catalog.
// Items are seeded once at startup and never mutated; ID is stable for the
// life of the catalog and is the key under which progress is persisted.
type HuntItem struct {
	ID          string
	Name        string
	Address     string
	Description string
	Clue        string

	// Canonical coordinates for the map preview. Optional; independent of
	// the location captured when the item is found.
	Lat *float64
	Lon *float64
}

// StorageKey returns the persistence key for the item's progress record.
func (i HuntItem) StorageKey() string {
	return "hunt_item_" + i.ID
}

// HasCoordinates reports whether the item carries canonical coordinates.
func (i HuntItem) HasCoordinates() bool {
	return i.Lat != nil && i.Lon != nil
}
