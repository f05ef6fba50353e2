// Package geoloc resolves the device position and a human-readable address
// for it. Locators are best-effort by contract: they always produce a Fix
// (possibly with every field absent) and never block past their deadline, so
// a failed lookup degrades to absent location fields instead of failing the
// caller's operation.
package geoloc

import "context"

// Fix is a point-in-time device position. Every field is optional.
type Fix struct {
	Address *string
	Lat     *float64
	Lon     *float64
}

// Empty reports whether the fix carries no information at all.
func (f Fix) Empty() bool {
	return f.Address == nil && f.Lat == nil && f.Lon == nil
}

// Locator produces the current device fix.
type Locator interface {
	CurrentFix(ctx context.Context) Fix
}

// StaticLocator returns a fixed Fix on every call. Useful for tests and for
// running without any location source.
type StaticLocator struct {
	Fix Fix
}

func (s StaticLocator) CurrentFix(ctx context.Context) Fix {
	return s.Fix
}
