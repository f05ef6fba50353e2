// Package progress persists one ProgressRecord per catalog item in a local
// key-value table. Load is deliberately infallible: a missing or unreadable
// row yields the default unfound record, because local progress is
// best-effort state rather than a ledger.
package progress
