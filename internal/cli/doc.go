// Package cli provides the interactive StreetHunt command-line client.
//
// It wires configuration, the local progress database, the geolocation and
// report collaborators, and an interactive REPL over the hunt controller.
//
// Key commands:
//   - list [query]: show catalog items with their found state
//   - show <n>: item details, clue and progress
//   - find <n> <photo>: mark an item found with a photo file
//   - clear <n> / reset: undo one find / all of them
//   - status: found count and reward tier
//   - export [n]: generate the PDF report (all found items, or one item)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
