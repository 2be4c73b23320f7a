// Package store persists generated puzzles as serialized board
// snapshots.
//
// What:
//
//   - Puzzle couples a snapshot (the verbatim output of board.Serialize)
//     with its generation metadata: ID, seed, tier, creation time.
//   - Store is the persistence contract: Save assigns a UUID when the ID
//     is empty, Load and List retrieve, Close releases resources.
//   - MemoryStore keeps everything in a mutex-guarded map; SQLiteStore
//     keeps it in a single-table SQLite database (modernc.org/sqlite,
//     pure Go driver), migrating its schema on open.
//
// Why:
//
//	The engine's only persisted artifact is the serialized Board
//	snapshot; this package is the collaborator side of that contract.
//	Snapshots are stored and returned byte-for-byte, so
//	board.Deserialize(loaded.Snapshot) reproduces the saved board
//	exactly.
//
// Concurrency:
//
//	Both implementations are safe for concurrent use. All operations
//	take a context and respect its cancellation.
//
// Errors:
//
//   - ErrNotFound: Load with an unknown ID.
//   - ErrNilPuzzle: Save with a nil puzzle or an empty snapshot.
package store
