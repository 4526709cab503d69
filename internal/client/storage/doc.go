// Package storage is the client's durable key/value store.
//
// Values are opaque byte slices keyed by string. GetJSON and SetJSON layer
// JSON (de)serialization on top, which is how the session is persisted under
// the "auth" key. Two implementations exist:
//
//   - SQLiteRepository: a single "kv" table in a local SQLite file, created by
//     the embedded goose migrations (see Open).
//   - MemoryRepository: a map guarded by a mutex, used by tests.
//
// Get returns (nil, nil) for an absent key; Delete of an absent key is not an
// error.
package storage
