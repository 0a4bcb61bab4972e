// Package storage is the durable, device-local key/value store of the client.
//
// The store is a single SQLite table (metadata) created by embedded goose
// migrations. On top of the raw Repository sit KeyStores bound to one fixed
// key each: the auth token lives under "token", the id of the registered user
// under "user_id".
//
// KeyStores keep nothing in memory; every call round-trips to SQLite. Failures
// surface as *common.StorageError.
package storage
