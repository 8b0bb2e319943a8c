package store

// Package store persists juice entries. It provides an in-memory store, a
// SQLite store built on GORM and a caching decorator. All of them notify a
// single update callback after every mutation so the list can be refreshed.
