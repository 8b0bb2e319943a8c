package platform

// Package platform contains OS integration glue: locating the per-user data
// directory and preparing it for the database file.
