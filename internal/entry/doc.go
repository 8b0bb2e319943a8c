package entry

// Package entry holds the state of one add/edit session of a juice entry.
// The controller gates saving on non-blank name and description, keeps the
// color inside the closed enumeration and never lets a late load overwrite
// what the user already typed.
