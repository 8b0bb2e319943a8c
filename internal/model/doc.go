package model

// Package model defines the domain data used across the app: juice tasting
// entries and the closed color enumeration. Structures are plain comparable
// values so they can be diffed and bound to widgets directly.
