// Package ui contains the Fyne-based user interface of the juice log.
// It renders stored entries as a list kept in sync through row diffs, hosts the
// add/edit dialog driven by an entry.Controller, and the settings dialog.
// All UI strings are localized via Localization.
package ui
