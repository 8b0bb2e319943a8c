package entry

// State is the phase of an edit session
type State string

const (
	// StateEmpty means no record is loaded and no field was edited
	StateEmpty State = "Empty"

	// StateLoaded means an existing record populated the fields
	StateLoaded State = "Loaded"

	// StateEditing means the user changed at least one field
	StateEditing State = "Editing"

	// StateSaved means the record was handed to the store
	StateSaved State = "Saved"

	// StateCancelled means the session was dismissed without saving
	StateCancelled State = "Cancelled"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// IsTerminal returns true if no further transitions are accepted
func (s State) IsTerminal() bool {
	return s == StateSaved || s == StateCancelled
}
