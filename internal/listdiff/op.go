package listdiff

import "fmt"

// Kind is the kind of a row operation
type Kind int

const (
	// Insert places Op.Item at Op.Index
	Insert Kind = iota
	// Remove drops the row at Op.Index
	Remove
	// Move takes the row at Op.From and reinserts it at Op.Index
	// (Op.Index counts positions after the row has been taken out)
	Move
	// Update replaces the content of the row at Op.Index with Op.Item
	Update
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	case Move:
		return "move"
	case Update:
		return "update"
	default:
		return "unknown"
	}
}

// Op is a single row operation. Ops are applied in the order they are returned.
type Op[T any] struct {
	Kind  Kind
	Index int
	From  int
	Item  T
}

func (o Op[T]) String() string {
	if o.Kind == Move {
		return fmt.Sprintf("move %d->%d", o.From, o.Index)
	}
	return fmt.Sprintf("%s %d", o.Kind, o.Index)
}

// Summary counts operations per kind
type Summary struct {
	Inserts int
	Removes int
	Moves   int
	Updates int
}

// Summarize counts the operations in ops.
func Summarize[T any](ops []Op[T]) Summary {
	var s Summary
	for _, op := range ops {
		switch op.Kind {
		case Insert:
			s.Inserts++
		case Remove:
			s.Removes++
		case Move:
			s.Moves++
		case Update:
			s.Updates++
		}
	}
	return s
}

// Structural reports whether the summary changes the row set or order.
func (s Summary) Structural() bool {
	return s.Inserts > 0 || s.Removes > 0 || s.Moves > 0
}

// Apply runs ops against a copy of rows and returns the result.
// Apply(old, Diff(old, next, cb)) is equal to next.
func Apply[T any](rows []T, ops []Op[T]) []T {
	out := make([]T, len(rows))
	copy(out, rows)

	for _, op := range ops {
		switch op.Kind {
		case Insert:
			out = insertAt(out, op.Index, op.Item)
		case Remove:
			out = append(out[:op.Index], out[op.Index+1:]...)
		case Move:
			item := out[op.From]
			out = append(out[:op.From], out[op.From+1:]...)
			out = insertAt(out, op.Index, item)
		case Update:
			out[op.Index] = op.Item
		}
	}
	return out
}

func insertAt[T any](s []T, index int, item T) []T {
	var zero T
	s = append(s, zero)
	copy(s[index+1:], s[index:])
	s[index] = item
	return s
}
