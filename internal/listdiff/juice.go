package listdiff

import "github.com/ytget/juice-tracker/internal/model"

// SameIdentity reports whether a and b are the same juice entry.
func SameIdentity(a, b model.Juice) bool {
	return a.ID == b.ID
}

// SameContent reports whether every field of a equals the one in b.
func SameContent(a, b model.Juice) bool {
	return a == b
}

type juiceCallback struct{}

func (juiceCallback) Key(j model.Juice) int64            { return j.ID }
func (juiceCallback) SameContent(a, b model.Juice) bool { return SameContent(a, b) }

// Juices diffs two snapshots of the juice list.
func Juices(old, next []model.Juice) []Op[model.Juice] {
	return Diff[model.Juice, int64](old, next, juiceCallback{})
}
