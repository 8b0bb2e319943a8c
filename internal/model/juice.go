package model

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Rating bounds (star count)
const (
	MinRating = 0
	MaxRating = 5
)

// Juice is a single tasting entry.
// ID 0 marks an entry that has not been persisted yet. Two entries refer to the
// same record iff their IDs match; they have the same content iff they are ==.
type Juice struct {
	ID          int64
	Name        string
	Description string
	Color       Color
	Rating      int
}

// NewJuice returns the defaults of a fresh entry.
func NewJuice() Juice {
	return Juice{Color: DefaultColor(), Rating: MinRating}
}

// IsNew returns true if the entry has not been assigned an ID by a store
func (j Juice) IsNew() bool {
	return j.ID == 0
}

// IsBlank reports whether s is empty after trimming surrounding whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ClampRating bounds a star count to [MinRating, MaxRating].
func ClampRating(rating int) int {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

var errBlank = errors.New("must not be blank")

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if IsBlank(s) {
		return errBlank
	}
	return nil
}

func colorMembers() []interface{} {
	members := make([]interface{}, 0, len(colorOrder))
	for _, c := range colorOrder {
		members = append(members, c)
	}
	return members
}

// Validate checks the entry before it is written to a store.
func (j Juice) Validate() error {
	return validation.ValidateStruct(&j,
		validation.Field(&j.ID, validation.Min(int64(0))),
		validation.Field(&j.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&j.Description, validation.Required, validation.By(notBlank)),
		validation.Field(&j.Color, validation.Required, validation.In(colorMembers()...)),
		validation.Field(&j.Rating, validation.Min(MinRating), validation.Max(MaxRating)),
	)
}
