package listdiff

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/juice-tracker/internal/model"
)

func juice(id int64, name string) model.Juice {
	return model.Juice{ID: id, Name: name, Description: "desc " + name, Color: model.ColorRed, Rating: 3}
}

func TestPredicates(t *testing.T) {
	a := juice(1, "Apple")
	b := a
	b.Name = "Pear"
	c := juice(2, "Apple")

	assert.True(t, SameIdentity(a, b))
	assert.False(t, SameContent(a, b))
	assert.False(t, SameIdentity(a, c))
	assert.False(t, SameContent(a, c), "content equality includes the id")
	assert.True(t, SameIdentity(a, a))
	assert.True(t, SameContent(a, a))
}

func TestJuices_EqualSequences(t *testing.T) {
	rows := []model.Juice{juice(1, "Apple"), juice(2, "Pear"), juice(3, "Kiwi")}
	copied := append([]model.Juice(nil), rows...)

	assert.Empty(t, Juices(rows, copied))
	assert.Empty(t, Juices(nil, nil))
	assert.Empty(t, Juices([]model.Juice{}, nil))
}

func TestJuices_ContentChangeIsSingleUpdate(t *testing.T) {
	r1 := juice(1, "Apple")
	r1Changed := r1
	r1Changed.Name = "Green Apple"

	ops := Juices([]model.Juice{r1}, []model.Juice{r1Changed})

	require.Len(t, ops, 1)
	assert.Equal(t, Update, ops[0].Kind)
	assert.Equal(t, 0, ops[0].Index)
	assert.Equal(t, r1Changed, ops[0].Item)
	assert.Equal(t, Summary{Updates: 1}, Summarize(ops))
}

func TestJuices_DifferentIdentityNeverUpdates(t *testing.T) {
	old := []model.Juice{juice(1, "Apple")}
	next := []model.Juice{juice(2, "Apple")}

	ops := Juices(old, next)

	s := Summarize(ops)
	assert.Equal(t, 0, s.Updates)
	assert.Equal(t, 1, s.Removes)
	assert.Equal(t, 1, s.Inserts)
	assert.Equal(t, next, Apply(old, ops))
}

func TestJuices_InsertsAndRemoves(t *testing.T) {
	old := []model.Juice{juice(1, "Apple"), juice(2, "Pear"), juice(3, "Kiwi")}
	next := []model.Juice{juice(1, "Apple"), juice(3, "Kiwi"), juice(4, "Mango")}

	ops := Juices(old, next)

	require.Len(t, ops, 2)
	assert.Equal(t, Op[model.Juice]{Kind: Remove, Index: 1, Item: old[1]}, ops[0])
	assert.Equal(t, Op[model.Juice]{Kind: Insert, Index: 2, Item: next[2]}, ops[1])
	assert.Equal(t, next, Apply(old, ops))
}

func TestJuices_RemovalsDescend(t *testing.T) {
	old := []model.Juice{juice(1, "a"), juice(2, "b"), juice(3, "c"), juice(4, "d")}
	next := []model.Juice{juice(2, "b")}

	ops := Juices(old, next)

	require.Len(t, ops, 3)
	assert.Equal(t, []int{3, 2, 0}, []int{ops[0].Index, ops[1].Index, ops[2].Index})
	assert.Equal(t, next, Apply(old, ops))
}

func TestJuices_SingleMove(t *testing.T) {
	a, b, c := juice(1, "a"), juice(2, "b"), juice(3, "c")

	ops := Juices([]model.Juice{a, b, c}, []model.Juice{b, c, a})

	require.Len(t, ops, 1)
	assert.Equal(t, Move, ops[0].Kind)
	assert.Equal(t, 0, ops[0].From)
	assert.Equal(t, 2, ops[0].Index)
	assert.Equal(t, a, ops[0].Item)
}

func TestJuices_Reverse(t *testing.T) {
	a, b, c, d := juice(1, "a"), juice(2, "b"), juice(3, "c"), juice(4, "d")
	old := []model.Juice{a, b, c, d}
	next := []model.Juice{d, c, b, a}

	ops := Juices(old, next)

	assert.Equal(t, Summary{Moves: 3}, Summarize(ops))
	assert.Equal(t, next, Apply(old, ops))
}

func TestJuices_MoveWithUpdate(t *testing.T) {
	a, b := juice(1, "a"), juice(2, "b")
	bChanged := b
	bChanged.Rating = 5

	old := []model.Juice{a, b}
	next := []model.Juice{bChanged, a}
	ops := Juices(old, next)

	s := Summarize(ops)
	assert.Equal(t, 1, s.Moves)
	assert.Equal(t, 1, s.Updates)
	assert.Equal(t, 0, s.Inserts+s.Removes)
	assert.Equal(t, next, Apply(old, ops))
}

func TestJuices_DuplicateIDs(t *testing.T) {
	draft1 := juice(0, "draft one")
	draft2 := juice(0, "draft two")
	saved := juice(7, "saved")

	old := []model.Juice{draft1, saved, draft2}
	next := []model.Juice{saved, draft1}
	ops := Juices(old, next)

	assert.Equal(t, next, Apply(old, ops))
}

func TestJuices_Deterministic(t *testing.T) {
	old := []model.Juice{juice(1, "a"), juice(2, "b"), juice(3, "c"), juice(4, "d"), juice(5, "e")}
	next := []model.Juice{juice(5, "e"), juice(3, "C"), juice(6, "f"), juice(1, "a")}

	first := Juices(old, next)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Juices(old, next))
	}
}

func TestDiff_GenericCallback(t *testing.T) {
	byFirstLetter := Funcs[string, byte]{
		KeyFunc:     func(s string) byte { return s[0] },
		ContentFunc: func(a, b string) bool { return a == b },
	}

	old := []string{"apple", "banana", "cherry"}
	next := []string{"cherry", "avocado", "date"}
	ops := Diff[string, byte](old, next, byFirstLetter)

	assert.Equal(t, next, Apply(old, ops))
	s := Summarize(ops)
	assert.Equal(t, 1, s.Updates, "apple -> avocado shares a key")
	assert.Equal(t, 1, s.Removes)
	assert.Equal(t, 1, s.Inserts)
}

func TestLongestIncreasing(t *testing.T) {
	tests := []struct {
		seq      []int
		expected int
	}{
		{nil, 0},
		{[]int{0}, 1},
		{[]int{0, 1, 2, 3}, 4},
		{[]int{3, 2, 1, 0}, 1},
		{[]int{2, 0, 1}, 2},
		{[]int{1, 5, 2, 3, 0, 4}, 4},
	}

	for _, test := range tests {
		keep := longestIncreasing(test.seq)
		last := -1
		count := 0
		for i, k := range keep {
			if !k {
				continue
			}
			assert.Greater(t, test.seq[i], last, "seq %v", test.seq)
			last = test.seq[i]
			count++
		}
		assert.Equal(t, test.expected, count, "seq %v", test.seq)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "insert", Insert.String())
	assert.Equal(t, "remove", Remove.String())
	assert.Equal(t, "move", Move.String())
	assert.Equal(t, "update", Update.String())
	assert.Equal(t, "unknown", Kind(42).String())
	assert.Equal(t, "move 3->1", Op[int]{Kind: Move, From: 3, Index: 1}.String())
}

// TestJuices_ApplyRoundTrip mutates random lists and checks the ops rebuild the target.
func TestJuices_ApplyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 300; round++ {
		old := randomJuices(rng, rng.IntN(12))
		next := mutate(rng, old)

		ops := Juices(old, next)
		got := Apply(old, ops)
		require.Truef(t, slices.Equal(next, got), "round %d: got %v, want %v (ops %v)", round, got, next, ops)
		assert.LessOrEqual(t, Summarize(ops).Updates, len(next))

		if round%10 == 0 {
			assert.Empty(t, Juices(next, next))
		}
	}
}

func randomJuices(rng *rand.Rand, n int) []model.Juice {
	out := make([]model.Juice, n)
	for i := range out {
		// Small id space so duplicates and unsaved (0) entries show up.
		id := int64(rng.IntN(15))
		out[i] = model.Juice{
			ID:          id,
			Name:        fmt.Sprintf("juice-%d", id),
			Description: "d",
			Color:       model.ColorAt(rng.IntN(len(model.Colors()))),
			Rating:      rng.IntN(model.MaxRating + 1),
		}
	}
	return out
}

func mutate(rng *rand.Rand, old []model.Juice) []model.Juice {
	next := append([]model.Juice(nil), old...)
	rng.Shuffle(len(next), func(i, j int) { next[i], next[j] = next[j], next[i] })

	if len(next) > 0 && rng.IntN(2) == 0 {
		drop := rng.IntN(len(next))
		next = append(next[:drop], next[drop+1:]...)
	}
	for i := range next {
		if rng.IntN(4) == 0 {
			next[i].Rating = (next[i].Rating + 1) % (model.MaxRating + 1)
		}
	}
	return append(next, randomJuices(rng, rng.IntN(3))...)
}
