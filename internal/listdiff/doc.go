package listdiff

// Package listdiff computes row operations that turn one rendered list into
// another. Identity and content are separate predicates: identity decides
// which rows are the same entity, content decides whether a kept row needs
// to be redrawn. The computation is pure and deterministic.
