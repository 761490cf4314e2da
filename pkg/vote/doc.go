// Package vote holds the roll-call data model.
//
// A [Set] is one roll-call vote: the ballots ([Record]) in document order plus
// the outcome metadata computed once at load time. [NewSet] is the single place
// that classifies the raw result label and turns the raw requirement label into
// a passage threshold; both fail fast with a coded error from
// [github.com/matzehuels/rollcall/pkg/errors] instead of defaulting.
//
// Records are values. Later stages (ordering, layout) return new slices and
// never mutate a Set's records in place.
package vote
