// Package ordering decides the sequence in which ballots are placed on the arc.
//
// The layout fills the half circle slice by slice, so neighbouring ballots in
// the ordered sequence end up next to each other on screen. [PartyBlocks]
// exploits that to draw each party as one contiguous wedge:
//
//  1. Parties are ordered by ballot count, largest first (ties keep document
//     order).
//  2. Each party's Yea ballots are split 2/3 lead, 1/3 tail.
//  3. A party block is its lead in document order followed by a uniformly
//     shuffled mix of the tail Yea, Not Voting (incl. Present) and Nay ballots.
//
// The shuffle is the only non-deterministic step. Inject a seeded source with
// [NewPartyBlocks] for reproducible output:
//
//	o := ordering.NewPartyBlocks(42)
//	ordered := o.Order(set.Records)
package ordering
