package ordering

import (
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/rollcall/pkg/vote"
)

// Orderer arranges ballots into the sequence they are laid out on the arc.
// Implementations return a new slice and leave the input untouched.
type Orderer interface {
	Order(records []vote.Record) []vote.Record
}

// PartyBlocks groups ballots by party, largest party first. Within a party
// block the first two thirds of the Yea ballots lead in document order; the
// remaining Yea ballots, the non-voters and the Nay ballots follow in a
// shuffled tail so the colour change into the mixed region is not a hard
// edge.
type PartyBlocks struct {
	// Rand drives the tail shuffle. Nil uses the auto-seeded global source.
	Rand *rand.Rand
}

// NewPartyBlocks returns a PartyBlocks orderer whose shuffle is fully
// determined by seed.
func NewPartyBlocks(seed uint64) *PartyBlocks {
	return &PartyBlocks{Rand: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// Order implements [Orderer]. Present ballots are normalized to Not Voting in
// the output. The result is always a permutation of records.
func (o *PartyBlocks) Order(records []vote.Record) []vote.Record {
	out := make([]vote.Record, 0, len(records))
	groups := groupByParty(records)
	for _, party := range PartyOrder(records) {
		g := groups[party]
		lead, tail := splitLead(g.yea)
		out = append(out, lead...)
		out = append(out, o.shuffle(slices.Concat(tail, g.notVoting, g.nay))...)
	}
	return out
}

func (o *PartyBlocks) shuffle(rs []vote.Record) []vote.Record {
	swap := func(i, j int) { rs[i], rs[j] = rs[j], rs[i] }
	if o.Rand == nil {
		rand.Shuffle(len(rs), swap)
	} else {
		o.Rand.Shuffle(len(rs), swap)
	}
	return rs
}

// LeadLen returns how many of a party's Yea ballots keep their place ahead
// of the shuffled tail: two thirds, rounded down.
func LeadLen(yea int) int { return yea * 2 / 3 }

func splitLead(yea []vote.Record) (lead, tail []vote.Record) {
	n := LeadLen(len(yea))
	return yea[:n:n], yea[n:]
}

type partyGroup struct {
	yea, nay, notVoting []vote.Record
}

// groupByParty buckets ballots per party in document order. Values other
// than Yea and Nay land in the non-voting bucket; Present is rewritten to
// Not Voting there.
func groupByParty(records []vote.Record) map[vote.Party]*partyGroup {
	groups := make(map[vote.Party]*partyGroup)
	for _, r := range records {
		g, ok := groups[r.Party]
		if !ok {
			g = &partyGroup{}
			groups[r.Party] = g
		}
		switch r.Value {
		case vote.Yea:
			g.yea = append(g.yea, r)
		case vote.Nay:
			g.nay = append(g.nay, r)
		default:
			if r.Value.Abstained() {
				r.Value = vote.NotVoting
			}
			g.notVoting = append(g.notVoting, r)
		}
	}
	return groups
}

// PartyOrder returns the parties present in records ordered by ballot count,
// descending. Ties keep the order in which parties first appear.
func PartyOrder(records []vote.Record) []vote.Party {
	var parties []vote.Party
	counts := make(map[vote.Party]int)
	for _, r := range records {
		if _, ok := counts[r.Party]; !ok {
			parties = append(parties, r.Party)
		}
		counts[r.Party]++
	}
	slices.SortStableFunc(parties, func(a, b vote.Party) int {
		return counts[b] - counts[a]
	})
	return parties
}
