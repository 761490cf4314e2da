package vote

import (
	"math"

	"github.com/matzehuels/rollcall/pkg/errors"
)

// Party is a legislator's party affiliation.
type Party string

const (
	Democrat    Party = "D"
	Republican  Party = "R"
	Independent Party = "I"
)

// ParseParty validates a raw party label.
func ParseParty(label string) (Party, error) {
	switch p := Party(label); p {
	case Democrat, Republican, Independent:
		return p, nil
	}
	return "", errors.New(errors.ErrCodeInvalidParty, "unknown party %q", label)
}

// Value is a normalized vote value.
type Value string

const (
	Yea       Value = "Yea"
	Nay       Value = "Nay"
	Present   Value = "Present"
	NotVoting Value = "Not Voting"
)

// valueLabels maps source labels to normalized values. "Not Present" is an
// older spelling of "Not Voting" used by some roll-call feeds.
var valueLabels = map[string]Value{
	"Yea":         Yea,
	"Nay":         Nay,
	"Present":     Present,
	"Not Voting":  NotVoting,
	"Not Present": NotVoting,
}

// ParseValue normalizes a source vote label.
func ParseValue(label string) (Value, error) {
	if v, ok := valueLabels[label]; ok {
		return v, nil
	}
	return "", errors.New(errors.ErrCodeInvalidVote, "unknown vote value %q", label)
}

// Abstained reports whether v counts as neither Yea nor Nay.
func (v Value) Abstained() bool {
	return v == Present || v == NotVoting
}

// Chamber identifies the legislative body a vote was taken in.
type Chamber string

const (
	House  Chamber = "h"
	Senate Chamber = "s"
)

// String returns the chamber's display name.
func (c Chamber) String() string {
	switch c {
	case House:
		return "House"
	case Senate:
		return "Senate"
	}
	return string(c)
}

// Record is one legislator's ballot.
type Record struct {
	ID    string // bioguide id, e.g. "A000055"
	Name  string // display name, optional
	State string // two-letter state code, optional
	Party Party
	Value Value
}

// Set is a parsed roll-call vote plus the metadata derived from it at load time.
type Set struct {
	ID       string
	Chamber  Chamber
	Result   string // raw outcome label
	Requires string // raw threshold label, e.g. "1/2"
	Records  []Record

	// Vacancies counts "VACANT" seat entries skipped while decoding.
	Vacancies int

	// Passed and Threshold are derived by [NewSet].
	Passed    bool
	Threshold int
}

// Results that mean the measure passed or failed, as spelled by the source feeds.
var (
	passedLabels = map[string]bool{
		"Bill Passed":                 true,
		"Motion Agreed to":            true,
		"Motion to Proceed Agreed to": true,
		"pass":                        true,
		"Passed":                      true,
	}
	failedLabels = map[string]bool{
		"fail":            true,
		"Motion Rejected": true,
	}
)

// ClassifyResult reports whether a raw result label means the vote passed.
func ClassifyResult(label string) (bool, error) {
	switch {
	case passedLabels[label]:
		return true, nil
	case failedLabels[label]:
		return false, nil
	}
	return false, errors.New(errors.ErrCodeInvalidResult, "unknown result %q", label)
}

// requiredFractions lists the supported passage requirements.
var requiredFractions = map[string]float64{
	"1/2": 0.5,
}

// PassageThreshold returns the minimum number of Yea votes needed to pass,
// rounding total × fraction up.
func PassageThreshold(requires string, total int) (int, error) {
	frac, ok := requiredFractions[requires]
	if !ok {
		return 0, errors.New(errors.ErrCodeUnsupportedThreshold, "unsupported requirement %q", requires)
	}
	return int(math.Ceil(float64(total) * frac)), nil
}

// NewSet builds a Set and derives Passed and Threshold. It fails on the first
// unrecognized result or requirement, naming the vote id.
func NewSet(id string, chamber Chamber, result, requires string, records []Record) (*Set, error) {
	passed, err := ClassifyResult(result)
	if err != nil {
		return nil, withVoteID(id, err)
	}
	threshold, err := PassageThreshold(requires, len(records))
	if err != nil {
		return nil, withVoteID(id, err)
	}
	return &Set{
		ID:        id,
		Chamber:   chamber,
		Result:    result,
		Requires:  requires,
		Records:   records,
		Passed:    passed,
		Threshold: threshold,
	}, nil
}

// withVoteID prefixes a coded error's message with the vote id, keeping its code.
func withVoteID(id string, err error) error {
	return errors.New(errors.GetCode(err), "vote %s: %s", id, errors.UserMessage(err))
}

// Total returns the number of ballots.
func (s *Set) Total() int { return len(s.Records) }

// Tally returns the Yea count and the count of everything else.
func (s *Set) Tally() (yea, other int) {
	return Tally(s.Records)
}

// Tally counts Yea ballots against all other ballots.
func Tally(records []Record) (yea, other int) {
	for _, r := range records {
		if r.Value == Yea {
			yea++
		}
	}
	return yea, len(records) - yea
}

// PartyCount is a per-party breakdown of a vote.
type PartyCount struct {
	Party     Party
	Yea       int
	Nay       int
	NotVoting int // Present and Not Voting combined
}

// Total returns the party's ballot count.
func (p PartyCount) Total() int { return p.Yea + p.Nay + p.NotVoting }

// ByParty returns per-party counts in order of first appearance.
func (s *Set) ByParty() []PartyCount {
	var out []PartyCount
	idx := make(map[Party]int)
	for _, r := range s.Records {
		i, ok := idx[r.Party]
		if !ok {
			i = len(out)
			idx[r.Party] = i
			out = append(out, PartyCount{Party: r.Party})
		}
		switch {
		case r.Value == Yea:
			out[i].Yea++
		case r.Value == Nay:
			out[i].Nay++
		case r.Value.Abstained():
			out[i].NotVoting++
		}
	}
	return out
}
