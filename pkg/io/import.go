package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/rollcall/pkg/errors"
	"github.com/matzehuels/rollcall/pkg/vote"
)

// vacantSeat is the placeholder some feeds put in a vote list for an empty seat.
const vacantSeat = "VACANT"

type document struct {
	VoteID   *string         `json:"vote_id"`
	Chamber  string          `json:"chamber"`
	Result   *string         `json:"result"`
	Requires *string         `json:"requires"`
	Votes    json.RawMessage `json:"votes"`
}

type ballot struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Party       string `json:"party"`
	State       string `json:"state"`
}

func (b ballot) name() string {
	if b.DisplayName != "" {
		return b.DisplayName
	}
	if b.FirstName != "" && b.LastName != "" {
		return b.FirstName + " " + b.LastName
	}
	return b.LastName
}

// ReadJSON decodes a roll-call vote document from r into a [vote.Set].
//
// The input must be a JSON object of the form:
//
//	{
//	  "vote_id": "h3-115.2017",
//	  "chamber": "h",
//	  "result": "Passed",
//	  "requires": "1/2",
//	  "votes": {
//	    "Yea": [{"id": "A000055", "party": "R", "state": "AL", "display_name": "Aderholt"}],
//	    "Nay": [...],
//	    "Not Voting": [...]
//	  }
//	}
//
// vote_id, result, requires and votes are required. Each ballot needs "id" and
// "party". A bare "VACANT" string in a vote list is counted as a vacancy and
// skipped. Records keep document order: the keys of "votes" in the order they
// appear, then each list in order.
//
// ReadJSON returns a coded error if:
//   - The JSON is malformed or a required field is missing (INVALID_INPUT)
//   - A vote label is not Yea, Nay, Present, Not Voting or Not Present (INVALID_VOTE)
//   - A party is not D, R or I (INVALID_PARTY)
//   - The result label is unknown (INVALID_RESULT)
//   - The requirement is not "1/2" (UNSUPPORTED_THRESHOLD)
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*vote.Set, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode vote document")
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}

	id := *doc.VoteID
	records, vacancies, err := decodeVotes(id, doc.Votes)
	if err != nil {
		return nil, err
	}

	set, err := vote.NewSet(id, vote.Chamber(doc.Chamber), *doc.Result, *doc.Requires, records)
	if err != nil {
		return nil, err
	}
	set.Vacancies = vacancies
	return set, nil
}

func (d *document) validate() error {
	missing := func(field string) error {
		return errors.New(errors.ErrCodeInvalidInput, "missing required field %q", field)
	}
	switch {
	case d.VoteID == nil:
		return missing("vote_id")
	case d.Result == nil:
		return missing("result")
	case d.Requires == nil:
		return missing("requires")
	case len(d.Votes) == 0 || string(d.Votes) == "null":
		return missing("votes")
	}
	return nil
}

// decodeVotes walks the "votes" object token by token so that key order
// survives decoding.
func decodeVotes(id string, raw json.RawMessage) ([]vote.Record, int, error) {
	invalid := func(err error) error {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "vote %s: decode votes", id)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, 0, invalid(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, 0, errors.New(errors.ErrCodeInvalidInput, "vote %s: votes must be an object", id)
	}

	var (
		records   []vote.Record
		vacancies int
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, 0, invalid(err)
		}
		label, _ := tok.(string)

		var entries []json.RawMessage
		if err := dec.Decode(&entries); err != nil {
			return nil, 0, invalid(fmt.Errorf("list %q: %w", label, err))
		}
		for i, entry := range entries {
			rec, vacant, err := decodeBallot(id, label, i, entry)
			if err != nil {
				return nil, 0, err
			}
			if vacant {
				vacancies++
				continue
			}
			records = append(records, rec)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, 0, invalid(err)
	}
	return records, vacancies, nil
}

func decodeBallot(id, label string, i int, entry json.RawMessage) (vote.Record, bool, error) {
	var s string
	if err := json.Unmarshal(entry, &s); err == nil {
		if s == vacantSeat {
			return vote.Record{}, true, nil
		}
		return vote.Record{}, false, errors.New(errors.ErrCodeInvalidInput,
			"vote %s: %s[%d]: unexpected string %q", id, label, i, s)
	}

	var b ballot
	if err := json.Unmarshal(entry, &b); err != nil {
		return vote.Record{}, false, errors.Wrap(errors.ErrCodeInvalidInput, err,
			"vote %s: %s[%d]", id, label, i)
	}
	if b.ID == "" {
		return vote.Record{}, false, errors.New(errors.ErrCodeInvalidInput,
			"vote %s: %s[%d]: missing legislator id", id, label, i)
	}

	value, err := vote.ParseValue(label)
	if err != nil {
		return vote.Record{}, false, recordError(id, b.ID, err)
	}
	party, err := vote.ParseParty(b.Party)
	if err != nil {
		return vote.Record{}, false, recordError(id, b.ID, err)
	}

	return vote.Record{
		ID:    b.ID,
		Name:  b.name(),
		State: b.State,
		Party: party,
		Value: value,
	}, false, nil
}

// recordError names the vote and legislator on a coded classification error.
func recordError(voteID, legislator string, err error) error {
	return errors.New(errors.GetCode(err), "vote %s: legislator %s: %s", voteID, legislator, errors.UserMessage(err))
}

// ReadFile returns the raw bytes of the vote document at path. A missing
// file is reported as FILE_NOT_FOUND.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}

// ImportJSON reads a vote document at path and returns the decoded Set,
// using [ReadFile] and [ReadJSON].
func ImportJSON(path string) (*vote.Set, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadJSON(bytes.NewReader(data))
}
