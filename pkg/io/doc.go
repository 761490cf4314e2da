// Package io reads roll-call vote documents and writes rendered artifacts.
//
// # Overview
//
// This package is the boundary between the filesystem and the render
// pipeline. It parses a congress roll-call JSON document into a validated
// [vote.Set] in one pass and writes finished artifacts next to each other in
// an output directory.
//
// # JSON Format
//
//	{
//	  "vote_id": "h3-115.2017",
//	  "chamber": "h",
//	  "result": "Passed",
//	  "requires": "1/2",
//	  "votes": {
//	    "Yea":        [{"id": "A000055", "party": "R", "state": "AL", "display_name": "Aderholt"}],
//	    "Nay":        [{"id": "A000370", "party": "D", "state": "NC", "display_name": "Adams"}],
//	    "Not Voting": ["VACANT"]
//	  }
//	}
//
// Required: vote_id, result, requires, votes. Each ballot needs id and party;
// display_name, first_name, last_name and state are optional. Unknown
// top-level fields are ignored.
//
// # Import
//
// Use [ImportJSON] to read from a path or [ReadJSON] to read from any
// io.Reader:
//
//	set, err := io.ImportJSON("data/h3-115.2017.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// There is no defaulting: a missing field, an unknown vote label, an unknown
// party, an unknown result, or an unsupported requirement is a coded error
// from [errors] naming the vote and, where there is one, the legislator.
//
// # Export
//
// [OutputPath] derives dir/<vote_id>.<format> after validating the vote id,
// and [WriteArtifact] writes the bytes, creating the directory if needed.
//
// [vote.Set]: github.com/matzehuels/rollcall/pkg/vote.Set
// [errors]: github.com/matzehuels/rollcall/pkg/errors
package io
