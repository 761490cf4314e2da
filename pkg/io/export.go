package io

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/rollcall/pkg/errors"
)

// OutputPath derives the artifact path for a vote: dir/<vote_id>.<format>.
// The vote id is validated with [errors.ValidateVoteID] first so a hostile
// document cannot write outside dir.
func OutputPath(dir, voteID, format string) (string, error) {
	if err := errors.ValidateVoteID(voteID); err != nil {
		return "", err
	}
	return filepath.Join(dir, voteID+"."+format), nil
}

// WriteArtifact writes data to path, creating the parent directory if needed.
func WriteArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
