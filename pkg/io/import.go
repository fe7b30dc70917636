package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/curlviz/pkg/errors"
	"github.com/matzehuels/curlviz/pkg/sheet"
)

// document is the on-disk layout of a stone file.
type document struct {
	Stones []sheet.Stone `json:"stones"`
}

// ReadJSON decodes a stone file from r into a new sheet.
//
// ReadJSON returns an error if the JSON is malformed, a stone carries an
// unknown team, or the file lists more stones than a sheet accepts. Errors
// name the offending stone by index. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*sheet.Sheet, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStone, err, "decode stones")
	}
	return FromStones(doc.Stones)
}

// FromStones builds a sheet by putting each stone in order.
func FromStones(stones []sheet.Stone) (*sheet.Sheet, error) {
	s := sheet.New()
	for i, st := range stones {
		if err := s.Put(st); err != nil {
			return nil, fmt.Errorf("stone %d: %w", i, err)
		}
	}
	return s, nil
}

// ImportJSON reads a stone file at path and returns the decoded sheet.
// Errors are wrapped with the file path for context.
func ImportJSON(path string) (*sheet.Sheet, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "stones %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
