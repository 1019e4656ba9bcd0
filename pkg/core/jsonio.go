package core

import (
	"encoding/json"
	"io"
)

// MarshalFindings writes the audit findings list as indented JSON, the same
// shape the batch command emits with --json. A nil list encodes as an empty
// array so downstream ingestion never sees null.
func MarshalFindings(w io.Writer, findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// UnmarshalFindings reads a findings list back from its JSON form, e.g. when
// post-processing a prior run's output.
func UnmarshalFindings(r io.Reader) ([]Finding, error) {
	var fs []Finding
	if err := json.NewDecoder(r).Decode(&fs); err != nil {
		return nil, err
	}
	return fs, nil
}
