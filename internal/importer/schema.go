// Package importer reads evidence files produced by external work-time
// estimators (for example a commit-history analyzer) and turns their
// records into completed sessions. Merging into the document always goes
// through the storage engine; the importer never touches the file itself.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// EvidenceFile is the top-level JSON structure of an import file.
type EvidenceFile struct {
	Source  string           `json:"source,omitempty"`
	Records []EvidenceRecord `json:"records"`
}

// EvidenceRecord is one synthetic session-shaped record. Timestamps are
// RFC3339 strings so that a malformed value can be reported as a validation
// error instead of failing the whole parse.
type EvidenceRecord struct {
	Account string `json:"account"`
	Project string `json:"project"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Note    string `json:"note,omitempty"`
}

// LoadEvidenceFile reads and parses an evidence JSON file.
func LoadEvidenceFile(path string) (*EvidenceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f EvidenceFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing evidence file: %w", err)
	}
	return &f, nil
}
