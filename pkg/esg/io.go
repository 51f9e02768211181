package esg

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DecodeDocument reads one CompanyData document from r. Unknown keys are
// rejected everywhere except inside metric and target maps.
func DecodeDocument(r io.Reader) (*CompanyData, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc CompanyData
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decoding document: unexpected data after document")
	}

	return &doc, nil
}

// LoadDocument reads a CompanyData document from disk.
func LoadDocument(path string) (*CompanyData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	defer f.Close()

	return DecodeDocument(f)
}

// SaveJSON writes v to disk as indented JSON, creating parent directories.
func SaveJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}

	return nil
}

// Clone returns a deep copy of the document by round-tripping it through JSON.
func (d *CompanyData) Clone() (*CompanyData, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("cloning document: %w", err)
	}
	var out CompanyData
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cloning document: %w", err)
	}
	return &out, nil
}
