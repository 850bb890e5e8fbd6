// Package snapshot persists the raw products index response and reads it back
// as products for the categorizer.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dropicat/internal/model"
)

// Snapshot is the decoded view of a snapshot file.
type Snapshot struct {
	Products []model.Product
	// Skipped holds one error per "objects" element that is not a JSON object.
	Skipped []error
	// Warnings holds one error per kept product that had fields of an
	// unexpected type. Those fields keep their zero value.
	Warnings []error
}

// Save pretty-prints body and overwrites path with it. Key order is kept and
// strings are written as plain UTF-8. The body is checked before the file is
// touched, so a bad body leaves a previous snapshot intact.
func Save(path string, body []byte) error {
	compact, err := reencode(body)
	if err != nil {
		return fmt.Errorf("snapshot body is not JSON: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return fmt.Errorf("snapshot body is not JSON: %w", err)
	}
	buf.WriteByte('\n')

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return nil
}

// Load reads the snapshot at path.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a products index document. Elements of "objects" are decoded
// one by one. A field of the wrong type costs only that field: the product is
// kept and the mismatch lands in Warnings. Elements that are not objects at
// all are recorded in Skipped.
func Decode(data []byte) (*Snapshot, error) {
	var doc struct {
		Objects []json.RawMessage `json:"objects"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	s := &Snapshot{Products: make([]model.Product, 0, len(doc.Objects))}
	for i, raw := range doc.Objects {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '{' {
			s.Skipped = append(s.Skipped, fmt.Errorf("objects[%d]: not an object", i))
			continue
		}

		var p model.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				s.Skipped = append(s.Skipped, fmt.Errorf("objects[%d]: %w", i, err))
				continue
			}
			s.Warnings = append(s.Warnings, fmt.Errorf("objects[%d]: %w", i, err))
		}
		s.Products = append(s.Products, p)
	}
	return s, nil
}
