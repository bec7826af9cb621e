// Package timesheet reads YAML timesheets whose entries record hours in any
// of the accepted hour syntaxes, and totals them.
package timesheet

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrNoEntries is returned when a timesheet file defines no entries.
var ErrNoEntries = errors.New("no entries defined")

// Load reads a YAML timesheet file. Entries without an ID are assigned one.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timesheet %s: %w", path, err)
	}

	sheet, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("timesheet %s: %w", path, err)
	}

	if len(sheet.Entries) == 0 {
		return nil, fmt.Errorf("timesheet %s: %w", path, ErrNoEntries)
	}

	return sheet, nil
}

// LoadFromBytes parses YAML timesheet data from raw bytes.
func LoadFromBytes(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("parse timesheet: %w", err)
	}

	for i := range sheet.Entries {
		if sheet.Entries[i].ID == "" {
			sheet.Entries[i].ID = uuid.New().String()
		}
	}

	return &sheet, nil
}
