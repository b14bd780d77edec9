package plan

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teranos/idlgen/errors"
)

// Marshal encodes p as "json" or "yaml"
func Marshal(p *Plan, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(p, "", "  ")
	case "yaml":
		return yaml.Marshal(p)
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "plan format %q", format)
	}
}

// FormatForPath picks the encoding from a file extension, yaml by default
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}

// Save writes p to path, encoded by extension
func Save(p *Plan, path string) error {
	data, err := Marshal(p, FormatForPath(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write plan %s", path)
	}
	return nil
}

// LoadBaseline reads a plan previously written by Save
func LoadBaseline(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read baseline %s", path)
	}

	var p Plan
	if FormatForPath(path) == "json" {
		err = json.Unmarshal(data, &p)
	} else {
		err = yaml.Unmarshal(data, &p)
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "baseline %s: %s", path, err)
	}
	return &p, nil
}
