// Package manifest loads the YAML batch manifest: a list of device
// entries to generate in one invocation, sharing a single object model.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"metalgen/internal/run"
)

// File is a parsed manifest.
type File struct {
	Version string  `yaml:"version"`
	Devices []Entry `yaml:"devices"`
}

// Entry describes one device type to generate.
type Entry struct {
	Device string `yaml:"device"`
	Vendor string `yaml:"vendor"`
	// Mode is "base" or "drivers"; defaults to "drivers" when a
	// register document is given, "base" otherwise.
	Mode string `yaml:"mode"`
	// RegisterDoc is the path to the relaxed-dialect register
	// description document, relative to the manifest's caller.
	RegisterDoc string `yaml:"register_doc"`
}

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML data into a manifest and validates it.
func Parse(data []byte) (*File, error) {
	var mf File

	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&mf)

	if err := mf.Validate(); err != nil {
		return nil, err
	}
	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *File) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	for i := range mf.Devices {
		e := &mf.Devices[i]
		if e.Mode != "" {
			continue
		}
		if e.RegisterDoc != "" {
			e.Mode = "drivers"
		} else {
			e.Mode = "base"
		}
	}
}

// Validate checks every entry for the fields generation will need.
func (mf *File) Validate() error {
	for i, e := range mf.Devices {
		if e.Device == "" {
			return fmt.Errorf("manifest entry %d: device name is required", i)
		}
		if e.Vendor == "" {
			return fmt.Errorf("manifest entry %d (%s): vendor name is required", i, e.Device)
		}

		mode, err := e.RunMode()
		if err != nil {
			return fmt.Errorf("manifest entry %d (%s): %w", i, e.Device, err)
		}
		if mode == run.ModeDrivers && e.RegisterDoc == "" {
			return fmt.Errorf("manifest entry %d (%s): drivers mode requires register_doc", i, e.Device)
		}
	}
	return nil
}

// RunMode maps the entry's mode string to a run.Mode.
func (e Entry) RunMode() (run.Mode, error) {
	return run.ParseMode(e.Mode)
}
