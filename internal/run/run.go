// Package run wires one generation run together: document decoding,
// extraction, device resolution and rendering. A run owns its
// extraction caches and macro-name counter; nothing is shared across
// runs. The first error aborts the run before any file is rendered
// past it, so callers never hold a partial artifact set.
package run

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"metalgen/internal/diagnostic"
	"metalgen/internal/document"
	"metalgen/internal/hw"
	"metalgen/internal/render"
)

// ErrMissingArgument reports a mode-specific required input that was
// not provided.
var ErrMissingArgument = errors.New("missing required argument")

// Mode selects how much of the driver surface a run generates.
type Mode int

const (
	// ModeBaseHeader generates only the shared base header.
	ModeBaseHeader Mode = iota
	// ModeDrivers generates the base header plus a header/source pair
	// per device instance.
	ModeDrivers
)

// ParseMode maps a mode name to its Mode value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "base":
		return ModeBaseHeader, nil
	case "drivers":
		return ModeDrivers, nil
	}
	return 0, fmt.Errorf("unknown generation mode %q, want base or drivers", s)
}

// Config is the input of one generation run.
type Config struct {
	Vendor string
	Device string
	Mode   Mode

	// ObjectModel is the strict-JSON system object model.
	ObjectModel []byte
	// RegisterDoc is the relaxed-dialect register description document.
	// Required in ModeDrivers, optional otherwise.
	RegisterDoc []byte
}

// Result is the outcome of a successful run: rendered files, ready for
// the writer, and the advisory diagnostics collected along the way.
type Result struct {
	Files       []render.OutputFile
	Diagnostics *diagnostic.Diagnostics
}

// Generate executes one run over the given documents.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	om, err := document.Decode(cfg.ObjectModel)
	if err != nil {
		return nil, fmt.Errorf("object model: %w", err)
	}

	extractor := hw.NewExtractor()

	devices, err := hw.ResolveDevices(om, extractor, cfg.Device)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("no instances of device type %q in object model", cfg.Device)
	}

	regs, err := registerList(cfg, extractor, devices)
	if err != nil {
		return nil, err
	}

	counter := diagnostic.NewNameCounter()
	renderer, err := render.New(cfg.Vendor, cfg.Device, counter)
	if err != nil {
		return nil, err
	}

	var files []render.OutputFile

	base, err := renderer.BaseHeader(devices, regs)
	if err != nil {
		return nil, err
	}
	files = append(files, base)

	if cfg.Mode == ModeDrivers {
		for _, dev := range devices {
			hdr, err := renderer.InstanceHeader(dev, regs)
			if err != nil {
				return nil, err
			}
			src, err := renderer.InstanceSource(dev, regs)
			if err != nil {
				return nil, err
			}
			files = append(files, hdr, src)
		}
	}

	diags := &diagnostic.Diagnostics{}
	counter.Report(diags)

	logrus.WithFields(logrus.Fields{
		"device":    cfg.Device,
		"instances": len(devices),
		"files":     len(files),
	}).Debug("generation run complete")

	return &Result{Files: files, Diagnostics: diags}, nil
}

func (cfg Config) validate() error {
	if cfg.Vendor == "" {
		return fmt.Errorf("%w: vendor name", ErrMissingArgument)
	}
	if cfg.Device == "" {
		return fmt.Errorf("%w: device name", ErrMissingArgument)
	}
	if len(cfg.ObjectModel) == 0 {
		return fmt.Errorf("%w: object model document", ErrMissingArgument)
	}
	if cfg.Mode == ModeDrivers && len(cfg.RegisterDoc) == 0 {
		return fmt.Errorf("%w: register description document (drivers mode)", ErrMissingArgument)
	}
	return nil
}

// registerList settles the shared register layout for the run. The
// object model's register fields (instance 0) win when present; the
// register description document fills in otherwise. Both sources pass
// through the same extractor cache, so a register described differently
// by the two documents surfaces as a conflict.
func registerList(cfg Config, x *hw.Extractor, devices []*hw.Device) ([]*hw.Register, error) {
	regs := devices[0].Registers

	if len(devices) > 1 {
		for _, dev := range devices[1:] {
			if len(dev.Registers) > 0 {
				logrus.WithField("device", cfg.Device).
					Debug("additional instances carry register maps; shared macros use instance 0 only")
				break
			}
		}
	}

	if len(cfg.RegisterDoc) == 0 {
		return regs, nil
	}

	duh, err := document.DecodeRelaxed(cfg.RegisterDoc)
	if err != nil {
		return nil, fmt.Errorf("register document: %w", err)
	}
	duhRegs, err := hw.RegistersFromBlock(duh, x)
	if err != nil {
		return nil, err
	}

	if len(regs) == 0 {
		regs = duhRegs
	}
	return regs, nil
}
