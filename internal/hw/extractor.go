package hw

import (
	"fmt"
	"strings"
)

type regKey struct {
	name  string
	group string
}

// Extractor canonicalizes raw register and interrupt descriptors for a
// single generation run. It must be created fresh per run and never
// shared across runs: its caches are what make repeated discovery of
// the same entity idempotent.
type Extractor struct {
	regs map[regKey]*Register
	ints map[string]*Interrupt
}

// NewExtractor returns an empty run-scoped extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		regs: make(map[regKey]*Register),
		ints: make(map[string]*Interrupt),
	}
}

// Register normalizes a raw register descriptor into its canonical
// instance. Re-extracting an identical descriptor returns the instance
// seen first; a descriptor whose offset, width or group differs from
// the first sighting of the same (name, group) key is a conflict.
// Reserved padding entries bypass the cache entirely.
func (x *Extractor) Register(raw RawRegister) (*Register, error) {
	if !validWidth(raw.Width) {
		return nil, fmt.Errorf("%w: register %q has width %d, want 8, 16, 32 or 64",
			ErrInvalidWidth, raw.Name, raw.Width)
	}

	offset := raw.Offset
	if raw.ByteOffset {
		offset *= 8
	}

	reg := &Register{
		Name:   raw.Name,
		Offset: offset,
		Width:  raw.Width,
		Group:  raw.Group,
	}
	if reg.Reserved() {
		return reg, nil
	}

	key := regKey{name: raw.Name, group: raw.Group}
	prev, seen := x.regs[key]
	if !seen {
		x.regs[key] = reg
		return reg, nil
	}

	if prev.Offset != reg.Offset || prev.Width != reg.Width || prev.Group != reg.Group {
		return nil, fmt.Errorf("%w: register %q (group %q) seen as offset=%d width=%d and offset=%d width=%d",
			ErrConflict, raw.Name, raw.Group, prev.Offset, prev.Width, reg.Offset, reg.Width)
	}
	return prev, nil
}

// Interrupt canonicalizes an interrupt descriptor. Names carrying the
// "@" marker are anonymized before deduplication, so anonymous entries
// always produce fresh instances. A named interrupt re-observed with a
// different number is a conflict.
func (x *Extractor) Interrupt(number int64, name string) (*Interrupt, error) {
	if strings.Contains(name, "@") {
		name = ""
	}
	if name == "" {
		return &Interrupt{Number: number}, nil
	}

	prev, seen := x.ints[name]
	if !seen {
		it := &Interrupt{Number: number, Name: name}
		x.ints[name] = it
		return it, nil
	}

	if prev.Number != number {
		return nil, fmt.Errorf("%w: interrupt %q seen as both %d and %d",
			ErrConflict, name, prev.Number, number)
	}
	return prev, nil
}
