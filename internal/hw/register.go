package hw

// ReservedName is the sentinel register name for padding entries.
// Reserved registers are exempt from deduplication and never produce
// offset macros, but they stay in register lists so that position
// dependent output (vtables, prototypes) keeps its sequencing.
const ReservedName = "reserved"

// Register is the canonical description of a memory-mapped control
// register. Offset is always in bits from the start of the register
// map; Width is in bits and is one of 8, 16, 32 or 64.
type Register struct {
	Name   string
	Offset int64
	Width  int64
	Group  string
}

// Reserved reports whether the register is a padding entry.
func (r *Register) Reserved() bool { return r.Name == ReservedName }

// RawRegister is a register descriptor as found in a source document,
// before normalization. ByteOffset marks descriptors using the legacy
// byte-offset convention; the extractor converts those to bits.
type RawRegister struct {
	Name       string
	Offset     int64
	Width      int64
	Group      string
	ByteOffset bool
}

func validWidth(w int64) bool {
	switch w {
	case 8, 16, 32, 64:
		return true
	}
	return false
}
