// Package hw turns raw document fragments into canonical hardware
// entities: registers, interrupts and device instances.
//
// Extraction is run-scoped: an Extractor memoizes canonical Register
// and Interrupt values for one generation run, makes repeated discovery
// idempotent, and reports conflicting redefinitions. Device resolution
// scans the object model for instances of a device type and associates
// each with its base address, registers and interrupts.
package hw
