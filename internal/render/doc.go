// Package render turns canonical hardware entities into C driver text.
//
// Rendering is deterministic: identical entity lists always produce
// byte-identical output, so repeated generation runs are diff-stable.
// Generation approach uses text/template with missingkey=error, so an
// unresolved placeholder fails the run instead of leaking literal
// template text into a header.
//
// Artifacts:
//   - Base header per device type: offset/width macros, interrupt
//     table, base-address array sized to the instance count
//   - Header/source pair per device instance: vtable-indirected
//     read/write accessors and an index-bounded lookup function
package render
