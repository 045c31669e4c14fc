package diagnostic

import "fmt"

// NameCounter tracks every macro name generated during one run. It is
// run-scoped state, created fresh per generation run alongside the
// extraction caches, and discarded with them.
type NameCounter struct {
	counts map[string]int
	order  []string
}

// NewNameCounter returns an empty counter.
func NewNameCounter() *NameCounter {
	return &NameCounter{counts: make(map[string]int)}
}

// Count records one generation of the given macro name.
func (c *NameCounter) Count(name string) {
	if c.counts[name] == 0 {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

// Duplicates returns the names generated more than once, in first-seen
// order so reports are deterministic.
func (c *NameCounter) Duplicates() []string {
	var dups []string
	for _, name := range c.order {
		if c.counts[name] > 1 {
			dups = append(dups, name)
		}
	}
	return dups
}

// Report adds one warning per duplicated macro name. Duplicate names
// are advisory: the generated output is kept as-is for operator review.
func (c *NameCounter) Report(d *Diagnostics) {
	for _, name := range c.Duplicates() {
		d.AddWarning("dup-macro",
			fmt.Sprintf("macro name generated %d times", c.counts[name]), name)
	}
}
