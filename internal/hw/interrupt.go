package hw

// Interrupt is a canonical interrupt line. Name may be empty: entries
// whose document name carries an "@" marker are anonymous and keep an
// empty name. Anonymous interrupts are excluded from named macro
// generation but still count toward totals and the base interrupt.
type Interrupt struct {
	Number int64
	Name   string
}

// Anonymous reports whether the interrupt has no usable name.
func (i *Interrupt) Anonymous() bool { return i.Name == "" }
