package diagnostic

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a short identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Subject names the entity the finding relates to (if any).
	Subject string
}

// String returns a formatted diagnostic line.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}
	if d.Subject != "" {
		return d.Subject + ": " + msg
	}
	return msg
}

// Diagnostics accumulates findings for one generation run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Subject:  subject,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, subject string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Subject:  subject,
	})
}

// Empty reports whether there is nothing to surface.
func (d *Diagnostics) Empty() bool {
	return len(d.Warnings) == 0 && len(d.Infos) == 0
}

// String returns all findings, one per line.
func (d *Diagnostics) String() string {
	var lines []string
	for _, w := range d.Warnings {
		lines = append(lines, w.Severity.String()+": "+w.String())
	}
	for _, i := range d.Infos {
		lines = append(lines, i.Severity.String()+": "+i.String())
	}
	return strings.Join(lines, "\n")
}
