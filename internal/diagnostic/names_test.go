package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameCounter_Duplicates(t *testing.T) {
	c := NewNameCounter()
	c.Count("METAL_UART_CTRL")
	c.Count("METAL_UART_DIV")
	c.Count("METAL_UART_CTRL")
	c.Count("METAL_UART_DATA")
	c.Count("METAL_UART_DIV")
	c.Count("METAL_UART_CTRL")

	assert.Equal(t, []string{"METAL_UART_CTRL", "METAL_UART_DIV"}, c.Duplicates(),
		"duplicates report in first-seen order")
}

func TestNameCounter_NoDuplicates(t *testing.T) {
	c := NewNameCounter()
	c.Count("A")
	c.Count("B")
	assert.Empty(t, c.Duplicates())

	var d Diagnostics
	c.Report(&d)
	assert.True(t, d.Empty())
}

func TestNameCounter_Report(t *testing.T) {
	c := NewNameCounter()
	c.Count("METAL_UART_CTRL")
	c.Count("METAL_UART_CTRL")

	var d Diagnostics
	c.Report(&d)

	require.Len(t, d.Warnings, 1)
	w := d.Warnings[0]
	assert.Equal(t, SeverityWarning, w.Severity)
	assert.Equal(t, "dup-macro", w.Code)
	assert.Equal(t, "METAL_UART_CTRL", w.Subject)
	assert.Contains(t, w.Message, "2")
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: SeverityWarning, Code: "dup-macro",
		Message: "macro name generated 2 times", Subject: "METAL_UART_CTRL"}
	assert.Equal(t, "METAL_UART_CTRL: [dup-macro] macro name generated 2 times", d.String())

	plain := Diagnostic{Message: "note"}
	assert.Equal(t, "note", plain.String())
}
