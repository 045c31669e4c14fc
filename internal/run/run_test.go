package run

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metalgen/internal/hw"
)

const twoUARTModel = `{
	"components": [
		{
			"_types": ["Vendor.WidgetUART"],
			"memoryRegions": [{"addressSets": [{"base": 4096}]}],
			"interrupts": [
				{"_types": ["OMInterrupt"], "numberAtReceiver": 3, "name": "TXWM"},
				{"_types": ["OMInterrupt"], "numberAtReceiver": 4, "name": "RXWM"}
			]
		},
		{
			"_types": ["Vendor.WidgetUART"],
			"memoryRegions": [{"addressSets": [{"base": 8192}]}]
		}
	]
}`

const uartRegisterDoc = `{
	component: {
		addressBlocks: [{
			registers: [
				{name: 'CTRL', addressOffset: 0x0, size: 32},
				{name: 'reserved', addressOffset: 0x20, size: 32},
				{name: 'DATA', addressOffset: 0x40, size: 32}, // relaxed dialect
			],
		}],
	},
}`

func TestGenerate_Drivers(t *testing.T) {
	res, err := Generate(Config{
		Vendor:      "sifive",
		Device:      "UART",
		Mode:        ModeDrivers,
		ObjectModel: []byte(twoUARTModel),
		RegisterDoc: []byte(uartRegisterDoc),
	})
	require.NoError(t, err)

	// Base header plus a header/source pair per instance.
	require.Len(t, res.Files, 5)

	var paths []string
	for _, f := range res.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"UART/sifive_UART.h",
		"UART/sifive_UART0.h",
		"sifive_UART0.c",
		"UART/sifive_UART1.h",
		"sifive_UART1.c",
	}, paths)

	base := string(res.Files[0].Content)
	assert.Contains(t, base, "#define UART_COUNT 2")
	assert.Contains(t, base, "#define UART_BASES {0x1000, 0x2000}")
	assert.Contains(t, base, "#define UART_TXWM_IT 0")
	assert.Contains(t, base, "#define UART_RXWM_IT 1")
	assert.Contains(t, base, "#define METAL_UART_CTRL 0")
	assert.Contains(t, base, "#define METAL_UART_DATA 64")
	assert.NotContains(t, base, "RESERVED")

	src := string(res.Files[2].Content)
	assert.Contains(t, src, "METAL_UART_REGW(METAL_UART_CTRL_BYTE)")
	assert.Contains(t, src, "METAL_UART_REGW(4)",
		"reserved slot keeps its vtable position with a literal offset")

	assert.True(t, res.Diagnostics.Empty())
}

func TestGenerate_BaseMode(t *testing.T) {
	res, err := Generate(Config{
		Vendor:      "sifive",
		Device:      "UART",
		Mode:        ModeBaseHeader,
		ObjectModel: []byte(twoUARTModel),
		RegisterDoc: []byte(uartRegisterDoc),
	})
	require.NoError(t, err)

	require.Len(t, res.Files, 1)
	assert.Equal(t, "UART/sifive_UART.h", res.Files[0].Path)
}

func TestGenerate_ObjectModelRegistersWin(t *testing.T) {
	// Instance 0 carries its own register map; the register document
	// describes the same layout, so the shared cache sees no conflict
	// and the object model's list is used.
	om := `{
		"components": [{
			"_types": ["UART"],
			"memoryRegions": [{
				"addressSets": [{"base": 4096}],
				"registerMap": {"registerFields": [
					{"description": {"name": "CTRL"}, "bitRange": {"base": 0, "size": 32}}
				]}
			}]
		}]
	}`
	duh := `{component: {addressBlocks: [{registers: [
		{name: 'CTRL', addressOffset: 0, size: 32},
		{name: 'DATA', addressOffset: 0x40, size: 32},
	]}]}}`

	res, err := Generate(Config{
		Vendor:      "sifive",
		Device:      "UART",
		Mode:        ModeBaseHeader,
		ObjectModel: []byte(om),
		RegisterDoc: []byte(duh),
	})
	require.NoError(t, err)

	base := string(res.Files[0].Content)
	assert.Contains(t, base, "#define METAL_UART_CTRL 0")
	assert.NotContains(t, base, "METAL_UART_DATA",
		"register document entries do not extend an object model layout")
}

func TestGenerate_CrossDocumentConflict(t *testing.T) {
	om := `{
		"components": [{
			"_types": ["UART"],
			"memoryRegions": [{
				"addressSets": [{"base": 4096}],
				"registerMap": {"registerFields": [
					{"description": {"name": "CTRL"}, "bitRange": {"base": 0, "size": 32}}
				]}
			}]
		}]
	}`
	duh := `{component: {addressBlocks: [{registers: [
		{name: 'CTRL', addressOffset: 0x40, size: 32},
	]}]}}`

	res, err := Generate(Config{
		Vendor:      "sifive",
		Device:      "UART",
		Mode:        ModeDrivers,
		ObjectModel: []byte(om),
		RegisterDoc: []byte(duh),
	})
	assert.ErrorIs(t, err, hw.ErrConflict,
		"both documents pass through one extraction cache")
	assert.Nil(t, res, "no files on error")
}

func TestGenerate_MultipleAddressSetsAborts(t *testing.T) {
	om := `{
		"components": [{
			"_types": ["UART"],
			"memoryRegions": [{"addressSets": [{"base": 4096}, {"base": 8192}]}]
		}]
	}`

	res, err := Generate(Config{
		Vendor:      "sifive",
		Device:      "UART",
		Mode:        ModeBaseHeader,
		ObjectModel: []byte(om),
	})
	assert.ErrorIs(t, err, hw.ErrAddressSets)
	assert.Nil(t, res)
}

func TestGenerate_NoInstances(t *testing.T) {
	_, err := Generate(Config{
		Vendor:      "sifive",
		Device:      "UART",
		Mode:        ModeBaseHeader,
		ObjectModel: []byte(`{"components": []}`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UART")
}

func TestGenerate_Validation(t *testing.T) {
	base := Config{
		Vendor:      "sifive",
		Device:      "UART",
		Mode:        ModeDrivers,
		ObjectModel: []byte(twoUARTModel),
		RegisterDoc: []byte(uartRegisterDoc),
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"vendor", func(c *Config) { c.Vendor = "" }},
		{"device", func(c *Config) { c.Device = "" }},
		{"object model", func(c *Config) { c.ObjectModel = nil }},
		{"register doc in drivers mode", func(c *Config) { c.RegisterDoc = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			_, err := Generate(cfg)
			assert.ErrorIs(t, err, ErrMissingArgument)
		})
	}
}

func TestGenerate_DuplicateMacroWarning(t *testing.T) {
	duh := `{component: {addressBlocks: [{registers: [
		{name: 'CTRL', addressOffset: 0, size: 32},
		{name: 'CTRL', addressOffset: 0, size: 32},
	]}]}}`

	res, err := Generate(Config{
		Vendor:      "sifive",
		Device:      "UART",
		Mode:        ModeBaseHeader,
		ObjectModel: []byte(twoUARTModel),
		RegisterDoc: []byte(duh),
	})
	require.NoError(t, err, "duplicate names are advisory")

	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, "METAL_UART_CTRL", res.Diagnostics.Warnings[0].Subject)
	assert.True(t, strings.Contains(res.Diagnostics.Warnings[0].String(), "dup-macro"))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("base")
	require.NoError(t, err)
	assert.Equal(t, ModeBaseHeader, m)

	m, err = ParseMode("drivers")
	require.NoError(t, err)
	assert.Equal(t, ModeDrivers, m)

	_, err = ParseMode("other")
	assert.Error(t, err)
}
