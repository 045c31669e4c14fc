package render

import "text/template"

// baseHeaderData holds everything the base header template needs.
type baseHeaderData struct {
	Vendor    string
	Device    string
	CapDevice string
	Count     int
	Bases     string
	Interrupt *interruptData
	Registers []registerMacroData
}

// registerMacroData is one register's macro block: absolute bit offset,
// byte offset, bit-within-byte and width.
type registerMacroData struct {
	Macro  string
	Offset int64
	Byte   int64
	Bit    int64
	Width  int64
}

// interruptData is the interrupt section of the base header. Offsets
// are relative to the device base interrupt; Bases lists each
// instance's base interrupt in index order.
type interruptData struct {
	Macros []interruptMacroData
	Count  int
	Bases  string
}

type interruptMacroData struct {
	Name   string
	Offset int64
}

// instanceData holds everything the per-instance templates need.
type instanceData struct {
	Vendor    string
	Device    string
	CapDevice string
	Index     int
	BaseHex   string
	Registers []accessorData
}

// accessorData is one register's slot in the vtable and accessor
// functions. OffsetExpr is the byte-offset expression used by the
// access functions: the _BYTE macro for named registers, a literal for
// reserved entries, which have no macros.
type accessorData struct {
	Lower      string
	Width      int64
	OffsetExpr string
}

var baseHeaderTemplate = template.Must(
	template.New("base_header").
		Option("missingkey=error").
		Parse(`#include <metal/compiler.h>
#include <metal/io.h>

#ifndef {{.Vendor}}_{{.Device}}_h
#define {{.Vendor}}_{{.Device}}_h

// To use {{.CapDevice}}_BASES, use it as the
// initializer to an array of ints, i.e.
// int bases[] = {{.CapDevice}}_BASES;

#define {{.CapDevice}}_COUNT {{.Count}}
#define {{.CapDevice}}_BASES {{.Bases}}
{{- if .Interrupt}}

{{range .Interrupt.Macros}}#define {{.Name}} {{.Offset}}
{{end}}#define {{$.CapDevice}}_INTERRUPT_COUNT {{.Interrupt.Count}}
#define {{$.CapDevice}}_INTERRUPT_BASES {{.Interrupt.Bases}}
{{- end}}

// Note: these macros have control_base as a hidden input.
// Use them with the _BYTE defines.
#define METAL_{{.CapDevice}}_REG(offset) ((unsigned long)control_base + (offset))
#define METAL_{{.CapDevice}}_REGW(offset) \
   (__METAL_ACCESS_ONCE((__metal_io_u32 *)METAL_{{.CapDevice}}_REG(offset)))

#define METAL_{{.CapDevice}}_REGBW(offset) \
   (__METAL_ACCESS_ONCE((uint8_t *)METAL_{{.CapDevice}}_REG(offset)))

// MACRO       => bit offset from base
// MACRO_BYTE  => byte offset from base
// MACRO_BIT   => bit position within MACRO_BYTE
// MACRO_WIDTH => bit width

{{range .Registers}}#define {{.Macro}} {{.Offset}}
#define {{.Macro}}_BYTE {{.Byte}}
#define {{.Macro}}_BIT {{.Bit}}
#define {{.Macro}}_WIDTH {{.Width}}

{{end}}#endif
`))

var instanceHeaderTemplate = template.Must(
	template.New("instance_header").
		Option("missingkey=error").
		Parse(`#include <metal/compiler.h>
#include <stdint.h>
#include <stdlib.h>

#include <{{.Device}}/{{.Vendor}}_{{.Device}}.h>

#ifndef {{.Vendor}}_{{.Device}}{{.Index}}_h
#define {{.Vendor}}_{{.Device}}{{.Index}}_h

struct metal_{{.Device}};

struct metal_{{.Device}}_vtable {
{{range .Registers}}	void (*v_{{$.Device}}_{{.Lower}}_write)(uint32_t *{{$.Device}}_base, uint{{.Width}}_t data);
	uint{{.Width}}_t (*v_{{$.Device}}_{{.Lower}}_read)(uint32_t *{{$.Device}}_base);
{{end}}};

struct metal_{{.Device}} {
	uint32_t *{{.Device}}_base;
	const struct metal_{{.Device}}_vtable vtable;
};

__METAL_DECLARE_VTABLE(metal_{{.Device}})

{{range .Registers}}void metal_{{$.Device}}_{{.Lower}}_write(const struct metal_{{$.Device}} *{{$.Device}}, uint{{.Width}}_t data);
uint{{.Width}}_t metal_{{$.Device}}_{{.Lower}}_read(const struct metal_{{$.Device}} *{{$.Device}});
{{end}}const struct metal_{{.Device}} *get_metal_{{.Device}}(uint8_t index);

#endif
`))

var instanceSourceTemplate = template.Must(
	template.New("instance_source").
		Option("missingkey=error").
		Parse(`#include <stdint.h>
#include <stdlib.h>

#include <{{.Device}}/{{.Vendor}}_{{.Device}}{{.Index}}.h>
#include <metal/compiler.h>
#include <metal/io.h>

{{range .Registers}}void {{$.Device}}_{{.Lower}}_write(uint32_t *{{$.Device}}_base, uint{{.Width}}_t data)
{
	volatile uint32_t *control_base = {{$.Device}}_base;
	METAL_{{$.CapDevice}}_REGW({{.OffsetExpr}}) = data;
}

uint{{.Width}}_t {{$.Device}}_{{.Lower}}_read(uint32_t *{{$.Device}}_base)
{
	volatile uint32_t *control_base = {{$.Device}}_base;
	return METAL_{{$.CapDevice}}_REGW({{.OffsetExpr}});
}

{{end}}{{range .Registers}}void metal_{{$.Device}}_{{.Lower}}_write(const struct metal_{{$.Device}} *{{$.Device}}, uint{{.Width}}_t data)
{
	if ({{$.Device}} != NULL)
		{{$.Device}}->vtable.v_{{$.Device}}_{{.Lower}}_write({{$.Device}}->{{$.Device}}_base, data);
}

uint{{.Width}}_t metal_{{$.Device}}_{{.Lower}}_read(const struct metal_{{$.Device}} *{{$.Device}})
{
	if ({{$.Device}} != NULL)
		return {{$.Device}}->vtable.v_{{$.Device}}_{{.Lower}}_read({{$.Device}}->{{$.Device}}_base);
	return (uint{{.Width}}_t)-1;
}

{{end}}__METAL_DEFINE_VTABLE(metal_{{.Device}}) = {
	.{{.Device}}_base = (uint32_t *){{.BaseHex}},
{{range .Registers}}	.vtable.v_{{$.Device}}_{{.Lower}}_write = {{$.Device}}_{{.Lower}}_write,
	.vtable.v_{{$.Device}}_{{.Lower}}_read = {{$.Device}}_{{.Lower}}_read,
{{end}}};

const struct metal_{{.Device}} *{{.Device}}_tables[] = {&metal_{{.Device}}};
uint8_t {{.Device}}_tables_cnt = 1;

const struct metal_{{.Device}} *get_metal_{{.Device}}(uint8_t idx)
{
	if (idx >= {{.Device}}_tables_cnt)
		return NULL;
	return {{.Device}}_tables[idx];
}
`))
