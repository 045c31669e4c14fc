package render

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"text/template"

	"metalgen/internal/diagnostic"
	"metalgen/internal/hw"
)

// OutputFile is one rendered artifact, with a path relative to the
// output root.
type OutputFile struct {
	Path    string
	Content []byte
}

// Renderer renders the artifacts of one device type. It shares the
// run-scoped name counter so duplicate macro names across all rendered
// files are reported together.
type Renderer struct {
	vendor  string
	device  string
	counter *diagnostic.NameCounter
}

// New returns a renderer for the given vendor and device names.
func New(vendor, device string, counter *diagnostic.NameCounter) (*Renderer, error) {
	if vendor == "" {
		return nil, errors.New("renderer needs a vendor name")
	}
	if device == "" {
		return nil, errors.New("renderer needs a device name")
	}
	if counter == nil {
		return nil, errors.New("renderer needs a name counter")
	}
	return &Renderer{vendor: vendor, device: device, counter: counter}, nil
}

func (r *Renderer) capDevice() string { return cleanToken(r.device) }

// BaseHeader renders the shared header of a device type: instance
// count, base-address array, interrupt table and the offset/width
// macros of every non-reserved register.
func (r *Renderer) BaseHeader(devices []*hw.Device, regs []*hw.Register) (OutputFile, error) {
	if len(devices) == 0 {
		return OutputFile{}, errors.New("no device instances to render")
	}

	capDev := r.capDevice()
	bases := make([]int64, len(devices))
	for i, dev := range devices {
		bases[i] = dev.Base
	}

	data := baseHeaderData{
		Vendor:    r.vendor,
		Device:    r.device,
		CapDevice: capDev,
		Count:     len(devices),
		Bases:     hexList(bases),
	}
	r.counter.Count(capDev + "_COUNT")
	r.counter.Count(capDev + "_BASES")

	data.Interrupt = r.buildInterrupts(capDev, devices)

	for _, reg := range regs {
		if reg.Reserved() {
			continue
		}
		macro := registerMacro(capDev, reg)
		r.counter.Count(macro)
		data.Registers = append(data.Registers, registerMacroData{
			Macro:  macro,
			Offset: reg.Offset,
			Byte:   reg.Offset >> 3,
			Bit:    reg.Offset & 0x7,
			Width:  reg.Width,
		})
	}

	content, err := execute(baseHeaderTemplate, data)
	if err != nil {
		return OutputFile{}, fmt.Errorf("base header for %s: %w", r.device, err)
	}
	return OutputFile{
		Path:    filepath.Join(r.device, fmt.Sprintf("%s_%s.h", r.vendor, r.device)),
		Content: content,
	}, nil
}

// buildInterrupts assembles the interrupt section. Named offsets come
// from instance 0, relative to its base interrupt, mirroring the
// shared-register-layout rule; the bases array covers every instance.
func (r *Renderer) buildInterrupts(capDev string, devices []*hw.Device) *interruptData {
	first := devices[0]
	if len(first.Interrupts) == 0 {
		return nil
	}

	data := &interruptData{Count: len(first.Interrupts)}
	for _, it := range first.Interrupts {
		if it.Anonymous() {
			continue
		}
		name := capDev + "_" + cleanToken(it.Name) + "_IT"
		r.counter.Count(name)
		data.Macros = append(data.Macros, interruptMacroData{
			Name:   name,
			Offset: it.Number - first.BaseInterrupt,
		})
	}

	baseInts := make([]int64, len(devices))
	for i, dev := range devices {
		baseInts[i] = dev.BaseInterrupt
	}
	data.Bases = intList(baseInts)

	r.counter.Count(capDev + "_INTERRUPT_COUNT")
	r.counter.Count(capDev + "_INTERRUPT_BASES")
	return data
}

// InstanceHeader renders the driver header of one device instance.
func (r *Renderer) InstanceHeader(dev *hw.Device, regs []*hw.Register) (OutputFile, error) {
	data := r.buildInstanceData(dev, regs)

	content, err := execute(instanceHeaderTemplate, data)
	if err != nil {
		return OutputFile{}, fmt.Errorf("instance header for %s[%d]: %w", r.device, dev.Index, err)
	}
	return OutputFile{
		Path:    filepath.Join(r.device, fmt.Sprintf("%s_%s%d.h", r.vendor, r.device, dev.Index)),
		Content: content,
	}, nil
}

// InstanceSource renders the driver source of one device instance.
func (r *Renderer) InstanceSource(dev *hw.Device, regs []*hw.Register) (OutputFile, error) {
	data := r.buildInstanceData(dev, regs)

	content, err := execute(instanceSourceTemplate, data)
	if err != nil {
		return OutputFile{}, fmt.Errorf("instance source for %s[%d]: %w", r.device, dev.Index, err)
	}
	return OutputFile{
		Path:    fmt.Sprintf("%s_%s%d.c", r.vendor, r.device, dev.Index),
		Content: content,
	}, nil
}

// buildInstanceData lays out the vtable slots. Every register appears,
// reserved ones included, in list order: accessors and vtable entries
// must keep the sequencing of the register map. Reserved entries have
// no macros, so their access functions use a literal byte offset.
func (r *Renderer) buildInstanceData(dev *hw.Device, regs []*hw.Register) instanceData {
	capDev := r.capDevice()
	data := instanceData{
		Vendor:    r.vendor,
		Device:    r.device,
		CapDevice: capDev,
		Index:     dev.Index,
		BaseHex:   fmt.Sprintf("%#x", dev.Base),
	}

	for _, reg := range regs {
		slot := accessorData{
			Lower: lowerToken(reg.Name),
			Width: reg.Width,
		}
		if reg.Reserved() {
			slot.OffsetExpr = strconv.FormatInt(reg.Offset>>3, 10)
		} else {
			slot.OffsetExpr = registerMacro(capDev, reg) + "_BYTE"
		}
		data.Registers = append(data.Registers, slot)
	}
	return data
}

func execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return buf.Bytes(), nil
}
