package hw

import (
	"fmt"
	"strings"

	"metalgen/internal/document"

	"github.com/sirupsen/logrus"
)

// interruptTypeTag marks interrupt nodes in the object model.
const interruptTypeTag = "OMInterrupt"

// TypeTagMatch builds a matcher hitting map nodes whose "_types" tag
// list contains an entry that case-insensitively ends with the device
// type name: a tag like "Vendor.WidgetUART" matches "UART".
func TypeTagMatch(device string) document.Matcher {
	suffix := strings.ToLower(device)
	return document.MatcherFunc(func(n *document.Node) bool {
		tags, ok := n.Get("_types")
		if !ok {
			return false
		}
		for _, e := range tags.Elems() {
			if s, ok := e.Str(); ok && strings.HasSuffix(strings.ToLower(s), suffix) {
				return true
			}
		}
		return false
	})
}

// ResolveDevices finds every instance of the requested device type in
// the object model, in pre-order encounter order, and resolves its base
// address, registers and interrupts. Indices are assigned from the
// encounter order, starting at zero.
func ResolveDevices(om *document.Node, x *Extractor, device string) ([]*Device, error) {
	match := TypeTagMatch(device)

	var devices []*Device
	for node := range document.Walk(om) {
		if node.Kind() != document.KindMap || !match.Match(node) {
			continue
		}

		dev := &Device{Name: device, Index: len(devices)}
		if err := resolveDevice(node, x, dev); err != nil {
			return nil, fmt.Errorf("device %s[%d]: %w", device, dev.Index, err)
		}
		devices = append(devices, dev)

		logrus.WithFields(logrus.Fields{
			"device": device,
			"index":  dev.Index,
			"base":   fmt.Sprintf("%#x", dev.Base),
		}).Debug("resolved device instance")
	}
	return devices, nil
}

func resolveDevice(node *document.Node, x *Extractor, dev *Device) error {
	regions, ok := node.Get("memoryRegions")
	if !ok || regions.Len() == 0 {
		return fmt.Errorf("device node has no memoryRegions")
	}
	for i, region := range regions.Elems() {
		if err := resolveRegion(region, x, dev, i); err != nil {
			return err
		}
	}
	if err := resolveInterrupts(node, x, dev); err != nil {
		return err
	}
	return nil
}

// resolveRegion records the region's base address and routes its
// register fields through the extractor. The first region's base
// becomes the device base address.
func resolveRegion(region *document.Node, x *Extractor, dev *Device, idx int) error {
	name := regionName(region, idx)

	sets, ok := region.Get("addressSets")
	if !ok {
		return fmt.Errorf("memory region %s has no addressSets", name)
	}
	if sets.Len() != 1 {
		return fmt.Errorf("%w: memory region %s has %d address sets, want exactly 1",
			ErrAddressSets, name, sets.Len())
	}

	base, ok := intField(sets.Elems()[0], "base")
	if !ok {
		return fmt.Errorf("memory region %s address set has no base", name)
	}
	if idx == 0 {
		dev.Base = base
	}

	regMap, ok := region.Get("registerMap")
	if !ok {
		return nil
	}
	fields, ok := regMap.Get("registerFields")
	if !ok {
		return nil
	}

	for _, field := range fields.Elems() {
		raw, err := rawFromField(field)
		if err != nil {
			return fmt.Errorf("memory region %s: %w", name, err)
		}
		reg, err := x.Register(raw)
		if err != nil {
			return err
		}
		dev.Registers = append(dev.Registers, reg)
	}
	return nil
}

// rawFromField reads one registerFields entry: name and group live
// under "description", bit offset and width under "bitRange".
func rawFromField(field *document.Node) (RawRegister, error) {
	desc, ok := field.Get("description")
	if !ok {
		return RawRegister{}, fmt.Errorf("register field has no description")
	}
	name, ok := strField(desc, "name")
	if !ok {
		return RawRegister{}, fmt.Errorf("register field has no name")
	}
	group, _ := strField(desc, "group")

	bits, ok := field.Get("bitRange")
	if !ok {
		return RawRegister{}, fmt.Errorf("register %q has no bitRange", name)
	}
	offset, ok := intField(bits, "base")
	if !ok {
		return RawRegister{}, fmt.Errorf("register %q has no bit offset", name)
	}
	width, ok := intField(bits, "size")
	if !ok {
		return RawRegister{}, fmt.Errorf("register %q has no bit width", name)
	}

	return RawRegister{Name: name, Offset: offset, Width: width, Group: group}, nil
}

// resolveInterrupts walks the device subtree for interrupt-typed nodes
// and computes the device base interrupt, the minimum number across all
// of its interrupts, named or anonymous. The tag test is exact list
// membership: a prefix match would also capture nodes tagged
// "OMInterruptController", which carry no interrupt number.
func resolveInterrupts(node *document.Node, x *Extractor, dev *Device) error {
	match := document.MatcherFunc(func(n *document.Node) bool {
		tags, ok := n.Get("_types")
		if !ok {
			return false
		}
		for _, e := range tags.Elems() {
			if s, ok := e.Str(); ok && s == interruptTypeTag {
				return true
			}
		}
		return false
	})

	for sub := range document.Select(node, match) {
		number, ok := intField(sub, "numberAtReceiver")
		if !ok {
			return fmt.Errorf("interrupt node has no numberAtReceiver")
		}
		name, _ := strField(sub, "name")

		it, err := x.Interrupt(number, name)
		if err != nil {
			return err
		}
		dev.Interrupts = append(dev.Interrupts, it)
	}

	for i, it := range dev.Interrupts {
		if i == 0 || it.Number < dev.BaseInterrupt {
			dev.BaseInterrupt = it.Number
		}
	}
	return nil
}

// RegistersFromBlock extracts the register list of the first address
// block found in a register description document. Offsets in these
// documents are already in bits.
func RegistersFromBlock(duh *document.Node, x *Extractor) ([]*Register, error) {
	match, err := document.KeyOrValueMatch("addressBlocks")
	if err != nil {
		return nil, err
	}

	holder, ok := document.First(duh, match)
	if !ok {
		return nil, fmt.Errorf("register document has no addressBlocks")
	}
	blocks, ok := holder.Get("addressBlocks")
	if !ok || blocks.Len() == 0 {
		return nil, fmt.Errorf("register document has an empty addressBlocks section")
	}

	regs, ok := blocks.Elems()[0].Get("registers")
	if !ok {
		return nil, fmt.Errorf("address block has no registers")
	}

	var out []*Register
	for _, entry := range regs.Elems() {
		name, ok := strField(entry, "name")
		if !ok {
			return nil, fmt.Errorf("register entry has no name")
		}
		offset, ok := intField(entry, "addressOffset")
		if !ok {
			return nil, fmt.Errorf("register %q has no addressOffset", name)
		}
		width, ok := intField(entry, "size")
		if !ok {
			return nil, fmt.Errorf("register %q has no size", name)
		}

		reg, err := x.Register(RawRegister{Name: name, Offset: offset, Width: width})
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, nil
}

func regionName(region *document.Node, idx int) string {
	if name, ok := strField(region, "name"); ok {
		return fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("#%d", idx)
}

func strField(n *document.Node, key string) (string, bool) {
	v, ok := n.Get(key)
	if !ok {
		return "", false
	}
	return v.Str()
}

func intField(n *document.Node, key string) (int64, bool) {
	v, ok := n.Get(key)
	if !ok {
		return 0, false
	}
	return v.Int()
}
