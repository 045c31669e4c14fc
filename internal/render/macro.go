package render

import (
	"fmt"
	"strings"

	"metalgen/internal/hw"
)

// cleanToken uppercases a name fragment and strips spaces so it can be
// used inside a macro name.
func cleanToken(s string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), " ", "")
}

// lowerToken lowercases a name fragment and strips spaces so it can be
// used inside a C identifier.
func lowerToken(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}

// registerMacro composes the base macro name for a register:
// METAL_<DEVICE>[_<GROUP>]_<NAME>. When the register name already
// begins with the group's last underscore-delimited segment, that
// segment is dropped from the group so names like GROUP_GROUP_FIELD
// don't come out doubled.
func registerMacro(capDevice string, r *hw.Register) string {
	name := cleanToken(r.Name)
	group := cleanToken(r.Group)

	if group != "" {
		segs := strings.Split(group, "_")
		if strings.HasPrefix(name, segs[len(segs)-1]+"_") {
			group = strings.Join(segs[:len(segs)-1], "_")
		}
	}

	if group == "" {
		return "METAL_" + capDevice + "_" + name
	}
	return "METAL_" + capDevice + "_" + group + "_" + name
}

// hexList formats values as a C array initializer of hex literals,
// e.g. {0x1000, 0x2000}.
func hexList(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%#x", v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// intList formats values as a C array initializer of decimal literals.
func intList(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
