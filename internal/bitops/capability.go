package bitops

import (
	"os"
	"strings"
)

// Kernel identifies an implementation of the bit primitives.
type Kernel uint8

const (
	// Table is the portable halving-search and lookup-table kernel.
	Table Kernel = iota
	// Native uses hardware bit-scan and popcount through math/bits.
	Native
)

// EnvKernel names the environment variable that overrides kernel selection.
const EnvKernel = "INTSET_BITS"

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Table:
		return "table"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "generic":
		return Table, true
	case "native", "hardware":
		return Native, true
	default:
		return Table, false
	}
}

// Package-level state, initialized once at package init.
var (
	activeKernel Kernel
	hasOverride  bool

	// CPU feature flags (set by platform-specific init)
	hasPOPCNT bool // x86-64 POPCNT
	hasBMI1   bool // x86-64 TZCNT
	hasASIMD  bool // ARM64 CNT
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeKernel, hasOverride = chooseKernel(os.Getenv(EnvKernel))
	use(activeKernel)
}

// chooseKernel honours a valid override and otherwise picks the best
// kernel the CPU supports.
func chooseKernel(override string) (Kernel, bool) {
	if override != "" {
		if k, ok := ParseKernel(override); ok && isKernelAvailable(k) {
			return k, true
		}
		// Invalid override - fall through to auto-detection
	}
	if hasNativeBits() {
		return Native, false
	}
	return Table, false
}

func isKernelAvailable(k Kernel) bool {
	switch k {
	case Table:
		return true
	case Native:
		return hasNativeBits()
	default:
		return false
	}
}

func hasNativeBits() bool {
	return (hasPOPCNT && hasBMI1) || hasASIMD
}

// ActiveKernel returns the currently active kernel.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if INTSET_BITS selected the kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasNative returns true if the CPU supports the native kernel.
func HasNative() bool {
	return hasNativeBits()
}
