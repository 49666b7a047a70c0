//go:build !noasm && amd64

package bitops

import "golang.org/x/sys/cpu"

func init() {
	hasPOPCNT = cpu.X86.HasPOPCNT
	hasBMI1 = cpu.X86.HasBMI1
	initCapabilities()
}
