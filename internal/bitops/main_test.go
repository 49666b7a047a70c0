package bitops

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints kernel diagnostics so CI logs show which primitives ran.
func TestMain(m *testing.M) {
	fmt.Printf("=== Bit Kernel Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvKernel, os.Getenv(EnvKernel))
	fmt.Printf("Active kernel: %s\n", ActiveKernel())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("Native available: %v\n", HasNative())
	fmt.Printf("==============================\n\n")

	os.Exit(m.Run())
}
