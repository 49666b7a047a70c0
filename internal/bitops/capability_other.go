//go:build noasm || !(amd64 || arm64)

package bitops

func init() {
	initCapabilities()
}
