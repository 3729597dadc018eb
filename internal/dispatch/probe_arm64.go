//go:build arm64

package dispatch

import "golang.org/x/sys/cpu"

func cpuSupports(b Backend) bool {
	return b == NEON && cpu.ARM64.HasASIMD
}
