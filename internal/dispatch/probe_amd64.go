//go:build amd64

package dispatch

import "golang.org/x/sys/cpu"

// cpuSupports reads the x86 feature flags. AVX-512 needs BW on top of the
// foundation set for byte-granular operations.
func cpuSupports(b Backend) bool {
	switch b {
	case AVX512:
		return cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	case AVX2:
		return cpu.X86.HasAVX2
	case SSE42:
		return cpu.X86.HasSSE42
	default:
		return false
	}
}
