//go:build !amd64 && !arm64

package dispatch

// cpuSupports reports no CPU-specific backends; these targets select Scalar.
func cpuSupports(Backend) bool {
	return false
}
