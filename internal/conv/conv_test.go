package conv

import (
	"math"
	"testing"
)

func TestIntToUint8(t *testing.T) {
	for _, n := range []int{0, 1, 3, math.MaxUint8} {
		if got := IntToUint8(n); int(got) != n {
			t.Errorf("IntToUint8(%d) = %d", n, got)
		}
	}
}

func TestIntToUint8Panics(t *testing.T) {
	for _, n := range []int{-1, math.MaxUint8 + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("IntToUint8(%d) did not panic", n)
				}
			}()
			IntToUint8(n)
		}()
	}
}
