// hwaccel_test.go - Hardware-acceleration capability probe tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"testing"

	"github.com/klauspost/cpuid/v2"
)

// TestIsHardwareAccelerated exercises the capability probe directly
// against the same cpuid.CPU feature set it queries, the way the
// teacher's kem_test.go exercises IsHardwareAccelerated() to decide
// whether to also run an accelerated code path.
func TestIsHardwareAccelerated(t *testing.T) {
	want := cpuid.CPU.Supports(cpuid.AVX2, cpuid.BMI2)
	got := IsHardwareAccelerated()
	if got != want {
		t.Fatalf("IsHardwareAccelerated() = %v, want %v", got, want)
	}
	t.Logf("IsHardwareAccelerated(): %v", got)
}
