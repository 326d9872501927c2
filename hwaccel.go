// hwaccel.go - Hardware-acceleration capability probe.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "github.com/klauspost/cpuid/v2"

// IsHardwareAccelerated reports whether the CPU this process is running on
// exposes the vector extensions an AVX2 NTT/CBD backend would use.
//
// spec.md §9 leaves "does the NTT/CBD dispatch on hardware features" as an
// implementation choice, noting "the only observable requirement is that
// NTT∘INTT=id and CBD's distribution is correct regardless of which code
// path executes." This package always executes the portable reference
// path in ntt.go/sample.go; this function exists so callers (and future
// accelerated backends) can query the capability, mirrored on the
// dispatch-table pattern of an AVX2-aware NTT, without yet committing to
// one.
func IsHardwareAccelerated() bool {
	return cpuid.CPU.Supports(cpuid.AVX2, cpuid.BMI2)
}
