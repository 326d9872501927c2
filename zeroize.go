// zeroize.go - Best-effort clearing of secret-bearing buffers.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// zeroize overwrites b with zeroes. Per spec.md §5, secret material (sk,
// s-hat, z, m', r, K-bar) should be cleared on scope exit to limit residual
// exposure; the spec does not mandate a specific mechanism, and this one is
// a plain loop rather than a call to a memory-fencing library, since
// nothing in the corpus pulls one in for that purpose.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
