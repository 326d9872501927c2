// doc.go - Kyber godoc extras.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber implements Kyber, the IND-CCA2-secure key encapsulation
// mechanism (KEM) in the CRYSTALS-Kyber family, based on the hardness of
// the Module Learning-With-Errors (Module-LWE) problem over the cyclotomic
// ring R_q = Z_q[X]/(X^256+1), q=3329, as submitted to round 3 of the NIST
// Post-Quantum Cryptography standardization project.
//
// The package exposes the two parameter sets in scope for this
// implementation, Kyber512 and Kyber768. Kyber1024 is reserved: its
// parameter tuple is known to the package but not exported, since nothing
// in this repository verifies it against known-answer vectors.
//
// The core is a pure function of its inputs plus whatever io.Reader the
// caller supplies for randomness; it does no I/O, keeps no state between
// calls, and is safe to use concurrently from multiple goroutines without
// any locking.
//
// For more information, see https://pq-crystals.org/kyber/index.shtml.
package kyber
