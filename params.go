// params.go - Kyber parameterization.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// SymSize is the size of the shared key (and certain internal
	// parameters such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329

	// polySize is the size, in bytes, of a polynomial serialized with
	// the full 12-bit coefficient width (encode_vec uses this for pk/sk).
	polySize = 384
)

// ParameterSet is a frozen Kyber parameter tuple (n, k, q, η, du, dv, δ,
// plus the derived byte sizes of keys and ciphertexts).
type ParameterSet struct {
	name string

	k   int
	eta int
	du  int
	dv  int

	// delta is the exponent of the decryption failure probability bound,
	// 2^-delta.
	delta int

	indcpaMsgSize       int
	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaCipherTextSize int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

var (
	// Kyber512 is the Kyber-512 parameter set (k=2), the smallest of the
	// two parameter sets in scope for this implementation.
	Kyber512 = newParameterSet("Kyber-512", 2, 2, 10, 3, 178)

	// Kyber768 is the Kyber-768 parameter set (k=3).
	Kyber768 = newParameterSet("Kyber-768", 3, 2, 10, 4, 164)

	// kyber1024 is the reserved k=4 parameter set from spec.md §9. It is
	// known to the package (so the shape of a third parameter set exists)
	// but is deliberately unexported: nothing in this repository verifies
	// it against known-answer test vectors, and spec.md §1 keeps it out of
	// scope.
	kyber1024 = newParameterSet("Kyber-1024", 4, 2, 11, 5, 174) //nolint:unused
)

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string { return p.name }

// K returns the module rank (the "k" in Module-LWE) of a ParameterSet.
func (p *ParameterSet) K() int { return p.k }

// Eta returns the centered-binomial-distribution parameter η.
func (p *ParameterSet) Eta() int { return p.eta }

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int { return p.publicKeySize }

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int { return p.secretKeySize }

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int { return p.cipherTextSize }

func newParameterSet(name string, k, eta, du, dv, delta int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta = eta
	p.du = du
	p.dv = dv
	p.delta = delta

	p.indcpaMsgSize = SymSize
	p.indcpaPublicKeySize = k*polySize + SymSize
	p.indcpaSecretKeySize = k * polySize
	p.indcpaCipherTextSize = compressedVecSize(k, du) + compressedPolySize(dv)

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize
	p.cipherTextSize = p.indcpaCipherTextSize

	return &p
}

// compressedPolySize returns ⌈(256·d)/8⌉, the packed size of one
// d-bit-compressed polynomial.
func compressedPolySize(d int) int {
	return (kyberN*d + 7) / 8
}

// compressedVecSize returns the packed size of a k-vector of d-bit
// compressed polynomials.
func compressedVecSize(k, d int) int {
	return k * compressedPolySize(d)
}
