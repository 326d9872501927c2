// kem.go - Kyber.CCAKEM, the IND-CCA2 key encapsulation mechanism obtained
// by applying a Fujisaki-Okamoto-style transform to Kyber.CPAPKE.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/subtle"
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidKeySize is returned when a key does not decode to the
	// byte length a ParameterSet expects.
	ErrInvalidKeySize = errors.New("kyber: invalid key size")

	// ErrInvalidCipherTextSize is returned when a ciphertext does not
	// decode to the byte length a ParameterSet expects.
	ErrInvalidCipherTextSize = errors.New("kyber: invalid ciphertext size")
)

// PublicKey is a Kyber public encapsulation key.
type PublicKey struct {
	params *ParameterSet
	pk     []byte
}

// PrivateKey is a Kyber private decapsulation key.
type PrivateKey struct {
	params *ParameterSet
	sk     []byte

	pub PublicKey
}

// Bytes returns the wire encoding of a public key: encode_vec(t-hat,12) ∥ rho.
func (k *PublicKey) Bytes() []byte { return append([]byte(nil), k.pk...) }

// FromBytes parses a wire-encoded public key for the given ParameterSet.
func (k *PublicKey) FromBytes(params *ParameterSet, b []byte) error {
	if len(b) != params.PublicKeySize() {
		return ErrInvalidKeySize
	}
	k.params = params
	k.pk = append([]byte(nil), b...)
	return nil
}

// Bytes returns the wire encoding of a private key: sk_cpa ∥ pk ∥ H(pk) ∥ z.
func (k *PrivateKey) Bytes() []byte { return append([]byte(nil), k.sk...) }

// FromBytes parses a wire-encoded private key for the given ParameterSet.
func (k *PrivateKey) FromBytes(params *ParameterSet, b []byte) error {
	if len(b) != params.PrivateKeySize() {
		return ErrInvalidKeySize
	}
	k.params = params
	k.sk = append([]byte(nil), b...)

	pkOff := params.indcpaSecretKeySize
	pkEnd := pkOff + params.indcpaPublicKeySize
	k.pub.params = params
	k.pub.pk = append([]byte(nil), b[pkOff:pkEnd]...)
	return nil
}

// Public returns the public key embedded in a private key.
func (k *PrivateKey) Public() *PublicKey { return &k.pub }

// GenerateKeyPair generates a fresh Kyber key pair for the given
// ParameterSet, per spec.md §4.I KeyGen: z is random, (pk, sk_cpa) comes
// from CPAPKE.KeyGen on a fresh 32-byte seed, and sk is the concatenation
// sk_cpa ∥ pk ∥ SHA3-256(pk) ∥ z. rng is the caller-supplied source of
// randomness (crypto/rand.Reader in production, a fixed-seed stream for
// reproducible tests), matching the teacher's GenerateKeyPair(rng io.Reader)
// shape.
func GenerateKeyPair(params *ParameterSet, rng io.Reader) (*PrivateKey, *PublicKey, error) {
	zBS, err := randomByteString(rng, SymSize)
	if err != nil {
		return nil, nil, err
	}
	z := zBS.bytes()

	dBS, err := randomByteString(rng, SymSize)
	if err != nil {
		zeroize(z)
		return nil, nil, err
	}
	d := dBS.bytes()

	pk, skCPA := indcpaKeyGen(params, d)
	zeroize(d)

	h := sha3.Sum256(pk)

	sk := concatBytes(skCPA, pk, h[:], z)
	zeroize(skCPA)
	zeroize(z)

	priv := &PrivateKey{params: params, sk: sk}
	priv.pub.params = params
	priv.pub.pk = append([]byte(nil), pk...)

	pub := &PublicKey{params: params, pk: append([]byte(nil), pk...)}

	return priv, pub, nil
}

// Encapsulate implements Kyber.CCAKEM.Encapsulate: it draws a fresh random
// message, derives (K-bar, r) from it and the public key, encrypts under
// CPAPKE, and derives the shared secret K from K-bar and a hash of the
// ciphertext. rng is the caller-supplied source of randomness, matching
// the teacher's KEMEncrypt(rng io.Reader) shape.
func Encapsulate(pub *PublicKey, rng io.Reader) (c, k []byte, err error) {
	mBS, err := randomByteString(rng, SymSize)
	if err != nil {
		return nil, nil, err
	}
	m := mBS.bytes()

	mPrime := sha3.Sum256(m)
	zeroize(m)

	hPK := sha3.Sum256(pub.pk)
	g := sha3.Sum512(concatBytes(mPrime[:], hPK[:]))
	kBar, r := g[:SymSize], g[SymSize:]

	c = indcpaEncrypt(pub.params, pub.pk, mPrime[:], r)

	hC := sha3.Sum256(c)
	k = make([]byte, SymSize)
	sha3.ShakeSum256(k, concatBytes(kBar, hC[:]))

	zeroize(mPrime[:])
	zeroize(kBar)
	zeroize(r)
	return c, k, nil
}

// Decapsulate implements Kyber.CCAKEM.Decapsulate. It re-derives the
// message candidate from c, re-encrypts it, and compares the result
// against c in constant time: on a match it returns the real shared
// secret, on a mismatch it returns a key derived from the private
// implicit-rejection value z instead, with the branch itself taking the
// same time and touching the same code paths either way (spec.md §4.I
// step 5, §7 "a ciphertext that does not match re-encryption is NOT an
// error").
func Decapsulate(priv *PrivateKey, c []byte) ([]byte, error) {
	params := priv.params
	if len(c) != params.CipherTextSize() {
		return nil, ErrInvalidCipherTextSize
	}

	skOff := 0
	skCPA := priv.sk[skOff:params.indcpaSecretKeySize]
	pkOff := params.indcpaSecretKeySize
	pkEnd := pkOff + params.indcpaPublicKeySize
	pk := priv.sk[pkOff:pkEnd]
	h := priv.sk[pkEnd : pkEnd+SymSize]
	z := priv.sk[pkEnd+SymSize : pkEnd+2*SymSize]

	mPrime := indcpaDecrypt(params, skCPA, c)

	g := sha3.Sum512(concatBytes(mPrime, h))
	kBar, r := g[:SymSize], g[SymSize:]

	cPrime := indcpaEncrypt(params, pk, mPrime, r)

	hC := sha3.Sum256(c)

	kGood := make([]byte, SymSize)
	sha3.ShakeSum256(kGood, concatBytes(kBar, hC[:]))

	kBad := make([]byte, SymSize)
	sha3.ShakeSum256(kBad, concatBytes(z, hC[:]))

	match := subtle.ConstantTimeCompare(c, cPrime)

	out := make([]byte, SymSize)
	subtle.ConstantTimeCopy(match, out, kGood)
	subtle.ConstantTimeCopy(1-match, out, kBad)

	zeroize(mPrime)
	zeroize(kBar)
	zeroize(r)
	zeroize(kGood)
	zeroize(kBad)

	return out, nil
}
