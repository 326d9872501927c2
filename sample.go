// sample.go - Centered binomial sampling and rejection-sampling "Parse".
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "golang.org/x/crypto/sha3"

// cbd samples a polynomial from the centered binomial distribution with
// parameter eta, given 64*eta bytes drawn from PRF(seed, nonce).
//
// For each coefficient i in [0,256): read bits [2*eta*i, 2*eta*(i+1)) from
// buf, split into two halves of eta bits each, and set the coefficient to
// popcount(first half) - popcount(second half) mod q, per spec.md §4.G.
func cbd(buf []byte, eta int) poly {
	var p poly
	bs := byteString{data: buf}
	for i := 0; i < kyberN; i++ {
		var a, b int32
		base := 2 * eta * i
		for j := 0; j < eta; j++ {
			a += int32(bs.getBit(base + j))
		}
		for j := 0; j < eta; j++ {
			b += int32(bs.getBit(base + eta + j))
		}
		p.coeffs[i] = feFromInt(a - b)
	}
	return p
}

// getNoise samples CBD_eta(PRF(seed, nonce)), where PRF is SHAKE-256 keyed
// by seed || nonce, producing the 64*eta bytes cbd needs. This is the
// "PRF is SHAKE-256 keyed by sigma ∥ i" step of spec.md §4.H.
func getNoise(seed []byte, nonce byte, eta int) poly {
	extSeed := make([]byte, 0, SymSize+1)
	extSeed = append(extSeed, seed...)
	extSeed = append(extSeed, nonce)

	buf := make([]byte, 64*eta)
	sha3.ShakeSum256(buf, extSeed)

	p := cbd(buf, eta)
	zeroize(buf)
	zeroize(extSeed)
	return p
}

// parseRejection performs rejection sampling over a SHAKE-128 stream keyed
// by seed to produce one polynomial whose coefficients are uniform on
// [0,q). Bytes are read three at a time into two 12-bit candidates; each
// candidate strictly less than q is accepted, per spec.md §4.G.
func parseRejection(seed []byte) poly {
	var p poly

	xof := sha3.NewShake128()
	xof.Write(seed)

	const blockSize = 168 // SHAKE-128 rate, used to size the initial read.
	buf := make([]byte, blockSize)

	accepted := 0
	pos := 0
	readMore := func() {
		xof.Read(buf)
		pos = 0
	}
	readMore()

	for accepted < kyberN {
		if pos+3 > len(buf) {
			readMore()
			continue
		}
		b0, b1, b2 := buf[pos], buf[pos+1], buf[pos+2]
		pos += 3

		d1 := int(b0) | ((int(b1) & 0x0F) << 8)
		d2 := (int(b1) >> 4) | (int(b2) << 4)

		if d1 < kyberQ {
			p.coeffs[accepted] = fieldElement(d1)
			accepted++
		}
		if accepted < kyberN && d2 < kyberQ {
			p.coeffs[accepted] = fieldElement(d2)
			accepted++
		}
	}

	return p
}
