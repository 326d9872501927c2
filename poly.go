// poly.go - Kyber polynomials, R_q = Z_q[X]/(X^256+1).
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// poly is an element of R_q, represented as coeffs[0] + X*coeffs[1] + ... +
// X^255*coeffs[255]. Coefficients are always held canonical (see
// fieldElement).
type poly struct {
	coeffs [kyberN]fieldElement
}

// zeroPoly returns the additive identity of R_q.
func zeroPoly() poly {
	return poly{}
}

// clone returns a value copy of p (poly already has value semantics in Go,
// this exists so call sites can be explicit about wanting an independent
// copy, mirroring the distilled source's Poly3329::clone).
func (p poly) clone() poly {
	return p
}

// isZero reports whether every coefficient of p is zero.
func (p *poly) isZero() bool {
	for _, c := range p.coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

// degree returns the largest i with a non-zero coefficient, or -1 for the
// zero polynomial (spec.md's "none").
func (p *poly) degree() int {
	for i := kyberN - 1; i >= 0; i-- {
		if p.coeffs[i] != 0 {
			return i
		}
	}
	return -1
}

// add sets p to a+b.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i].add(b.coeffs[i])
	}
}

// sub sets p to a-b.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i].sub(b.coeffs[i])
	}
}

// neg sets p to -a.
func (p *poly) neg(a *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i].neg()
	}
}

// scalarMul sets p to a scaled by the field element s.
func (p *poly) scalarMul(a *poly, s fieldElement) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i].mul(s)
	}
}

// compress sets p to Compress_q(a, d), coefficient-wise.
func (p *poly) compress(a *poly, d int) {
	for i := range p.coeffs {
		p.coeffs[i] = feFromInt(int32(compressInt(a.coeffs[i].toInt(), d)))
	}
}

// decompress sets p to Decompress_q(a, d), coefficient-wise.
func (p *poly) decompress(a *poly, d int) {
	for i := range p.coeffs {
		p.coeffs[i] = feFromInt(int32(decompressInt(a.coeffs[i].toInt(), d)))
	}
}

// encode serializes p to a 32*ell byte string, LSB-first bit packing, per
// spec.md §4.E ("Encode / decode"). ell must be in [1,12].
func (p *poly) encode(ell int) []byte {
	out := make([]byte, 32*ell)
	for i := 0; i < kyberN; i++ {
		v := p.coeffs[i].toInt()
		for j := 0; j < ell; j++ {
			if (v>>uint(j))&1 == 1 {
				bit := i*ell + j
				out[bit/8] |= 1 << uint(bit%8)
			}
		}
	}
	return out
}

// decodePoly deserializes a 32*ell byte string into a polynomial; the
// inverse of (*poly).encode. Coefficient i absorbs bits
// [i*ell, i*ell+ell).
func decodePoly(bs []byte, ell int) poly {
	var p poly
	for i := 0; i < kyberN; i++ {
		var v int32
		for j := 0; j < ell; j++ {
			bit := i*ell + j
			if (bs[bit/8]>>uint(bit%8))&1 == 1 {
				v |= 1 << uint(j)
			}
		}
		p.coeffs[i] = feFromInt(v)
	}
	return p
}

// compressInt computes Compress_q(x,d) = round(2^d * x / q) mod 2^d using
// integer-only rounding, per spec.md's Design Notes ("Compression
// arithmetic"): floating point is a portability hazard and a constant-time
// concern, so this uses ((x<<d)+q/2)/q instead.
func compressInt(x, d int) int {
	m := 1 << uint(d)
	return (((x << uint(d)) + kyberQ/2) / kyberQ) % m
}

// decompressInt computes Decompress_q(y,d) = round(q*y / 2^d).
func decompressInt(y, d int) int {
	return (y*kyberQ + (1 << uint(d-1))) >> uint(d)
}
