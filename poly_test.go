// poly_test.go - Polynomial arithmetic and encode/decode tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyEncodeDecodeRoundTrip(t *testing.T) {
	req := require.New(t)

	for ell := 1; ell <= 12; ell++ {
		var p poly
		mask := int32((1 << uint(ell)) - 1)
		for i := 0; i < kyberN; i++ {
			p.coeffs[i] = feFromInt(int32(i*7+3) & mask)
		}

		enc := p.encode(ell)
		req.Len(enc, 32*ell)

		dec := decodePoly(enc, ell)
		req.Equal(p, dec, "decode(encode(p,%d),%d) == p", ell, ell)
	}
}

// TestPolyEncode12Sequential is scenario 3 from spec.md §8: encoding
// [0,1,...,255] with ell=12 must decode back unchanged.
func TestPolyEncode12Sequential(t *testing.T) {
	req := require.New(t)

	var p poly
	for i := 0; i < kyberN; i++ {
		p.coeffs[i] = feFromInt(int32(i))
	}

	enc := p.encode(12)
	req.Len(enc, 384)

	dec := decodePoly(enc, 12)
	req.Equal(p, dec)
}

func TestPolyAddSubNeg(t *testing.T) {
	req := require.New(t)

	var a, b poly
	for i := 0; i < kyberN; i++ {
		a.coeffs[i] = feFromInt(int32(i))
		b.coeffs[i] = feFromInt(int32(2 * i))
	}

	var sum, diff, negA, check poly
	sum.add(&a, &b)
	diff.sub(&sum, &b)
	req.Equal(a, diff, "(a+b)-b == a")

	negA.neg(&a)
	check.add(&a, &negA)
	req.True(check.isZero(), "a + (-a) == 0")
}

func TestPolyDegree(t *testing.T) {
	req := require.New(t)

	z := zeroPoly()
	req.Equal(-1, z.degree())

	var p poly
	p.coeffs[0] = feOne()
	req.Equal(0, p.degree())

	p.coeffs[200] = feFromInt(5)
	req.Equal(200, p.degree())
}

func TestPolyCompressDecompressBound(t *testing.T) {
	req := require.New(t)

	for d := 1; d <= 11; d++ {
		for x := 0; x < kyberQ; x += 29 {
			y := compressInt(x, d)
			back := decompressInt(y, d)

			diff := back - x
			if diff < 0 {
				diff = -diff
			}
			// Distance on the circle Z/qZ, not the integer line.
			if diff > kyberQ/2 {
				diff = kyberQ - diff
			}

			bound := (kyberQ >> uint(d+1)) + 1
			req.LessOrEqual(diff, bound, "|decompress(compress(x,%d))-x| within bound", d)
		}
	}
}
