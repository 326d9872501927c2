// polyvec.go - k-dimensional vectors and k*k matrices over R_q.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// polyVec is a k-length sequence of polynomials sharing the same n=256.
type polyVec struct {
	vec []poly
}

func newPolyVec(k int) polyVec {
	return polyVec{vec: make([]poly, k)}
}

func (v *polyVec) k() int { return len(v.vec) }

func (v *polyVec) get(i int) poly    { return v.vec[i] }
func (v *polyVec) set(i int, p poly) { v.vec[i] = p }

func (v *polyVec) clone() polyVec {
	out := newPolyVec(v.k())
	copy(out.vec, v.vec)
	return out
}

// add sets v to a+b, componentwise.
func (v *polyVec) add(a, b *polyVec) {
	for i := range v.vec {
		v.vec[i].add(&a.vec[i], &b.vec[i])
	}
}

// sub sets v to a-b, componentwise.
func (v *polyVec) sub(a, b *polyVec) {
	for i := range v.vec {
		v.vec[i].sub(&a.vec[i], &b.vec[i])
	}
}

// scalarMul sets v to a scaled by every component multiplied pointwise by s.
func (v *polyVec) scalarMul(a *polyVec, s fieldElement) {
	for i := range v.vec {
		v.vec[i].scalarMul(&a.vec[i], s)
	}
}

// ntt applies the forward NTT to every component of v, in place.
func (v *polyVec) ntt() {
	for i := range v.vec {
		v.vec[i].ntt()
	}
}

// invntt applies the inverse NTT to every component of v, in place.
func (v *polyVec) invntt() {
	for i := range v.vec {
		v.vec[i].invntt()
	}
}

// dotSchoolbook returns the dot product sum_i a[i]*b[i] of two vectors in
// the normal (non-NTT) domain, with the result also in the normal domain,
// see spec.md §4.D ("the caller choosing schoolbook or NTT-domain"). Each
// ring product a[i]*b[i] is computed internally as
// INTT(BCM(NTT(a[i]), NTT(b[i]))); a and b are left untouched.
func dotSchoolbook(a, b *polyVec) poly {
	p := zeroPoly()
	for i := range a.vec {
		ai, bi := a.vec[i], b.vec[i]
		ai.ntt()
		bi.ntt()
		prod := bcm(&ai, &bi)
		prod.invntt()
		p.add(&p, &prod)
	}
	return p
}

// dotNTT sets p to the dot product of two vectors that are already in the
// NTT domain, returning a polynomial also in the NTT domain (component F's
// "vector-vector dot in NTT domain yields a polynomial in NTT domain").
func dotNTT(a, b *polyVec) poly {
	p := zeroPoly()
	for i := range a.vec {
		prod := bcm(&a.vec[i], &b.vec[i])
		p.add(&p, &prod)
	}
	return p
}

// compress sets v to Compress_q(a, d), componentwise.
func (v *polyVec) compress(a *polyVec, d int) {
	for i := range v.vec {
		v.vec[i].compress(&a.vec[i], d)
	}
}

// decompress sets v to Decompress_q(a, d), componentwise.
func (v *polyVec) decompress(a *polyVec, d int) {
	for i := range v.vec {
		v.vec[i].decompress(&a.vec[i], d)
	}
}

// encodeVec concatenates the per-polynomial ell-bit encodings of v, in
// index order.
func (v *polyVec) encodeVec(ell int) []byte {
	out := make([]byte, 0, v.k()*32*ell)
	for i := range v.vec {
		out = append(out, v.vec[i].encode(ell)...)
	}
	return out
}

// decodeVec splits bs into k chunks of 32*ell bytes each and decodes each
// into a polynomial; the inverse of (*polyVec).encodeVec.
func decodeVec(bs []byte, k, ell int) polyVec {
	v := newPolyVec(k)
	chunk := 32 * ell
	for i := 0; i < k; i++ {
		v.vec[i] = decodePoly(bs[i*chunk:(i+1)*chunk], ell)
	}
	return v
}

// polyMatrix is a k-by-k matrix of polynomials.
type polyMatrix struct {
	rows []polyVec
}

func newPolyMatrix(k int) polyMatrix {
	m := polyMatrix{rows: make([]polyVec, k)}
	for i := range m.rows {
		m.rows[i] = newPolyVec(k)
	}
	return m
}

// dimensions returns (rows, columns); Kyber's matrix A is always square.
func (m *polyMatrix) dimensions() (int, int) { return len(m.rows), len(m.rows) }

// row returns a copy of row i.
func (m *polyMatrix) row(i int) polyVec { return m.rows[i].clone() }

// column returns a copy of column j, assembled from every row.
func (m *polyMatrix) column(j int) polyVec {
	k, _ := m.dimensions()
	c := newPolyVec(k)
	for i := 0; i < k; i++ {
		c.vec[i] = m.rows[i].vec[j]
	}
	return c
}

// transpose returns a new matrix equal to m^T.
func (m *polyMatrix) transpose() polyMatrix {
	k, _ := m.dimensions()
	t := newPolyMatrix(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			t.rows[i].vec[j] = m.rows[j].vec[i]
		}
	}
	return t
}

// mulVecNTT computes A ∘ b, the matrix-vector product in the NTT domain
// (component F's "matrix-vector product ditto"): row i of the result is
// the NTT-domain dot product of A's i-th row with b.
func (m *polyMatrix) mulVecNTT(b *polyVec) polyVec {
	k, _ := m.dimensions()
	out := newPolyVec(k)
	for i := 0; i < k; i++ {
		row := m.rows[i]
		out.vec[i] = dotNTT(&row, b)
	}
	return out
}
