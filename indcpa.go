// indcpa.go - Kyber.CPAPKE, the IND-CPA public-key encryption scheme that
// Kyber.CCAKEM wraps with a Fujisaki-Okamoto transform.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "golang.org/x/crypto/sha3"

// genMatrix expands a 32-byte seed rho into a k-by-k matrix over R_q using
// the rejection-sampling Parse routine. Kyber's convention places the
// column-index byte before the row-index byte in the seed, per spec.md
// §4.H step 2; transposed is the Âᵀ variant Encrypt needs for its u term.
func genMatrix(rho []byte, k int, transposed bool) polyMatrix {
	m := newPolyMatrix(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			seed := make([]byte, 0, SymSize+2)
			seed = append(seed, rho...)
			if transposed {
				seed = append(seed, byte(i), byte(j))
			} else {
				seed = append(seed, byte(j), byte(i))
			}
			m.rows[i].vec[j] = parseRejection(seed)
		}
	}
	return m
}

// indcpaKeyGen implements Kyber.CPAPKE.KeyGen: d is the 32-byte seed from
// which rho (matrix seed) and sigma (noise seed) are derived.
func indcpaKeyGen(params *ParameterSet, d []byte) (pk, sk []byte) {
	k := params.K()
	eta := params.Eta()

	h := sha3.Sum512(d)
	rho, sigma := h[:SymSize], h[SymSize:]

	a := genMatrix(rho, k, false)

	s := newPolyVec(k)
	e := newPolyVec(k)
	for i := 0; i < k; i++ {
		s.vec[i] = getNoise(sigma, byte(i), eta)
	}
	for i := 0; i < k; i++ {
		e.vec[i] = getNoise(sigma, byte(k+i), eta)
	}

	sHat := s.clone()
	sHat.ntt()
	eHat := e.clone()
	eHat.ntt()

	tHat := a.mulVecNTT(&sHat)
	tHat.add(&tHat, &eHat)

	pk = concatBytes(tHat.encodeVec(12), rho)
	sk = sHat.encodeVec(12)

	zeroize(sigma)
	return pk, sk
}

// indcpaUnpackPublicKey splits an encoded public key into (t-hat, rho).
func indcpaUnpackPublicKey(params *ParameterSet, pk []byte) (tHat polyVec, rho []byte) {
	k := params.K()
	vecLen := k * polySize
	tHat = decodeVec(pk[:vecLen], k, 12)
	rho = pk[vecLen : vecLen+SymSize]
	return tHat, rho
}

// indcpaEncrypt implements Kyber.CPAPKE.Encrypt.
func indcpaEncrypt(params *ParameterSet, pk, m, r []byte) []byte {
	k := params.K()
	eta := params.Eta()
	du, dv := params.du, params.dv

	tHat, rho := indcpaUnpackPublicKey(params, pk)
	aT := genMatrix(rho, k, true)

	rVec := newPolyVec(k)
	for i := 0; i < k; i++ {
		rVec.vec[i] = getNoise(r, byte(i), eta)
	}
	e1 := newPolyVec(k)
	for i := 0; i < k; i++ {
		e1.vec[i] = getNoise(r, byte(k+i), eta)
	}
	e2 := getNoise(r, byte(2*k), eta)

	rHat := rVec.clone()
	rHat.ntt()

	u := aT.mulVecNTT(&rHat)
	u.invntt()
	u.add(&u, &e1)

	vHat := dotNTT(&tHat, &rHat)
	v := vHat
	v.invntt()
	v.add(&v, &e2)

	msgPoly := decodePoly(m, 1)
	var msgScaled poly
	msgScaled.decompress(&msgPoly, 1)
	v.add(&v, &msgScaled)

	uCompressed := newPolyVec(k)
	uCompressed.compress(&u, du)
	c1 := uCompressed.encodeVec(du)

	var vCompressed poly
	vCompressed.compress(&v, dv)
	c2 := vCompressed.encode(dv)

	return concatBytes(c1, c2)
}

// indcpaDecrypt implements Kyber.CPAPKE.Decrypt.
func indcpaDecrypt(params *ParameterSet, sk, c []byte) []byte {
	k := params.K()
	du, dv := params.du, params.dv

	c1Len := compressedVecSize(k, du)
	c1, c2 := c[:c1Len], c[c1Len:]

	uCompressed := decodeVec(c1, k, du)
	u := newPolyVec(k)
	u.decompress(&uCompressed, du)

	vCompressed := decodePoly(c2, dv)
	var v poly
	v.decompress(&vCompressed, dv)

	sHat := decodeVec(sk, k, 12)

	uHat := u.clone()
	uHat.ntt()

	t := dotNTT(&sHat, &uHat)
	t.invntt()

	var diff poly
	diff.sub(&v, &t)

	var compressedMsg poly
	compressedMsg.compress(&diff, 1)
	return compressedMsg.encode(1)
}
