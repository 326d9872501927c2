// field.go - Arithmetic in F_q, q=3329.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "errors"

// errDivByZero is returned by fieldElement.inv and fieldElement.div when
// asked to invert the additive identity. Per spec.md §7 this must not occur
// on valid Kyber data; it exists purely so the field type is total.
var errDivByZero = errors.New("kyber: division by zero in F_q")

// fieldElement is an element of F_q, always held in canonical form
// (0 <= v < kyberQ). Kyber only ever instantiates this over q=3329, so
// unlike the distilled source's FiniteField trait hierarchy, this is a
// concrete monomorphic type rather than a generic one: per spec.md §9
// "Kyber uses exactly one concrete field", and the NTT/sampling code is
// where the interesting engineering lives, not the algebraic scaffolding.
type fieldElement uint16

// feFromInt reduces x mod q into a fieldElement.
func feFromInt(x int32) fieldElement {
	r := x % kyberQ
	if r < 0 {
		r += kyberQ
	}
	return fieldElement(r)
}

// feZero and feOne are the additive and multiplicative identities.
func feZero() fieldElement { return 0 }
func feOne() fieldElement  { return 1 }

// toInt returns the canonical representative of a, in [0, q).
func (a fieldElement) toInt() int { return int(a) }

func (a fieldElement) add(b fieldElement) fieldElement {
	s := uint32(a) + uint32(b)
	if s >= kyberQ {
		s -= kyberQ
	}
	return fieldElement(s)
}

func (a fieldElement) sub(b fieldElement) fieldElement {
	s := uint32(a) + kyberQ - uint32(b)
	if s >= kyberQ {
		s -= kyberQ
	}
	return fieldElement(s)
}

func (a fieldElement) neg() fieldElement {
	if a == 0 {
		return 0
	}
	return kyberQ - a
}

func (a fieldElement) mul(b fieldElement) fieldElement {
	return fieldElement((uint32(a) * uint32(b)) % kyberQ)
}

// inv returns the Fermat inverse of a (a^(q-2) mod q), or errDivByZero if
// a is the additive identity.
func (a fieldElement) inv() (fieldElement, error) {
	if a == 0 {
		return 0, errDivByZero
	}
	return a.pow(kyberQ - 2), nil
}

func (a fieldElement) pow(e uint32) fieldElement {
	result := feOne()
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = result.mul(base)
		}
		base = base.mul(base)
		e >>= 1
	}
	return result
}

// div returns a/b = a*b^-1, or errDivByZero if b is the additive identity.
func (a fieldElement) div(b fieldElement) (fieldElement, error) {
	bInv, err := b.inv()
	if err != nil {
		return 0, err
	}
	return a.mul(bInv), nil
}

func (a fieldElement) equal(b fieldElement) bool { return a == b }
