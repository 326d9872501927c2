// bytestring.go - Immutable byte buffer with bit-level access.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"io"

	"golang.org/x/exp/slices"
)

// byteString is an ordered, value-semantics sequence of bytes with
// LSB-first bit indexing: bit i is bit (i mod 8) of byte floor(i/8).
type byteString struct {
	data []byte
}

// newByteString wraps b, cloning it so the caller's slice and the
// byteString never alias.
func newByteString(b []byte) byteString {
	return byteString{data: slices.Clone(b)}
}

// randomByteString draws n bytes from rng, the caller-supplied entropy
// source (see doc.go: "whatever io.Reader the caller supplies for
// randomness").
func randomByteString(rng io.Reader, n int) (byteString, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return byteString{}, err
	}
	return byteString{data: buf}, nil
}

// len returns the number of bytes.
func (bs byteString) len() int { return len(bs.data) }

// bytes returns a defensive copy of the underlying bytes.
func (bs byteString) bytes() []byte { return slices.Clone(bs.data) }

// append returns bs with other's bytes appended.
func (bs byteString) append(other byteString) byteString {
	return byteString{data: slices.Concat(bs.data, other.data)}
}

// concatByteStrings concatenates a list of byte strings in order.
func concatByteStrings(items ...byteString) byteString {
	parts := make([][]byte, len(items))
	for i, it := range items {
		parts[i] = it.data
	}
	return byteString{data: concatBytes(parts...)}
}

func concatBytes(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// getBit returns bit i of bs, LSB-first within each byte: (s[i/8] >> (i%8)) & 1.
func (bs byteString) getBit(i int) int {
	return int((bs.data[i/8] >> uint(i%8)) & 1)
}

// splitAt splits bs into a prefix of length n and the remaining suffix.
func (bs byteString) splitAt(n int) (prefix, suffix byteString) {
	return byteString{data: bs.data[:n]}, byteString{data: bs.data[n:]}
}
