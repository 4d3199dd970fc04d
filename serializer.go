package asn1core

/*
serializer.go implements the streaming DER writer: a growable byte
buffer with primitive/constructed append operations, length
back-patching with no second pass, and the SET OF lexicographic sort
required for canonical output.
*/

import (
	"math/bits"
	"sort"
)

/*
Serializer is a growable byte buffer driven by a small set of append
primitives. It always produces DER-legal output: minimum-length
length fields and (when asked to emit a SET OF) sorted children.
There is no encoding-rule switch here — BER's extra freedoms are a
property of what the *caller* chooses to feed in (e.g. re-emitting a
[Node]'s raw bytes via [Serializer.AppendRaw] preserves whatever form
it was parsed in), not something this writer introduces on its own.
*/
type Serializer struct {
	buf []byte
}

// NewSerializer returns an empty [Serializer].
func NewSerializer() *Serializer { return &Serializer{} }

// Bytes returns the accumulated output. The caller takes ownership of
// the returned slice.
func (s *Serializer) Bytes() []byte { return s.buf }

// Len returns the number of bytes written so far.
func (s *Serializer) Len() int { return len(s.buf) }

/*
AppendPrimitive writes one primitive TLV: id, the minimum-byte-count
length of content, then content itself.
*/
func (s *Serializer) AppendPrimitive(id Identifier, content []byte) {
	id.Constructed = false
	s.buf = encodeIdentifier(s.buf, id)
	s.buf = encodeLength(s.buf, len(content))
	s.buf = append(s.buf, content...)
}

/*
AppendRaw copies b verbatim onto the end of the buffer with no
reinterpretation. This is how a previously parsed [Node] is re-emitted
byte-for-byte, supporting round-trips when decoding cannot or should
not normalize.
*/
func (s *Serializer) AppendRaw(b []byte) { s.buf = append(s.buf, b...) }

/*
AppendConstructed writes id, reserves one length byte, invokes write
(which may itself append primitive or constructed children, and may
recurse), then measures the emitted content and back-patches the
length header. When the content exceeds 127 bytes the content is
shifted right in place to make room for the long-form length bytes;
no second pass over the buffer is needed.
*/
func (s *Serializer) AppendConstructed(id Identifier, write func(*Serializer) error) error {
	id.Constructed = true
	s.buf = encodeIdentifier(s.buf, id)

	lenPos := len(s.buf)
	s.buf = append(s.buf, 0) // reserved length byte
	contentStart := len(s.buf)

	if err := write(s); err != nil {
		return err
	}

	contentLen := len(s.buf) - contentStart
	if contentLen < 128 {
		s.buf[lenPos] = byte(contentLen)
		return nil
	}

	k := (bits.Len(uint(contentLen)) + 7) / 8
	s.buf = append(s.buf, make([]byte, k)...)
	copy(s.buf[contentStart+k:], s.buf[contentStart:contentStart+contentLen])

	s.buf[lenPos] = byte(0x80 | k)
	for i := 0; i < k; i++ {
		s.buf[lenPos+1+i] = byte(contentLen >> (8 * (k - 1 - i)))
	}

	return nil
}

/*
AppendSetOf writes id as a constructed header wrapping elems, each of
which must already be a fully-encoded TLV (header and content). When
sorted is true the elements are reordered by [setOfLess] before
emission — the canonical DER SET OF order — without mutating elems
itself.
*/
func (s *Serializer) AppendSetOf(id Identifier, elems [][]byte, sorted bool) error {
	ordered := elems
	if sorted {
		ordered = make([][]byte, len(elems))
		copy(ordered, elems)
		sort.SliceStable(ordered, func(i, j int) bool {
			return setOfLess(ordered[i], ordered[j])
		})
	}
	return s.AppendConstructed(id, func(w *Serializer) error {
		for _, e := range ordered {
			w.AppendRaw(e)
		}
		return nil
	})
}

/*
setOfLess implements the canonical SET OF ordering: lexicographic
comparison of encoded bytes, treating the shorter operand as if
padded on the right with zero bytes to the longer operand's length.
*/
func setOfLess(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	if len(a) == len(b) {
		return false
	}
	// Shorter is "less" unless the longer's trailing bytes are all
	// zero, in which case they are equal (never less).
	if len(a) < len(b) {
		return !allZero(b[n:])
	}
	return false
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
