package asn1core

/*
sequence.go implements the structural combinators: SEQUENCE, SEQUENCE
OF, SET, SET OF, explicit and implicit tagging, and the
OPTIONAL/DEFAULT lookahead helpers that let a SEQUENCE builder skip
absent fields without backtracking. None of this is reflection-driven
— each combinator is a plain function a caller composes by hand,
rather than a schema compiler driven off struct tags.
*/

var (
	sequenceIdentifier = Universal(TagSequence)
	setIdentifier      = Universal(TagSet)
)

/*
DecodeSequence validates n as a constructed SEQUENCE and invokes build
with a [ChildIterator] over its direct children. It fails if build
returns an error, or if build leaves children unconsumed.
*/
func DecodeSequence(n Node, build func(*ChildIterator) error) error {
	if err := expectIdentifier(n, sequenceIdentifier); err != nil {
		return err
	}
	it := n.Children()
	if err := build(it); err != nil {
		return err
	}
	if it.More() {
		return errInvalidObject("SEQUENCE has unconsumed trailing children")
	}
	return nil
}

// EncodeSequence appends a constructed SEQUENCE TLV, invoking write to
// populate its content.
func EncodeSequence(s *Serializer, write func(*Serializer) error) error {
	return s.AppendConstructed(sequenceIdentifier, write)
}

/*
DecodeSet validates n as a constructed SET and invokes build with a
[ChildIterator] over its direct children, exactly like [DecodeSequence].
SET's distinguishing rule — that its members have no fixed positional
order — means build is typically written as a loop over tag-dispatch
rather than a fixed field sequence; this function does not enforce
that, it only supplies the iterator.
*/
func DecodeSet(n Node, build func(*ChildIterator) error) error {
	if err := expectIdentifier(n, setIdentifier); err != nil {
		return err
	}
	it := n.Children()
	if err := build(it); err != nil {
		return err
	}
	if it.More() {
		return errInvalidObject("SET has unconsumed trailing children")
	}
	return nil
}

// EncodeSet appends a constructed SET TLV, invoking write to populate
// its content.
func EncodeSet(s *Serializer, write func(*Serializer) error) error {
	return s.AppendConstructed(setIdentifier, write)
}

/*
DecodeSequenceOf validates n as a constructed SEQUENCE and calls
decodeElem once per direct child, in encounter order.
*/
func DecodeSequenceOf(n Node, decodeElem func(Node) error) error {
	return DecodeSequence(n, func(it *ChildIterator) error {
		for it.More() {
			child, _ := it.Next()
			if err := decodeElem(child); err != nil {
				return err
			}
		}
		return nil
	})
}

// EncodeSequenceOf appends a constructed SEQUENCE TLV containing count
// elements, calling encodeElem(s, i) for i in [0, count) in order.
func EncodeSequenceOf(s *Serializer, count int, encodeElem func(*Serializer, int) error) error {
	return EncodeSequence(s, func(w *Serializer) error {
		for i := 0; i < count; i++ {
			if err := encodeElem(w, i); err != nil {
				return err
			}
		}
		return nil
	})
}

/*
DecodeSetOf validates n as a constructed SET, and calls decodeElem once
per direct child in wire order. Under DER it additionally verifies
that the children already appear in canonical [setOfLess] order,
failing with [InvalidObject] if not; under BER any order is tolerated.
*/
func DecodeSetOf(n Node, rule EncodingRule, decodeElem func(Node) error) error {
	return DecodeSet(n, func(it *ChildIterator) error {
		var prev []byte
		for it.More() {
			child, _ := it.Next()
			if rule.strict() && prev != nil {
				cur := child.Bytes()
				if setOfLess(cur, prev) {
					return errInvalidObject("SET OF children are not in canonical order")
				}
				prev = cur
			} else if rule.strict() {
				prev = child.Bytes()
			}
			if err := decodeElem(child); err != nil {
				return err
			}
		}
		return nil
	})
}

/*
EncodeSetOf appends a constructed SET TLV containing elems, each of
which must already be a complete encoded TLV. Elements are reordered
into canonical [setOfLess] order before emission.
*/
func EncodeSetOf(s *Serializer, elems [][]byte) error {
	return s.AppendSetOf(setIdentifier, elems, true)
}

/*
DecodeExplicit validates that n is a constructed wrapper carrying
exactly one child under the explicit tag, and returns that child with
its natural identifier intact for further decoding.
*/
func DecodeExplicit(n Node, tagged Identifier) (Node, error) {
	tagged.Constructed = true
	if err := expectIdentifier(n, tagged); err != nil {
		return Node{}, err
	}
	it := n.Children()
	child, ok := it.Next()
	if !ok {
		return Node{}, errInvalidObject("explicit tag wrapper has no inner value")
	}
	if it.More() {
		return Node{}, errInvalidObject("explicit tag wrapper has more than one inner value")
	}
	return child, nil
}

/*
EncodeExplicit appends a constructed wrapper under tagged, invoking
write to emit exactly one inner TLV (the natural encoding of the
tagged type).
*/
func EncodeExplicit(s *Serializer, tagged Identifier, write func(*Serializer) error) error {
	tagged.Constructed = true
	return s.AppendConstructed(tagged, write)
}

/*
DecodeImplicit validates that n's identifier matches tagged (class and
tag number; the constructed flag must match natural's, since implicit
tagging changes only the tag, never the underlying content's form),
then returns a [Node] reinterpreted under natural's identifier so that
the ordinary decoder for that universal type can run against it
unmodified.
*/
func DecodeImplicit(n Node, tagged, natural Identifier) (Node, error) {
	want := tagged
	want.Constructed = natural.Constructed
	if err := expectIdentifier(n, want); err != nil {
		return Node{}, err
	}
	return reinterpret(n, natural), nil
}

// reinterpret returns a Node identical to n except that its
// Identifier is replaced with as. Body bytes, depth, and child
// structure are unchanged.
func reinterpret(n Node, as Identifier) Node {
	nodes := make([]ParserNode, len(n.nodes))
	copy(nodes, n.nodes)
	rec := nodes[n.index]
	rec.Identifier = as
	nodes[n.index] = rec
	return Node{nodes: nodes, index: n.index}
}

/*
EncodeImplicit appends a TLV under id, with constructed set to
naturalConstructed (the tagged type's own form), invoking emit to
produce its content. For a primitive natural type, emit writes content
bytes into the [Serializer] it is given, which is a scratch buffer,
not s itself.
*/
func EncodeImplicit(s *Serializer, id Identifier, naturalConstructed bool, emit func(*Serializer) error) error {
	id.Constructed = naturalConstructed
	if naturalConstructed {
		return s.AppendConstructed(id, emit)
	}
	scratch := NewSerializer()
	if err := emit(scratch); err != nil {
		return err
	}
	s.AppendPrimitive(id, scratch.Bytes())
	return nil
}

/*
DecodeOptional peeks at it's next child without consuming it unless
that child's identifier matches want. If it matches, the iterator is
advanced past it, decode is invoked, and present is true. Otherwise it
is left untouched and present is false with a nil error, letting the
caller proceed to the next field in a SEQUENCE.
*/
func DecodeOptional(it *ChildIterator, want Identifier, decode func(Node) error) (present bool, err error) {
	peek := it.clone()
	child, ok := peek.Next()
	if !ok || !child.Identifier().Eq(want) {
		return false, nil
	}
	if err := decode(child); err != nil {
		return false, err
	}
	*it = *peek
	return true, nil
}

/*
DecodeDefault has the same lookahead behavior as [DecodeOptional]. Its
only distinction from OPTIONAL is semantic: when present is false, the
caller substitutes a type-specific default value rather than treating
the field as absent.
*/
func DecodeDefault(it *ChildIterator, want Identifier, decode func(Node) error) (present bool, err error) {
	return DecodeOptional(it, want, decode)
}

/*
CheckNotDefaultEncoded fails with [InvalidObject] under DER if a
DEFAULT field was present on the wire and its decoded value equals the
field's default — DER forbids encoding a DEFAULT field at its default
value, while BER tolerates the redundancy.
*/
func CheckNotDefaultEncoded(rule EncodingRule, isDefaultValue bool) error {
	if rule.strict() && isDefaultValue {
		return errInvalidObject("DEFAULT field encoded at its default value under DER")
	}
	return nil
}

/*
ShouldEncodeDefault reports whether a DEFAULT field's value should be
written at all: omitting a DEFAULT field at its default value is
always legal, under both DER and BER, so this is a constant function
of isDefaultValue rather than of the [EncodingRule].
*/
func ShouldEncodeDefault(isDefaultValue bool) bool { return !isDefaultValue }
