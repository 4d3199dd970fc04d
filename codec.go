package asn1core

/*
codec.go contains the small amount of shared plumbing every L3
primitive codec leans on: validating that a node's identifier matches
the expected tag and that its content is primitive, then handing back
the raw content bytes to decode.
*/

// expectIdentifier fails with [UnexpectedFieldType] unless n's
// identifier exactly matches want (class, tag, and constructed flag).
func expectIdentifier(n Node, want Identifier) error {
	got := n.Identifier()
	if !got.Eq(want) {
		return errUnexpectedFieldType(want, got)
	}
	return nil
}

// primitiveContent validates n's identifier against want and returns
// its value bytes, failing if n is constructed.
func primitiveContent(n Node, want Identifier) ([]byte, error) {
	want.Constructed = false
	if err := expectIdentifier(n, want); err != nil {
		return nil, err
	}
	return n.Data()
}
