package asn1core

/*
null.go implements the ASN.1 NULL codec (tag 5).
*/

var nullIdentifier = Universal(TagNull)

// DecodeNull validates n as a NULL: present, primitive, zero-length
// content.
func DecodeNull(n Node) error {
	content, err := primitiveContent(n, nullIdentifier)
	if err != nil {
		return err
	}
	if len(content) != 0 {
		return errInvalidObject("NULL content must be zero bytes")
	}
	return nil
}

// EncodeNull appends a primitive, zero-length NULL TLV to s.
func EncodeNull(s *Serializer) { s.AppendPrimitive(nullIdentifier, nil) }
