package asn1core

/*
octetstring.go implements the ASN.1 OCTET STRING codec (tag 4).
Under DER it is primitive only; under BER a constructed OCTET STRING
recursively concatenates its children's value bytes, bounded by the
same depth limit as every other constructed scan.
*/

var octetStringIdentifier = Universal(TagOctetString)

// DecodeOctetString validates n as a DER/BER OCTET STRING and returns
// its (possibly concatenated) value bytes.
func DecodeOctetString(n Node, rule EncodingRule) ([]byte, error) {
	if n.Constructed() {
		if rule.strict() {
			return nil, errUnexpectedFieldType(octetStringIdentifier, n.Identifier())
		}
		return decodeConstructedOctetString(n)
	}
	return primitiveContent(n, octetStringIdentifier)
}

func decodeConstructedOctetString(n Node) ([]byte, error) {
	var out []byte
	it := n.Children()
	for {
		child, ok := it.Next()
		if !ok {
			break
		}
		part, err := DecodeOctetString(child, BER)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}

// EncodeOctetString appends a primitive OCTET STRING TLV for content
// to s.
func EncodeOctetString(s *Serializer, content []byte) {
	s.AppendPrimitive(octetStringIdentifier, content)
}
