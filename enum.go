package asn1core

/*
enum.go implements the ASN.1 ENUMERATED codec (tag 10). Wire encoding
is identical to INTEGER's; only the tag differs.
*/

var enumeratedIdentifier = Universal(TagEnumerated)

// DecodeEnumerated validates n as a DER/BER ENUMERATED and populates
// v via [IntegerValue.FromSignedBytes].
func DecodeEnumerated(n Node, v IntegerValue) error {
	content, err := primitiveContent(n, enumeratedIdentifier)
	if err != nil {
		return err
	}
	if err := validateIntegerEncoding(content); err != nil {
		return err
	}
	return v.FromSignedBytes(content)
}

// EncodeEnumerated appends a primitive ENUMERATED TLV for v's value
// to s.
func EncodeEnumerated(s *Serializer, v IntegerValue) {
	content := v.AppendSignedBytes(nil)
	s.AppendPrimitive(enumeratedIdentifier, content)
}
