package asn1core

/*
boolean.go implements the ASN.1 BOOLEAN codec (tag 1). Under DER only
0x00 (false) and 0xFF (true) are legal content bytes; BER permits any
nonzero byte to mean true, matching X.690's "any nonzero octet"
relaxation.
*/

var booleanIdentifier = Universal(TagBoolean)

// DecodeBoolean validates n as a BOOLEAN under rule and returns its
// value.
func DecodeBoolean(n Node, rule EncodingRule) (bool, error) {
	content, err := primitiveContent(n, booleanIdentifier)
	if err != nil {
		return false, err
	}
	if len(content) != 1 {
		return false, errInvalidObject("BOOLEAN content must be exactly one byte")
	}

	b := content[0]
	if rule.strict() {
		switch b {
		case 0x00:
			return false, nil
		case 0xFF:
			return true, nil
		default:
			return false, errInvalidObject("BOOLEAN content byte is neither 0x00 nor 0xFF")
		}
	}
	return b != 0x00, nil
}

// EncodeBoolean appends a canonical BOOLEAN TLV (0xFF for true, 0x00
// for false) to s.
func EncodeBoolean(s *Serializer, v bool) {
	b := byte(0x00)
	if v {
		b = 0xFF
	}
	s.AppendPrimitive(booleanIdentifier, []byte{b})
}
