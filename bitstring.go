package asn1core

/*
bitstring.go implements the ASN.1 BIT STRING codec (tag 3). Only the
primitive representation is required under DER; a BER constructed
BIT STRING is tolerated but not produced.
*/

var bitStringIdentifier = Universal(TagBitString)

/*
BitString holds a bit sequence as a byte slice plus the count of
unused low-order padding bits in the final byte.
*/
type BitString struct {
	Bytes       []byte
	PaddingBits int
}

/*
DecodeBitString validates n as a DER/BER BIT STRING. Under BER, a
constructed BIT STRING (each child itself a BIT STRING) is accepted
and its bit data concatenated, bounded by the same depth limit as
every other constructed scan.
*/
func DecodeBitString(n Node, rule EncodingRule) (BitString, error) {
	if n.Constructed() {
		if rule.strict() {
			return BitString{}, errUnexpectedFieldType(bitStringIdentifier, n.Identifier())
		}
		return decodeConstructedBitString(n)
	}

	content, err := primitiveContent(n, bitStringIdentifier)
	if err != nil {
		return BitString{}, err
	}
	return decodeBitStringContent(content)
}

func decodeBitStringContent(content []byte) (BitString, error) {
	if len(content) == 0 {
		return BitString{}, errInvalidObject("BIT STRING content is empty")
	}

	padding := int(content[0])
	data := content[1:]

	if padding < 0 || padding > 7 {
		return BitString{}, errInvalidObject("BIT STRING padding-bit count out of range 0..7")
	}
	if len(data) == 0 && padding != 0 {
		return BitString{}, errInvalidObject("BIT STRING with no data bytes must declare zero padding bits")
	}
	if padding > 0 {
		mask := byte(1<<padding - 1)
		if data[len(data)-1]&mask != 0 {
			return BitString{}, errInvalidObject("BIT STRING padding bits are not zero")
		}
	}

	return BitString{Bytes: data, PaddingBits: padding}, nil
}

func decodeConstructedBitString(n Node) (BitString, error) {
	var out BitString
	it := n.Children()
	for {
		child, ok := it.Next()
		if !ok {
			break
		}
		part, err := DecodeBitString(child, BER)
		if err != nil {
			return BitString{}, err
		}
		if out.PaddingBits != 0 {
			return BitString{}, errInvalidObject("only the final BIT STRING segment may declare padding bits")
		}
		out.Bytes = append(out.Bytes, part.Bytes...)
		out.PaddingBits = part.PaddingBits
	}
	return out, nil
}

// EncodeBitString appends a primitive BIT STRING TLV for bs to s.
func EncodeBitString(s *Serializer, bs BitString) error {
	if bs.PaddingBits < 0 || bs.PaddingBits > 7 {
		return errInvalidObject("BIT STRING padding-bit count out of range 0..7")
	}
	if len(bs.Bytes) == 0 && bs.PaddingBits != 0 {
		return errInvalidObject("BIT STRING with no data bytes must declare zero padding bits")
	}
	content := make([]byte, 0, len(bs.Bytes)+1)
	content = append(content, byte(bs.PaddingBits))
	content = append(content, bs.Bytes...)
	s.AppendPrimitive(bitStringIdentifier, content)
	return nil
}
