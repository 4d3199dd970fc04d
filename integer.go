package asn1core

/*
integer.go implements the ASN.1 INTEGER codec (tag 2) around a
polymorphic capability abstraction: decoding is dispatched through a
small interface so callers may substitute their own big-integer
representation instead of being forced into this package's own.
[Int64Value] and [BigIntValue] are the two default implementations,
splitting the common int64 fast path from the *big.Int slow path
behind a single public capability surface.
*/

import "math/big"

var integerIdentifier = Universal(TagInteger)

/*
IntegerValue is the capability abstraction an INTEGER decode target
must satisfy. Implementations decide how to store (or reject) an
arbitrary-precision signed magnitude delivered as big-endian two's
complement bytes.
*/
type IntegerValue interface {
	// FromSignedBytes populates the receiver from a big-endian
	// two's complement byte slice already validated as a minimal
	// DER INTEGER encoding. It fails if the magnitude does not fit
	// the receiver's target width.
	FromSignedBytes(b []byte) error

	// AppendSignedBytes appends the minimal big-endian two's
	// complement encoding of the receiver's value to dst and
	// returns the extended slice.
	AppendSignedBytes(dst []byte) []byte
}

/*
Int64Value adapts a native int64 to [IntegerValue].
*/
type Int64Value int64

func (v *Int64Value) FromSignedBytes(b []byte) error {
	bi := decodeTwosComplement(b)
	if !bi.IsInt64() {
		return errInvalidIntegerEncoding("magnitude does not fit a 64-bit signed integer")
	}
	*v = Int64Value(bi.Int64())
	return nil
}

func (v Int64Value) AppendSignedBytes(dst []byte) []byte {
	return append(dst, encodeTwosComplement(big.NewInt(int64(v)))...)
}

/*
BigIntValue adapts a [math/big.Int] to [IntegerValue], admitting any
magnitude.
*/
type BigIntValue struct{ Int big.Int }

func (v *BigIntValue) FromSignedBytes(b []byte) error {
	v.Int.Set(decodeTwosComplement(b))
	return nil
}

func (v *BigIntValue) AppendSignedBytes(dst []byte) []byte {
	return append(dst, encodeTwosComplement(&v.Int)...)
}

/*
DecodeInteger validates n as a DER/BER INTEGER under the universal
INTEGER identifier and populates v via [IntegerValue.FromSignedBytes].
*/
func DecodeInteger(n Node, v IntegerValue) error {
	content, err := primitiveContent(n, integerIdentifier)
	if err != nil {
		return err
	}
	if err := validateIntegerEncoding(content); err != nil {
		return err
	}
	return v.FromSignedBytes(content)
}

/*
EncodeInteger appends a primitive INTEGER TLV for v's value to s.
*/
func EncodeInteger(s *Serializer, v IntegerValue) {
	content := v.AppendSignedBytes(nil)
	s.AppendPrimitive(integerIdentifier, content)
}

// validateIntegerEncoding enforces the DER uniqueness constraints on
// an INTEGER's content octets: minimal-length two's complement.
func validateIntegerEncoding(b []byte) error {
	if len(b) == 0 {
		return errInvalidIntegerEncoding("zero-length INTEGER content")
	}
	if len(b) >= 2 {
		if b[0] == 0x00 && b[1]&0x80 == 0 {
			return errInvalidIntegerEncoding("leading 0x00 byte with no sign-flip to avoid")
		}
		if b[0] == 0xFF && b[1]&0x80 != 0 {
			return errInvalidIntegerEncoding("leading 0xFF byte with no sign-flip to avoid")
		}
	}
	return nil
}

// decodeTwosComplement interprets encoded (already validated) as a
// big-endian two's complement signed integer.
func decodeTwosComplement(encoded []byte) *big.Int {
	val := new(big.Int).SetBytes(encoded)
	if len(encoded) > 0 && encoded[0]&0x80 != 0 {
		bitLen := uint(len(encoded) * 8)
		twoPow := new(big.Int).Lsh(big.NewInt(1), bitLen)
		val.Sub(val, twoPow)
	}
	return val
}

// encodeTwosComplement returns the minimum-byte big-endian two's
// complement encoding of i. Zero is encoded as the single byte 0x00.
func encodeTwosComplement(i *big.Int) []byte {
	if i.Sign() == 0 {
		return []byte{0x00}
	}

	if i.Sign() > 0 {
		b := i.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	abs := new(big.Int).Abs(i)
	n := (abs.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}
	min := new(big.Int).Lsh(big.NewInt(1), uint(8*n-1))
	min.Neg(min)
	if i.Cmp(min) < 0 {
		n++
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	value := new(big.Int).Add(mod, i)
	b := value.Bytes()
	if len(b) < n {
		padding := make([]byte, n-len(b))
		b = append(padding, b...)
	}
	if b[0]&0x80 == 0 {
		b = append([]byte{0xFF}, b...)
	}
	return b
}
