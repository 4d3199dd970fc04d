package asn1core

import (
	"bytes"
	"math/big"
	"testing"
)

func scanOneNode(t *testing.T, input []byte) Node {
	t.Helper()
	nodes, err := ScanTree(input, BER)
	if err != nil {
		t.Fatalf("ScanTree(%x) failed: %v", input, err)
	}
	return Root(nodes)
}

func TestDecodeIntegerBoundaryValues(t *testing.T) {
	cases := []struct {
		name    string
		input   []byte
		want    int64
		wantErr bool
		kind    Kind
	}{
		{"128", []byte{0x02, 0x02, 0x00, 0x80}, 128, false, 0},
		{"-128", []byte{0x02, 0x01, 0x80}, -128, false, 0},
		{"leading zero", []byte{0x02, 0x02, 0x00, 0x01}, 0, true, InvalidIntegerEncoding},
		{"zero length", []byte{0x02, 0x00}, 0, true, InvalidIntegerEncoding},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := scanOneNode(t, c.input)
			var v Int64Value
			err := DecodeInteger(n, &v)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				if k, _ := KindOf(err); k != c.kind {
					t.Errorf("Kind = %v, want %v", k, c.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeInteger failed: %v", err)
			}
			if int64(v) != c.want {
				t.Errorf("value = %d, want %d", int64(v), c.want)
			}
		})
	}
}

func TestEncodeIntegerInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, 128, -128, -129, 255, 256, 1 << 40, -(1 << 40)} {
		s := NewSerializer()
		iv := Int64Value(v)
		EncodeInteger(s, &iv)

		n := scanOneNode(t, s.Bytes())
		var got Int64Value
		if err := DecodeInteger(n, &got); err != nil {
			t.Fatalf("DecodeInteger(%d) round trip failed: %v", v, err)
		}
		if int64(got) != v {
			t.Errorf("round trip %d -> %x -> %d", v, s.Bytes(), int64(got))
		}
	}
}

func TestEncodeIntegerBigIntRoundTrip(t *testing.T) {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	neg := new(big.Int).Neg(huge)

	for _, v := range []*big.Int{big.NewInt(0), huge, neg} {
		s := NewSerializer()
		bv := BigIntValue{Int: *v}
		EncodeInteger(s, &bv)

		n := scanOneNode(t, s.Bytes())
		var got BigIntValue
		if err := DecodeInteger(n, &got); err != nil {
			t.Fatalf("DecodeInteger(%s) round trip failed: %v", v, err)
		}
		if got.Int.Cmp(v) != 0 {
			t.Errorf("round trip %s -> %x -> %s", v, s.Bytes(), &got.Int)
		}
	}
}

func TestValidateIntegerEncoding(t *testing.T) {
	if err := validateIntegerEncoding(nil); err == nil {
		t.Errorf("zero-length content should fail")
	}
	if err := validateIntegerEncoding([]byte{0x00, 0x01}); err == nil {
		t.Errorf("redundant leading 0x00 should fail")
	}
	if err := validateIntegerEncoding([]byte{0xFF, 0x80}); err == nil {
		t.Errorf("redundant leading 0xFF should fail")
	}
	if err := validateIntegerEncoding([]byte{0x00, 0x80}); err != nil {
		t.Errorf("necessary leading 0x00 should not fail: %v", err)
	}
	if err := validateIntegerEncoding([]byte{0x80}); err != nil {
		t.Errorf("single byte at sign boundary should not fail: %v", err)
	}
}

func TestEncodeTwosComplementZero(t *testing.T) {
	got := encodeTwosComplement(big.NewInt(0))
	if !bytes.Equal(got, []byte{0x00}) {
		t.Errorf("encodeTwosComplement(0) = %x, want {00}", got)
	}
}

func TestInt64ValueOverflowsToBigOnly(t *testing.T) {
	// A magnitude that doesn't fit int64 should fail for Int64Value but
	// succeed for BigIntValue.
	huge, _ := new(big.Int).SetString("99999999999999999999999999999999", 10)
	content := encodeTwosComplement(huge)
	n := scanOneNode(t, append([]byte{0x02}, append(encodeLength(nil, len(content)), content...)...))

	var iv Int64Value
	if err := DecodeInteger(n, &iv); err == nil {
		t.Fatalf("expected Int64Value to reject an oversized magnitude")
	}

	var bv BigIntValue
	if err := DecodeInteger(n, &bv); err != nil {
		t.Fatalf("BigIntValue should accept an oversized magnitude: %v", err)
	}
	if bv.Int.Cmp(huge) != 0 {
		t.Errorf("BigIntValue = %s, want %s", &bv.Int, huge)
	}
}
