package asn1core

import "testing"

func TestEncodeLengthShortForm(t *testing.T) {
	for n := 0; n < 128; n++ {
		got := encodeLength(nil, n)
		if len(got) != 1 || int(got[0]) != n {
			t.Fatalf("encodeLength(%d) = % X, want single byte %d", n, got, n)
		}
	}
}

func TestEncodeDecodeLengthRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 127, 128, 129, 255, 256, 65535, 65536, 1 << 20} {
		enc := encodeLength(nil, n)
		got, consumed, err := decodeLength(enc, DER)
		if err != nil {
			t.Fatalf("decodeLength(%x) failed: %v", enc, err)
		}
		if got != n || consumed != len(enc) {
			t.Fatalf("decodeLength(%x) = %d, %d, want %d, %d", enc, got, consumed, n, len(enc))
		}
	}
}

func TestDecodeLengthDERRejectsNonMinimal(t *testing.T) {
	cases := [][]byte{
		{0x81, 0x01},       // should have used short form
		{0x82, 0x00, 0x80}, // leading zero byte
		{0x82, 0x00, 0x05}, // extra leading length byte
	}
	for _, buf := range cases {
		if _, _, err := decodeLength(buf, DER); err == nil {
			t.Errorf("decodeLength(%x, DER) should fail on non-minimal length", buf)
		} else if k, _ := KindOf(err); k != UnsupportedFieldLength {
			t.Errorf("Kind = %v, want %v", k, UnsupportedFieldLength)
		}
	}
}

func TestDecodeLengthBERAcceptsNonMinimal(t *testing.T) {
	buf := []byte{0x82, 0x00, 0x05}
	got, consumed, err := decodeLength(buf, BER)
	if err != nil {
		t.Fatalf("decodeLength(%x, BER) failed: %v", buf, err)
	}
	if got != 5 || consumed != 3 {
		t.Fatalf("decodeLength(%x, BER) = %d, %d, want 5, 3", buf, got, consumed)
	}
}

func TestDecodeLengthIndefinite(t *testing.T) {
	if _, _, err := decodeLength([]byte{0x80}, DER); err == nil {
		t.Fatalf("indefinite length must be rejected under DER")
	} else if k, _ := KindOf(err); k != UnsupportedFieldLength {
		t.Errorf("Kind = %v, want %v", k, UnsupportedFieldLength)
	}

	got, consumed, err := decodeLength([]byte{0x80}, BER)
	if err != nil {
		t.Fatalf("decodeLength(0x80, BER) failed: %v", err)
	}
	if got != indefiniteLength || consumed != 1 {
		t.Fatalf("decodeLength(0x80, BER) = %d, %d, want %d, 1", got, consumed, indefiniteLength)
	}
}

func TestDecodeLengthTruncated(t *testing.T) {
	cases := [][]byte{nil, {0x82, 0x01}}
	for _, buf := range cases {
		if _, _, err := decodeLength(buf, DER); err == nil {
			t.Errorf("decodeLength(%x) should fail as truncated", buf)
		} else if k, _ := KindOf(err); k != TruncatedField {
			t.Errorf("Kind = %v, want %v", k, TruncatedField)
		}
	}
}

func TestDecodeLengthReservedValue(t *testing.T) {
	if _, _, err := decodeLength([]byte{0xFF}, BER); err == nil {
		t.Fatalf("length form 0xFF must be rejected")
	} else if k, _ := KindOf(err); k != InvalidObject {
		t.Errorf("Kind = %v, want %v", k, InvalidObject)
	}
}

// TestLengthEncodingStrictnessUnique verifies DER length-encoding
// strictness directly: for a given content length, exactly one byte
// sequence is DER-accepted.
func TestLengthEncodingStrictnessUnique(t *testing.T) {
	n := 300
	canonical := encodeLength(nil, n)
	if _, _, err := decodeLength(canonical, DER); err != nil {
		t.Fatalf("canonical encoding of %d rejected: %v", n, err)
	}

	// Pad with an extra leading length byte: non-canonical, must fail.
	padded := []byte{0x83, 0x00, canonical[1], canonical[2]}
	if _, _, err := decodeLength(padded, DER); err == nil {
		t.Fatalf("padded length encoding of %d should be rejected under DER", n)
	}
}
