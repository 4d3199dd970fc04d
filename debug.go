package asn1core

/*
debug.go contains rendering helpers used only for human-readable
output (test failure messages, ad-hoc inspection). Nothing here
participates in parse or serialize control flow.
*/

import (
	"encoding/hex"
	"strconv"
)

func tlvSummary(rec ParserNode) string {
	kind := "primitive"
	if rec.Identifier.Constructed {
		kind = "constructed"
	}
	s := "{Class:" + rec.Identifier.Class.String() +
		", Tag:" + strconv.FormatUint(rec.Identifier.Tag, 10) +
		", " + kind +
		", Depth:" + strconv.Itoa(rec.Depth) +
		", Bytes:" + hex.EncodeToString(rec.EncodedBytes) + "}"
	return s
}

// Hex returns the hexadecimal rendering of the node's full TLV bytes.
func (n Node) Hex() string { return hex.EncodeToString(n.Bytes()) }
