package asn1core

/*
pem.go implements the PEM envelope: strict BEGIN/END marker matching,
64-character base64 line-length policing, and both single- and
multi-document parsing. Base64 lines
are decoded with unknown-character tolerance disabled — a stray
non-base64 byte anywhere in the body is a hard failure, not something
silently skipped.
*/

import (
	"bytes"
	"encoding/base64"
)

var (
	pemHeaderPrefix = []byte("-----BEGIN ")
	pemFooterPrefix = []byte("-----END ")
	pemMarkerSuffix = []byte("-----")
)

// PEMDocument is one decoded (discriminator, payload) pair.
type PEMDocument struct {
	Discriminator string
	DER           []byte
}

/*
DecodePEM parses data as exactly one PEM document, failing with
[InvalidPEMDocument] on any structural violation, on multiple
documents, or on trailing bytes beyond the end marker's line ending.
*/
func DecodePEM(data []byte) (PEMDocument, error) {
	doc, next, err := parsePEMAt(data, 0)
	if err != nil {
		return PEMDocument{}, err
	}
	if next != len(data) {
		return PEMDocument{}, errInvalidPEMDocument("trailing data after PEM document")
	}
	return doc, nil
}

/*
DecodeAllPEM repeatedly applies the single-document parser, advancing
past each end marker and searching forward for the next BEGIN marker,
until none remains. Zero documents is a valid result.
*/
func DecodeAllPEM(data []byte) ([]PEMDocument, error) {
	var docs []PEMDocument
	pos := 0
	for {
		idx := bytes.Index(data[pos:], pemHeaderPrefix)
		if idx < 0 {
			break
		}
		doc, next, err := parsePEMAt(data, pos+idx)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		pos = next
	}
	return docs, nil
}

// parsePEMAt parses one PEM document beginning exactly at data[start:]
// and returns it along with the index immediately following its end
// marker's line ending (or len(data) if the document runs to EOF).
func parsePEMAt(data []byte, start int) (PEMDocument, int, error) {
	rest := data[start:]
	if !bytes.HasPrefix(rest, pemHeaderPrefix) {
		return PEMDocument{}, 0, errInvalidPEMDocument("missing PEM BEGIN marker")
	}

	headerEnd := bytes.IndexByte(rest, '\n')
	if headerEnd < 0 {
		return PEMDocument{}, 0, errInvalidPEMDocument("incomplete PEM header line")
	}

	lineEnding := []byte("\n")
	headerLine := rest[:headerEnd]
	if len(headerLine) > 0 && headerLine[len(headerLine)-1] == '\r' {
		lineEnding = []byte("\r\n")
		headerLine = headerLine[:len(headerLine)-1]
	}

	if !bytes.HasPrefix(headerLine, pemHeaderPrefix) || !bytes.HasSuffix(headerLine, pemMarkerSuffix) {
		return PEMDocument{}, 0, errInvalidPEMDocument("malformed PEM BEGIN marker")
	}
	disc := string(headerLine[len(pemHeaderPrefix) : len(headerLine)-len(pemMarkerSuffix)])
	if disc == "" {
		return PEMDocument{}, 0, errInvalidPEMDocument("empty PEM discriminator")
	}

	footer := append(append(append([]byte(nil), pemFooterPrefix...), disc...), pemMarkerSuffix...)
	bodyStart := headerEnd + 1
	footerIdx := bytes.Index(rest[bodyStart:], footer)
	if footerIdx < 0 {
		return PEMDocument{}, 0, errInvalidPEMDocument("missing matching PEM END marker")
	}
	footerStart := bodyStart + footerIdx
	footerEnd := footerStart + len(footer)

	body := rest[bodyStart:footerStart]
	if len(body) == 0 {
		return PEMDocument{}, 0, errInvalidPEMDocument("empty PEM body")
	}
	if !bytes.HasSuffix(body, lineEnding) {
		return PEMDocument{}, 0, errInvalidPEMDocument("PEM body does not end with a line ending before END marker")
	}
	body = body[:len(body)-len(lineEnding)]

	der, err := decodePEMBody(body, lineEnding)
	if err != nil {
		return PEMDocument{}, 0, err
	}

	next := start + footerEnd
	tail := data[next:]
	if bytes.HasPrefix(tail, lineEnding) {
		next += len(lineEnding)
	} else if bytes.HasPrefix(tail, []byte("\n")) {
		next++
	}

	return PEMDocument{Discriminator: disc, DER: der}, next, nil
}

// decodePEMBody splits body into lines on lineEnding, enforces the
// 64-characters-except-last-line rule, and strictly base64-decodes
// the concatenation.
func decodePEMBody(body, lineEnding []byte) ([]byte, error) {
	lines := bytes.Split(body, lineEnding)
	var b64 bytes.Buffer
	for i, line := range lines {
		last := i == len(lines)-1
		if last {
			if len(line) == 0 || len(line) > 64 {
				return nil, errInvalidPEMDocument("final base64 line must be 1..64 characters")
			}
		} else if len(line) != 64 {
			return nil, errInvalidPEMDocument("non-final base64 line must be exactly 64 characters")
		}
		b64.Write(line)
	}

	decoded, err := base64.StdEncoding.Strict().DecodeString(b64.String())
	if err != nil {
		return nil, errInvalidPEMDocument("invalid base64 content")
	}
	return decoded, nil
}

/*
EncodePEM renders one PEM document in canonical form: LF line endings,
64-character base64 lines (the final line may be shorter), and
matching BEGIN/END markers. It fails with [InvalidPEMDocument] if
doc.DER is empty, the same condition [DecodePEM] rejects on the way
back in.
*/
func EncodePEM(doc PEMDocument) ([]byte, error) {
	if len(doc.DER) == 0 {
		return nil, errInvalidPEMDocument("empty PEM body")
	}

	var buf bytes.Buffer
	buf.Write(pemHeaderPrefix)
	buf.WriteString(doc.Discriminator)
	buf.Write(pemMarkerSuffix)
	buf.WriteByte('\n')

	b64 := base64.StdEncoding.EncodeToString(doc.DER)
	for len(b64) > 0 {
		n := len(b64)
		if n > 64 {
			n = 64
		}
		buf.WriteString(b64[:n])
		buf.WriteByte('\n')
		b64 = b64[n:]
	}

	buf.Write(pemFooterPrefix)
	buf.WriteString(doc.Discriminator)
	buf.Write(pemMarkerSuffix)
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// EncodeAllPEM renders docs in order, concatenating their canonical
// forms with no extra separator. It fails on the first document
// [EncodePEM] rejects.
func EncodeAllPEM(docs []PEMDocument) ([]byte, error) {
	var buf bytes.Buffer
	for _, doc := range docs {
		enc, err := EncodePEM(doc)
		if err != nil {
			return nil, err
		}
		buf.Write(enc)
	}
	return buf.Bytes(), nil
}
