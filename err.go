package asn1core

/*
err.go contains the package's single tagged error type and the
kind-specific constructors used throughout the codec and combinator
layers.
*/

import "errors"

/*
Kind enumerates the distinguishable failure categories that an [Error]
may carry. Callers that need to branch on failure category should use
[KindOf], or [errors.Is] against an *[Error] carrying the wanted Kind
(e.g. &Error{Kind: TruncatedField}), rather than string-matching
[Error.Error].
*/
type Kind uint8

const (
	_ Kind = iota

	// InvalidFieldIdentifier indicates a malformed identifier byte
	// sequence: a long-form violation, a subidentifier overflow, or
	// a forbidden leading zero byte.
	InvalidFieldIdentifier

	// UnexpectedFieldType indicates that a decoder's expected
	// identifier did not match the node's actual identifier.
	UnexpectedFieldType

	// InvalidObject indicates a structural rule violation: trailing
	// bytes, excessive depth, excessive node count, an indefinite
	// EOC under DER, a DEFAULT field encoded at its default under
	// DER, a malformed explicit tag, an unsorted SET OF under DER,
	// and so on.
	InvalidObject

	// InvalidIntegerEncoding indicates a leading-zero or
	// leading-ones violation, a zero-length INTEGER, or a magnitude
	// that does not fit the caller's requested width.
	InvalidIntegerEncoding

	// TruncatedField indicates the input ended before a TLV
	// completed.
	TruncatedField

	// UnsupportedFieldLength indicates an indefinite length under
	// DER, or a length too large to be represented on this platform.
	UnsupportedFieldLength

	// InvalidPEMDocument indicates a missing or mismatched PEM
	// marker, a bad base64 line length, invalid base64, an empty
	// body, or (in single-document mode) more than one document.
	InvalidPEMDocument

	// InvalidStringRepresentation indicates an alphabet violation
	// for a restricted string type, or a malformed OID string.
	InvalidStringRepresentation

	// TooFewOIDComponents indicates an OBJECT IDENTIFIER string or
	// arc list with fewer than two components.
	TooFewOIDComponents
)

var kindNames = map[Kind]string{
	InvalidFieldIdentifier:      "invalid field identifier",
	UnexpectedFieldType:         "unexpected field type",
	InvalidObject:               "invalid object",
	InvalidIntegerEncoding:      "invalid integer encoding",
	TruncatedField:              "truncated field",
	UnsupportedFieldLength:      "unsupported field length",
	InvalidPEMDocument:          "invalid PEM document",
	InvalidStringRepresentation: "invalid string representation",
	TooFewOIDComponents:         "too few OID components",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown error kind"
}

/*
Error is the single tagged error type returned by every public parse
and serialize entry point in this package. It carries the failure
[Kind] plus an optional human-readable reason.
*/
type Error struct {
	Kind   Kind
	Reason string

	// Identifier is populated by [UnexpectedFieldType] failures with
	// the identifier actually observed on the wire.
	Identifier *Identifier
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Reason
}

/*
Is allows [errors.Is] to match against another *[Error] sharing the
same [Kind]; the target's Reason and Identifier are ignored. Any other
target type never matches.
*/
func (e *Error) Is(target error) bool {
	if other, ok := target.(*Error); ok {
		return other.Kind == e.Kind
	}
	return false
}

func newErr(k Kind, reason string) *Error { return &Error{Kind: k, Reason: reason} }

func errInvalidFieldIdentifier(reason string) error { return newErr(InvalidFieldIdentifier, reason) }

func errUnexpectedFieldType(want, got Identifier) error {
	g := got
	return &Error{Kind: UnexpectedFieldType, Reason: "expected " + want.String() + ", got " + got.String(), Identifier: &g}
}

func errInvalidObject(reason string) error          { return newErr(InvalidObject, reason) }
func errInvalidIntegerEncoding(reason string) error  { return newErr(InvalidIntegerEncoding, reason) }
func errTruncatedField(reason string) error          { return newErr(TruncatedField, reason) }
func errUnsupportedFieldLength(reason string) error  { return newErr(UnsupportedFieldLength, reason) }
func errInvalidPEMDocument(reason string) error      { return newErr(InvalidPEMDocument, reason) }
func errInvalidStringRepresentation(reason string) error {
	return newErr(InvalidStringRepresentation, reason)
}
func errTooFewOIDComponents(reason string) error { return newErr(TooFewOIDComponents, reason) }

// KindOf returns the [Kind] carried by err if err is (or wraps) an
// *[Error], and false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
