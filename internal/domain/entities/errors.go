package entities

import "fmt"

// ParseError means the input bytes were not well-formed for the attempted
// format. It carries the underlying syntax diagnostic for display.
type ParseError struct {
	Format string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parse failed: %v", e.Format, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// FormatMismatchError means the input was well-formed but does not have
// the document shape the interpreter expected (e.g. an XML root other
// than <bom>). It is an internal fallback trigger, never shown to the
// end caller directly.
type FormatMismatchError struct {
	Detail string
}

func (e *FormatMismatchError) Error() string {
	return e.Detail
}

// UnrecognizedFormatError means no interpreter could make sense of the
// document. It is the only format-related error surfaced to the end
// caller; the message stays a human-readable summary.
type UnrecognizedFormatError struct{}

func (e *UnrecognizedFormatError) Error() string {
	return "document was not recognized as CycloneDX or SPDX"
}
