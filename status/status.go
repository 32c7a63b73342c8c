// Package status defines the discriminated error kinds returned at every
// library API boundary. No fallible operation in this module returns a raw
// integer or an opaque error string alone; callers that need to branch on
// failure class use the Kind, not string matching.
package status

import (
	"errors"
	"fmt"
)

// Kind identifies the class of a failure. Zero value is OK and is never
// carried by an *Error (a nil error means success).
type Kind int

const (
	OK Kind = iota
	BinaryFileIOError
	JSONFileIOError
	NFCFileIOError
	BinaryFileSizeError
	JSONParseError
	NFCParseError
	FileFormatError
	MemoryError
	NumericalOperationFailed
	DRNGError
	UnknownEnumError
	NTAG21xUIDError
	NTAG21xFixedBytesError
	MFCAccessBitsError
	AmiiboKeyIOError
	AmiiboHMACValidationError
)

var kindNames = map[Kind]string{
	OK:                        "OK",
	BinaryFileIOError:         "BINARY_FILE_IO_ERROR",
	JSONFileIOError:           "JSON_FILE_IO_ERROR",
	NFCFileIOError:            "NFC_FILE_IO_ERROR",
	BinaryFileSizeError:       "BINARY_FILE_SIZE_ERROR",
	JSONParseError:            "JSON_PARSE_ERROR",
	NFCParseError:             "NFC_PARSE_ERROR",
	FileFormatError:           "FILE_FORMAT_ERROR",
	MemoryError:               "MEMORY_ERROR",
	NumericalOperationFailed:  "NUMERICAL_OPERATION_FAILED",
	DRNGError:                 "DRNG_ERROR",
	UnknownEnumError:          "UNKNOWN_ENUM_ERROR",
	NTAG21xUIDError:           "NTAG21X_UID_ERROR",
	NTAG21xFixedBytesError:    "NTAG21X_FIXED_BYTES_ERROR",
	MFCAccessBitsError:        "MFC_ACCESS_BITS_ERROR",
	AmiiboKeyIOError:          "AMIIBO_KEY_IO_ERROR",
	AmiiboHMACValidationError: "AMIIBO_HMAC_VALIDATION_ERROR",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN_ENUM_ERROR"
}

// Error is the concrete error type returned by every fallible operation in
// this module. Kind is the stable, matchable classification; Msg is a
// human-readable detail; Err, if present, is the wrapped underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "status: nil error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New constructs an *Error with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap constructs an *Error carrying an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// IsDRNGError reports whether err is a DRNG_ERROR.
func IsDRNGError(err error) bool { return Is(err, DRNGError) }

// IsUIDError reports whether err is an NTAG21X_UID_ERROR.
func IsUIDError(err error) bool { return Is(err, NTAG21xUIDError) }

// IsFixedBytesError reports whether err is an NTAG21X_FIXED_BYTES_ERROR.
func IsFixedBytesError(err error) bool { return Is(err, NTAG21xFixedBytesError) }

// IsAccessBitsError reports whether err is an MFC_ACCESS_BITS_ERROR.
func IsAccessBitsError(err error) bool { return Is(err, MFCAccessBitsError) }

// IsHMACValidationError reports whether err is an AMIIBO_HMAC_VALIDATION_ERROR.
func IsHMACValidationError(err error) bool { return Is(err, AmiiboHMACValidationError) }
