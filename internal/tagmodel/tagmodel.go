// Package tagmodel holds the shared discriminated primitives of spec.md
// §3.1 (TransformCommand, FileFormat, TagKind) that every tag family,
// the transform dispatcher (C7), and format negotiation (C8) all need, so
// none of them has to import each other just to share an enum.
package tagmodel

// TransformCommand selects which mutation a transform dispatch applies.
type TransformCommand int

const (
	CmdNone TransformCommand = iota
	CmdGenerate
	CmdRandomizeUID
	CmdWipe
)

func (c TransformCommand) String() string {
	switch c {
	case CmdNone:
		return "NONE"
	case CmdGenerate:
		return "GENERATE"
	case CmdRandomizeUID:
		return "RANDOMIZE_UID"
	case CmdWipe:
		return "WIPE"
	default:
		return "UNKNOWN"
	}
}

// FileFormat selects a wire representation.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatBinary
	FormatJSON
	FormatNFC
	FormatEML // reserved; not implemented, per spec.md §3.1.
)

func (f FileFormat) String() string {
	switch f {
	case FormatBinary:
		return "BINARY"
	case FormatJSON:
		return "JSON"
	case FormatNFC:
		return "NFC"
	case FormatEML:
		return "EML"
	default:
		return "UNKNOWN"
	}
}

// TagKind selects a tag family. Unspecified/Unknown/Error are sentinels
// used only at the detection boundary (spec.md §3.1), never by a codec or
// transform that already knows its own family.
type TagKind int

const (
	TagUnspecified TagKind = iota
	TagNTAG215
	TagMFC1K
	TagAmiibo
	TagUnknown
	TagError
)

func (k TagKind) String() string {
	switch k {
	case TagNTAG215:
		return "NTAG215"
	case TagMFC1K:
		return "MFC1K"
	case TagAmiibo:
		return "AMIIBO"
	case TagUnspecified:
		return "UNSPECIFIED"
	case TagError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
