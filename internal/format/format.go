// Package format implements wire-format negotiation (C8): mapping a file
// extension to a tagmodel.FileFormat, and parsing/serializing any tag
// kind's memory in any supported format. Amiibo has no codec of its own;
// it reinterprets whatever NTAG215's codec parsed (spec.md §4.6, confirmed
// by the original's own tests loading Amiibo fixtures through the NTAG215
// binary loader).
package format

import (
	"path/filepath"
	"strings"

	"github.com/Firefox2100/librfidx/internal/amiibo"
	"github.com/Firefox2100/librfidx/internal/mfc1k"
	"github.com/Firefox2100/librfidx/internal/ntag21x"
	"github.com/Firefox2100/librfidx/internal/ntag215"
	"github.com/Firefox2100/librfidx/internal/tagmodel"
	"github.com/Firefox2100/librfidx/status"
)

// ExtensionToFormat maps a file extension (with or without the leading
// dot) to a FileFormat. EML is recognised as reserved but never returned
// here, since spec.md §3.1 documents it as not implemented.
func ExtensionToFormat(ext string) (tagmodel.FileFormat, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "bin":
		return tagmodel.FormatBinary, nil
	case "json":
		return tagmodel.FormatJSON, nil
	case "nfc":
		return tagmodel.FormatNFC, nil
	case "eml":
		return tagmodel.FormatUnknown, status.New(status.FileFormatError, "eml format is reserved and not implemented")
	default:
		return tagmodel.FormatUnknown, status.New(status.FileFormatError, "unrecognized file extension: "+ext)
	}
}

// ExtensionOfPath is a convenience wrapper over ExtensionToFormat for a
// full file path rather than a bare extension.
func ExtensionOfPath(path string) (tagmodel.FileFormat, error) {
	return ExtensionToFormat(filepath.Ext(path))
}

// Parse decodes raw bytes for the given tag kind and format into the
// concrete data/header pair that kind uses, wrapped as any so callers
// outside this package never need a type switch of their own.
func Parse(kind tagmodel.TagKind, format tagmodel.FileFormat, raw []byte) (data any, header any, err error) {
	switch kind {
	case tagmodel.TagNTAG215:
		return parseNTAG215(format, raw)

	case tagmodel.TagMFC1K:
		return parseMFC1K(format, raw)

	case tagmodel.TagAmiibo:
		// Amiibo rides NTAG215's codec: parse as NTAG215, then
		// reinterpret the resulting 540 bytes as amiibo.Data.
		d, h, err := parseNTAG215(format, raw)
		if err != nil {
			return nil, nil, err
		}
		ad, err := amiibo.FromBytes(d.(*ntag215.Data).Bytes())
		if err != nil {
			return nil, nil, err
		}
		return ad, h, nil

	default:
		return nil, nil, status.New(status.UnknownEnumError, "unknown tag kind")
	}
}

// Serialize encodes a tag kind's data/header pair in the given format.
// data/header must be the concrete pointer types Parse for that kind
// returns.
func Serialize(kind tagmodel.TagKind, format tagmodel.FileFormat, data, header any) ([]byte, error) {
	switch kind {
	case tagmodel.TagNTAG215:
		return serializeNTAG215(format, data, header)

	case tagmodel.TagMFC1K:
		return serializeMFC1K(format, data, header)

	case tagmodel.TagAmiibo:
		ad, ok := data.(*amiibo.Data)
		if !ok {
			return nil, status.New(status.MemoryError, "data is not Amiibo memory")
		}
		nd, err := ntag215.FromBytes(ad.Bytes())
		if err != nil {
			return nil, err
		}
		return serializeNTAG215(format, nd, header)

	default:
		return nil, status.New(status.UnknownEnumError, "unknown tag kind")
	}
}

func parseNTAG215(format tagmodel.FileFormat, raw []byte) (any, any, error) {
	switch format {
	case tagmodel.FormatBinary:
		return ntag215.ParseBinary(raw)
	case tagmodel.FormatJSON:
		return ntag215.ParseJSON(string(raw))
	case tagmodel.FormatNFC:
		return ntag215.ParseNFC(string(raw))
	case tagmodel.FormatEML:
		return nil, nil, status.New(status.FileFormatError, "eml format is reserved and not implemented")
	default:
		return nil, nil, status.New(status.FileFormatError, "unsupported format for NTAG215")
	}
}

func serializeNTAG215(format tagmodel.FileFormat, data, header any) ([]byte, error) {
	d, ok := data.(*ntag215.Data)
	if !ok {
		return nil, status.New(status.MemoryError, "data is not NTAG215 memory")
	}
	h, _ := header.(*ntag21x.Header)

	switch format {
	case tagmodel.FormatBinary:
		return ntag215.SerializeBinary(d, h), nil
	case tagmodel.FormatJSON:
		s, err := ntag215.SerializeJSON(d, h)
		return []byte(s), err
	case tagmodel.FormatNFC:
		return []byte(ntag215.SerializeNFC(d, h)), nil
	case tagmodel.FormatEML:
		return nil, status.New(status.FileFormatError, "eml format is reserved and not implemented")
	default:
		return nil, status.New(status.FileFormatError, "unsupported format for NTAG215")
	}
}

func parseMFC1K(format tagmodel.FileFormat, raw []byte) (any, any, error) {
	switch format {
	case tagmodel.FormatBinary:
		return mfc1k.ParseBinary(raw)
	case tagmodel.FormatJSON:
		return mfc1k.ParseJSON(string(raw))
	case tagmodel.FormatNFC:
		return mfc1k.ParseNFC(string(raw))
	case tagmodel.FormatEML:
		return nil, nil, status.New(status.FileFormatError, "eml format is reserved and not implemented")
	default:
		return nil, nil, status.New(status.FileFormatError, "unsupported format for Mifare Classic 1K")
	}
}

func serializeMFC1K(format tagmodel.FileFormat, data, header any) ([]byte, error) {
	d, ok := data.(*mfc1k.Data)
	if !ok {
		return nil, status.New(status.MemoryError, "data is not Mifare Classic 1K memory")
	}
	h, _ := header.(*mfc1k.Header)

	switch format {
	case tagmodel.FormatBinary:
		return mfc1k.SerializeBinary(d), nil
	case tagmodel.FormatJSON:
		s, err := mfc1k.SerializeJSON(d, h)
		return []byte(s), err
	case tagmodel.FormatNFC:
		return []byte(mfc1k.SerializeNFC(d, h)), nil
	case tagmodel.FormatEML:
		return nil, status.New(status.FileFormatError, "eml format is reserved and not implemented")
	default:
		return nil, status.New(status.FileFormatError, "unsupported format for Mifare Classic 1K")
	}
}
