package mfc1k

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Firefox2100/librfidx/internal/bytesutil"
	"github.com/Firefox2100/librfidx/status"
)

type jsonCard struct {
	UID  string `json:"UID"`
	ATQA string `json:"ATQA"`
	SAK  string `json:"SAK"`
}

type jsonSectorKey struct {
	KeyA             string `json:"KeyA"`
	KeyB             string `json:"KeyB"`
	AccessConditions string `json:"AccessConditions"`
}

type jsonDoc struct {
	Created    string                   `json:"Created"`
	FileType   string                   `json:"FileType"`
	Card       jsonCard                 `json:"Card"`
	Blocks     map[string]string        `json:"blocks"`
	SectorKeys map[string]jsonSectorKey `json:"SectorKeys"`
}

// ParseJSON parses the "mfc v2" JSON shape. UID length determines whether
// the tag is a 4-byte NUID (8 hex chars, zero-padded to 7 in the returned
// Header) or a 7-byte UID (14 hex chars); any other length is a parse
// error. SectorKeys is present in the format but intentionally ignored,
// matching the original's treatment of it as redundant with the trailers
// already present in "blocks".
func ParseJSON(s string) (*Data, *Header, error) {
	var doc jsonDoc
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil, nil, status.Wrap(status.JSONParseError, "malformed Mifare Classic 1K JSON", err)
	}

	header := &Header{}
	switch len(doc.Card.UID) {
	case 8:
		uid, err := bytesutil.HexToBytes(doc.Card.UID, 4)
		if err != nil {
			return nil, nil, status.Wrap(status.JSONParseError, "UID malformed", err)
		}
		copy(header.UID[:4], uid)
	case 14:
		uid, err := bytesutil.HexToBytes(doc.Card.UID, 7)
		if err != nil {
			return nil, nil, status.Wrap(status.JSONParseError, "UID malformed", err)
		}
		copy(header.UID[:], uid)
	default:
		return nil, nil, status.New(status.JSONParseError, "UID must be 8 or 14 hex characters")
	}

	atqa, err := bytesutil.HexToBytes(doc.Card.ATQA, 2)
	if err != nil {
		return nil, nil, status.Wrap(status.JSONParseError, "ATQA malformed", err)
	}
	copy(header.ATQA[:], atqa)
	sak, err := bytesutil.HexToBytes(doc.Card.SAK, 1)
	if err != nil {
		return nil, nil, status.Wrap(status.JSONParseError, "SAK malformed", err)
	}
	header.SAK = sak[0]

	var data Data
	for i := 0; i < NumBlocks; i++ {
		hexVal, ok := doc.Blocks[strconv.Itoa(i)]
		if !ok {
			return nil, nil, status.New(status.JSONParseError, fmt.Sprintf("missing block %d", i))
		}
		b, err := bytesutil.HexToBytes(hexVal, BlockSize)
		if err != nil {
			return nil, nil, status.Wrap(status.JSONParseError, fmt.Sprintf("block %d malformed", i), err)
		}
		copy(data.Block(i), b)
	}
	return &data, header, nil
}

// SerializeJSON renders data and header into the "mfc v2" JSON shape,
// including a SectorKeys block derived from the trailers for readability
// (parsers, including ParseJSON above, ignore it on input).
func SerializeJSON(data *Data, header *Header) (string, error) {
	doc := jsonDoc{
		Created:  "librfidx",
		FileType: "mfc v2",
		Card: jsonCard{
			UID:  bytesutil.BytesToHex(header.UID[:], 7),
			ATQA: bytesutil.BytesToHex(header.ATQA[:], 2),
			SAK:  bytesutil.BytesToHex([]byte{header.SAK}, 1),
		},
		Blocks:     make(map[string]string, NumBlocks),
		SectorKeys: make(map[string]jsonSectorKey, NumSectors),
	}
	for i := 0; i < NumBlocks; i++ {
		doc.Blocks[strconv.Itoa(i)] = bytesutil.BytesToHex(data.Block(i), BlockSize)
	}
	for s := 0; s < NumSectors; s++ {
		trailer := data.SectorTrailer(s)
		doc.SectorKeys[strconv.Itoa(s)] = jsonSectorKey{
			KeyA:             bytesutil.BytesToHex(TrailerKeyA(trailer), 6),
			KeyB:             bytesutil.BytesToHex(TrailerKeyB(trailer), 6),
			AccessConditions: bytesutil.BytesToHex(TrailerAccessBits(trailer), 3),
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", status.Wrap(status.JSONParseError, "failed to marshal Mifare Classic 1K JSON", err)
	}
	return string(out), nil
}
