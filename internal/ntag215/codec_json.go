package ntag215

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Firefox2100/librfidx/internal/bytesutil"
	"github.com/Firefox2100/librfidx/internal/ntag21x"
	"github.com/Firefox2100/librfidx/status"
)

type jsonCard struct {
	Version   string `json:"Version"`
	TBO0      string `json:"TBO_0"`
	TBO1      string `json:"TBO_1"`
	Signature string `json:"Signature"`
	Counter0  string `json:"Counter0"`
	Tearing0  string `json:"Tearing0"`
	Counter1  string `json:"Counter1"`
	Tearing1  string `json:"Tearing1"`
	Counter2  string `json:"Counter2"`
	Tearing2  string `json:"Tearing2"`
}

type jsonDoc struct {
	Created  string            `json:"Created"`
	FileType string            `json:"FileType"`
	Card     jsonCard          `json:"Card"`
	Blocks   map[string]string `json:"blocks"`
}

// ParseJSON parses the Proxmark-style NTAG215 JSON shape. Per the
// historical quirk documented in spec.md §4.4/§9 and DESIGN.md,
// only user pages 0..125 are read from "blocks" even if more are present,
// and memory_max is forced to 134 regardless of what (if anything) the
// JSON carries for it.
func ParseJSON(s string) (*Data, *ntag21x.Header, error) {
	var doc jsonDoc
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil, nil, status.Wrap(status.JSONParseError, "malformed NTAG215 JSON", err)
	}

	var header ntag21x.Header
	fields := []struct {
		name string
		hex  string
		dst  []byte
	}{
		{"Version", doc.Card.Version, header.Version()},
		{"TBO_0", doc.Card.TBO0, header.TBO0()},
		{"Signature", doc.Card.Signature, header.Signature()},
		{"Counter0", doc.Card.Counter0, header.Counter0()},
		{"Counter1", doc.Card.Counter1, header.Counter1()},
		{"Counter2", doc.Card.Counter2, header.Counter2()},
	}
	for _, f := range fields {
		b, err := bytesutil.HexToBytes(f.hex, len(f.dst))
		if err != nil {
			return nil, nil, status.Wrap(status.JSONParseError, "field "+f.name+" malformed", err)
		}
		copy(f.dst, b)
	}
	tbo1, err := bytesutil.HexToBytes(doc.Card.TBO1, 1)
	if err != nil {
		return nil, nil, status.Wrap(status.JSONParseError, "field TBO_1 malformed", err)
	}
	header.SetTBO1(tbo1[0])
	tearing0, err := bytesutil.HexToBytes(doc.Card.Tearing0, 1)
	if err != nil {
		return nil, nil, status.Wrap(status.JSONParseError, "field Tearing0 malformed", err)
	}
	header.SetTearing0(tearing0[0])
	tearing1, err := bytesutil.HexToBytes(doc.Card.Tearing1, 1)
	if err != nil {
		return nil, nil, status.Wrap(status.JSONParseError, "field Tearing1 malformed", err)
	}
	header.SetTearing1(tearing1[0])
	tearing2, err := bytesutil.HexToBytes(doc.Card.Tearing2, 1)
	if err != nil {
		return nil, nil, status.Wrap(status.JSONParseError, "field Tearing2 malformed", err)
	}
	header.SetTearing2(tearing2[0])
	header.SetMemoryMax(NumUserPages + 8) // forced to 134

	var data Data
	for i := 0; i < NumUserPages; i++ {
		hexVal, ok := doc.Blocks[strconv.Itoa(i)]
		if !ok {
			return nil, nil, status.New(status.JSONParseError, fmt.Sprintf("missing block %d", i))
		}
		b, err := bytesutil.HexToBytes(hexVal, 4)
		if err != nil {
			return nil, nil, status.Wrap(status.JSONParseError, fmt.Sprintf("block %d malformed", i), err)
		}
		copy(data.Page(i), b)
	}
	return &data, &header, nil
}

// SerializeJSON renders data and header into the Proxmark-style JSON
// shape, dumping all 135 pages (the asymmetry with ParseJSON's 0..125
// restriction is intentional, see spec.md §9).
func SerializeJSON(data *Data, header *ntag21x.Header) (string, error) {
	doc := jsonDoc{
		Created:  "librfidx",
		FileType: "mfu",
		Card: jsonCard{
			Version:   bytesutil.BytesToHex(header.Version(), 8),
			TBO0:      bytesutil.BytesToHex(header.TBO0(), 2),
			TBO1:      bytesutil.BytesToHex([]byte{header.TBO1()}, 1),
			Signature: bytesutil.BytesToHex(header.Signature(), 32),
			Counter0:  bytesutil.BytesToHex(header.Counter0(), 3),
			Tearing0:  bytesutil.BytesToHex([]byte{header.Tearing0()}, 1),
			Counter1:  bytesutil.BytesToHex(header.Counter1(), 3),
			Tearing1:  bytesutil.BytesToHex([]byte{header.Tearing1()}, 1),
			Counter2:  bytesutil.BytesToHex(header.Counter2(), 3),
			Tearing2:  bytesutil.BytesToHex([]byte{header.Tearing2()}, 1),
		},
		Blocks: make(map[string]string, NumPages),
	}
	for i := 0; i < NumPages; i++ {
		doc.Blocks[strconv.Itoa(i)] = bytesutil.BytesToHex(data.Page(i), 4)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", status.Wrap(status.JSONParseError, "failed to marshal NTAG215 JSON", err)
	}
	return string(out), nil
}
