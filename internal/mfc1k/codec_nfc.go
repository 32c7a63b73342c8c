package mfc1k

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/Firefox2100/librfidx/internal/bytesutil"
	"github.com/Firefox2100/librfidx/status"
)

// ParseNFC parses the Flipper-style Mifare Classic 1K text dump.
func ParseNFC(s string) (*Data, *Header, error) {
	kv := make(map[string]string)
	blocks := make(map[int]string)

	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			return nil, nil, status.New(status.NFCParseError, "malformed line: "+line)
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if strings.HasPrefix(key, "Block ") {
			n, err := strconv.Atoi(strings.TrimPrefix(key, "Block "))
			if err != nil || n < 0 || n >= NumBlocks {
				return nil, nil, status.New(status.NFCParseError, "invalid block index: "+key)
			}
			blocks[n] = value
			continue
		}
		kv[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, status.Wrap(status.NFCFileIOError, "failed reading NFC text", err)
	}

	for _, key := range []string{"UID", "ATQA", "SAK", "Device type", "Mifare Classic type"} {
		if _, ok := kv[key]; !ok {
			return nil, nil, status.New(status.NFCParseError, "missing required key: "+key)
		}
	}

	header := &Header{}
	uid, err := hexFields(kv["UID"])
	if err != nil {
		return nil, nil, status.Wrap(status.NFCParseError, "UID malformed", err)
	}
	switch len(uid) {
	case 4, 7:
		copy(header.UID[:], uid)
	default:
		return nil, nil, status.New(status.NFCParseError, "UID must decode to 4 or 7 bytes")
	}
	atqa, err := hexFields(kv["ATQA"])
	if err != nil || len(atqa) != 2 {
		return nil, nil, status.New(status.NFCParseError, "ATQA malformed")
	}
	copy(header.ATQA[:], atqa)
	sak, err := hexFields(kv["SAK"])
	if err != nil || len(sak) != 1 {
		return nil, nil, status.New(status.NFCParseError, "SAK malformed")
	}
	header.SAK = sak[0]

	var data Data
	for n := 0; n < NumBlocks; n++ {
		hexVal, ok := blocks[n]
		if !ok {
			return nil, nil, status.New(status.NFCParseError, fmt.Sprintf("missing block %d", n))
		}
		b, err := bytesutil.HexToBytes(strings.ReplaceAll(hexVal, " ", ""), BlockSize)
		if err != nil {
			return nil, nil, status.Wrap(status.NFCParseError, fmt.Sprintf("block %d malformed", n), err)
		}
		copy(data.Block(n), b)
	}

	return &data, header, nil
}

// SerializeNFC renders data and header into the Flipper-style Mifare
// Classic 1K text dump.
func SerializeNFC(data *Data, header *Header) string {
	var b bytesutil.TextBuilder
	b.Append("Filetype: Flipper NFC device\n")
	b.Append("Version: 3\n")
	b.Append("Device type: Mifare Classic\n")
	b.Appendf("UID: %s\n", spacedHex(header.UID[:]))
	b.Appendf("ATQA: %s\n", spacedHex(header.ATQA[:]))
	b.Appendf("SAK: %s\n", spacedHex([]byte{header.SAK}))
	b.Append("Mifare Classic type: 1K\n")
	b.Append("Data format version: 2\n")
	for i := 0; i < NumBlocks; i++ {
		b.Appendf("Block %d: %s\n", i, spacedHex(data.Block(i)))
	}
	return b.String()
}

func spacedHex(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = bytesutil.BytesToHex([]byte{v}, 1)
	}
	return strings.Join(parts, " ")
}

func hexFields(s string) ([]byte, error) {
	return bytesutil.HexToBytes(strings.ReplaceAll(s, " ", ""), len(strings.ReplaceAll(s, " ", ""))/2)
}
