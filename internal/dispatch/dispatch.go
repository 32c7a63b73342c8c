// Package dispatch implements the single transform entry point (C7):
// one function, keyed on tag kind and transform command. It allocates no
// tag memory itself: when GENERATE is given nil data/header, the per-kind
// Transform it forwards to allocates them. The original dispatches through a
// `_Generic`-based macro table over concrete pointer types
// (include/librfidx/rfidx.h); spec.md §9 replaces that with ordinary type
// assertions against the tagged TagKind, since Go has no equivalent macro
// facility.
package dispatch

import (
	"github.com/Firefox2100/librfidx/internal/amiibo"
	"github.com/Firefox2100/librfidx/internal/mfc1k"
	"github.com/Firefox2100/librfidx/internal/ntag21x"
	"github.com/Firefox2100/librfidx/internal/ntag215"
	"github.com/Firefox2100/librfidx/internal/tagmodel"
	"github.com/Firefox2100/librfidx/status"
)

// Extra carries the tag-kind-specific inputs a transform might need beyond
// its own memory: Amiibo requires Keys for every command and UUID for
// GENERATE.
type Extra struct {
	UUID []byte
	Keys *amiibo.DumpedKeyPair
}

// Transform mutates tag memory according to cmd. data and header are nil
// to start from scratch (GENERATE only), or the concrete pointer types
// each kind uses: *ntag215.Data/*ntag21x.Header for NTAG215,
// *mfc1k.Data/*mfc1k.Header for Mifare Classic 1K, *amiibo.Data/
// *ntag21x.Header for Amiibo. The returned data/header are the same
// concrete types, wrapped as any so callers can route them back through
// the format layer without dispatch depending on it.
func Transform(kind tagmodel.TagKind, cmd tagmodel.TransformCommand, data, header any, extra Extra) (any, any, error) {
	switch kind {
	case tagmodel.TagNTAG215:
		d, h, err := asNTAG215(data, header)
		if err != nil {
			return nil, nil, err
		}
		return ntag215.Transform(d, h, cmd)

	case tagmodel.TagMFC1K:
		d, h, err := asMFC1K(data, header)
		if err != nil {
			return nil, nil, err
		}
		return mfc1k.Transform(d, h, cmd)

	case tagmodel.TagAmiibo:
		if extra.Keys == nil {
			return nil, nil, status.New(status.MemoryError, "amiibo transform requires dumped keys")
		}
		d, h, err := asAmiibo(data, header)
		if err != nil {
			return nil, nil, err
		}
		return amiibo.Transform(d, h, cmd, extra.UUID, extra.Keys)

	default:
		return nil, nil, status.New(status.UnknownEnumError, "unknown tag kind")
	}
}

func asNTAG215(data, header any) (*ntag215.Data, *ntag21x.Header, error) {
	var d *ntag215.Data
	var h *ntag21x.Header
	if data != nil {
		var ok bool
		d, ok = data.(*ntag215.Data)
		if !ok {
			return nil, nil, status.New(status.MemoryError, "data is not NTAG215 memory")
		}
	}
	if header != nil {
		var ok bool
		h, ok = header.(*ntag21x.Header)
		if !ok {
			return nil, nil, status.New(status.MemoryError, "header is not an NTAG21x metadata header")
		}
	}
	return d, h, nil
}

func asMFC1K(data, header any) (*mfc1k.Data, *mfc1k.Header, error) {
	var d *mfc1k.Data
	var h *mfc1k.Header
	if data != nil {
		var ok bool
		d, ok = data.(*mfc1k.Data)
		if !ok {
			return nil, nil, status.New(status.MemoryError, "data is not Mifare Classic 1K memory")
		}
	}
	if header != nil {
		var ok bool
		h, ok = header.(*mfc1k.Header)
		if !ok {
			return nil, nil, status.New(status.MemoryError, "header is not a Mifare Classic metadata header")
		}
	}
	return d, h, nil
}

func asAmiibo(data, header any) (*amiibo.Data, *ntag21x.Header, error) {
	var d *amiibo.Data
	var h *ntag21x.Header
	if data != nil {
		var ok bool
		d, ok = data.(*amiibo.Data)
		if !ok {
			return nil, nil, status.New(status.MemoryError, "data is not Amiibo memory")
		}
	}
	if header != nil {
		var ok bool
		h, ok = header.(*ntag21x.Header)
		if !ok {
			return nil, nil, status.New(status.MemoryError, "header is not an NTAG21x metadata header")
		}
	}
	return d, h, nil
}
