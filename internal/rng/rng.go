// Package rng provides the process-scoped RNG handle required by
// internal/ntag21x.RandomizeUID, internal/mfc1k.RandomizeUID and
// internal/amiibo.Generate. It is modeled as an explicit handle behind
// Init/Free rather than a hidden package-level global with no lifecycle,
// per the design note in SPEC_FULL.md §9: initialization is idempotent,
// any draw attempted before Init returns status.DRNGError, and teardown is
// explicit.
package rng

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/Firefox2100/librfidx/internal/cryptoprim"
	"github.com/Firefox2100/librfidx/status"
)

// personalization is the literal string mixed into every context per
// SPEC_FULL.md §6.5 / spec.md §6.5.
const personalization = "rfidx_rng"

// Context is a process-scoped random byte source. The zero value is not
// ready for use; obtain one via Init.
type Context struct {
	mu          sync.Mutex
	initialized bool
	streamKey   [32]byte
	counter     uint16
}

var global Context

// Init seeds the process-scoped context from crypto/rand.Reader, the
// personalization string, and an optional caller-supplied custom entropy
// source. The custom bytes, of any length, are mixed into the seed once,
// here; later draws take fresh entropy from crypto/rand.Reader only and
// do not read the custom source again. Init is idempotent: a second call while already
// initialized is a no-op returning nil, matching the source's behavior of
// checking rfidx_rng_initialized before reseeding.
func Init(customSource []byte) error {
	return global.Init(customSource)
}

// Free tears down the process-scoped context and clears its initialized
// flag.
func Free() {
	global.Free()
}

// Initialized reports whether the process-scoped context is ready.
func Initialized() bool {
	return global.Initialized()
}

// Read draws len(buf) random bytes from the process-scoped context,
// failing with status.DRNGError if it has not been initialized.
func Read(buf []byte) error {
	return global.Read(buf)
}

// Init is the per-instance form used by tests that need an isolated
// context instead of mutating process-wide state.
func (c *Context) Init(customSource []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}

	seed := make([]byte, 0, len(personalization)+len(customSource)+32)
	seed = append(seed, personalization...)
	seed = append(seed, customSource...)

	entropy := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, entropy); err != nil {
		return status.Wrap(status.DRNGError, "failed to read entropy source", err)
	}
	seed = append(seed, entropy...)

	key, err := cryptoprim.HMACSHA256(seed, []byte(personalization))
	if err != nil {
		return status.Wrap(status.DRNGError, "failed to derive stream key", err)
	}
	copy(c.streamKey[:], key)
	c.counter = 0
	c.initialized = true
	return nil
}

func (c *Context) Free() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.streamKey {
		c.streamKey[i] = 0
	}
	c.counter = 0
	c.initialized = false
}

func (c *Context) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

func (c *Context) Read(buf []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return status.New(status.DRNGError, "rng context not initialized")
	}
	if len(buf) == 0 {
		return nil
	}

	seed := make([]byte, 8)
	seed[0] = byte(c.counter >> 8)
	seed[1] = byte(c.counter)
	fresh := make([]byte, 4)
	if _, err := io.ReadFull(rand.Reader, fresh); err != nil {
		return status.Wrap(status.DRNGError, "entropy source failed", err)
	}
	copy(seed[2:], fresh)
	c.counter++

	stream, err := cryptoprim.ExpandHMACCTR(c.streamKey[:], seed, len(buf))
	if err != nil {
		return status.Wrap(status.DRNGError, "stream expansion failed", err)
	}
	copy(buf, stream)
	return nil
}
