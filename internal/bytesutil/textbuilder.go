package bytesutil

import (
	"fmt"
	"strings"
)

// TextBuilder supports amortized-O(1) append of formatted chunks, the way
// the original's appendf (vsnprintf + realloc-doubling) does. strings.Builder
// already grows its backing array by doubling, so TextBuilder is a thin
// named wrapper giving the "append a formatted chunk" call shape the spec
// describes, not a reimplementation of the growth strategy.
type TextBuilder struct {
	sb strings.Builder
}

// Appendf formats according to format and args and appends the result.
func (b *TextBuilder) Appendf(format string, args ...any) {
	fmt.Fprintf(&b.sb, format, args...)
}

// Append appends s verbatim.
func (b *TextBuilder) Append(s string) {
	b.sb.WriteString(s)
}

// String returns the accumulated owned buffer.
func (b *TextBuilder) String() string {
	return b.sb.String()
}

// Len returns the number of bytes accumulated so far.
func (b *TextBuilder) Len() int {
	return b.sb.Len()
}
