package emit

import "bytes"

// NewBuffer returns a Sink that appends every emitted byte to buf.
// This is the 90% case described in SPEC_FULL.md §4: nearly every
// realistic Go caller wants to collect emitted JSON into a growable
// buffer rather than write its own byte-at-a-time sink, and it still
// goes through the exact same Sink contract as any other sink.
func NewBuffer(buf *bytes.Buffer) Sink {
	return func(b byte) {
		buf.WriteByte(b)
	}
}
