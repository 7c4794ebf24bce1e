// Package corpus synthesizes small JSON documents for benchmarking the
// token package, round-tripping them through zstd so the benchmark
// input arrives the way a constrained ingestion pipeline would see it:
// compressed on the wire, decompressed into a bounded buffer, then
// tokenized. Grounded on SnellerInc-sneller/jsonrl/parse_test.go, which
// decompresses .zst test fixtures with github.com/klauspost/compress/zstd
// before parsing them.
package corpus

import (
	"fmt"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Generate synthesizes a JSON array of n small objects, representative
// of a batch of structured log records.
func Generate(n int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"id":%d,"name":"record-%d","active":%v,"score":%.2f,"tags":["a","b","c"]}`,
			i, i, i%2 == 0, float64(i)*1.5)
	}
	b.WriteByte(']')
	return b.String()
}

// Compressed synthesizes n records (via Generate) and returns them
// zstd-compressed.
func Compressed(n int) ([]byte, error) {
	doc := Generate(n)
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("corpus: new zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll([]byte(doc), nil), nil
}

// Decompress inflates a zstd-compressed document produced by
// Compressed into dst, a caller-supplied fixed-size buffer, and
// returns the number of decompressed bytes written. It fails rather
// than growing dst, matching the fixed-buffer discipline the token
// package itself follows.
func Decompress(dst []byte, compressed []byte) (int, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return 0, fmt.Errorf("corpus: new zstd decoder: %w", err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(compressed, dst[:0])
	if err != nil {
		return 0, fmt.Errorf("corpus: decode: %w", err)
	}
	if len(out) > len(dst) {
		return 0, fmt.Errorf("corpus: decompressed size %d exceeds buffer size %d", len(out), len(dst))
	}
	if len(out) > 0 && &out[0] != &dst[0] {
		copy(dst, out)
	}
	return len(out), nil
}
