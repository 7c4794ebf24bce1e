// Package keyset is an opt-in diagnostic for finding duplicate keys in
// one JSON object's direct children after a token.Parse. The tokenizer
// itself accepts duplicate keys "without comment" (spec.md §4.1) — by
// design it never allocates a map to check — so this lives outside the
// core as a caller-invoked pass over an already-populated token array.
package keyset

import (
	"errors"

	"github.com/dchest/siphash"

	"github.com/rdpoor/mu-json/token"
)

// Slot is one entry in a caller-supplied open-addressing table used by
// Scan. The caller owns the backing array, in keeping with the rest of
// this module's caller-owns-memory discipline.
type Slot struct {
	used  bool
	hash  uint64
	index int // token index of the key this hash was computed from
}

// Report summarizes the duplicate keys found by Scan. Duplicates are
// appended in the order their keys are visited (left to right through
// the object's children), which is already ascending token-index
// order.
type Report struct {
	Duplicates []int
}

var (
	// ErrNotObject is returned when Scan is asked to scan a token that
	// is not an OBJECT.
	ErrNotObject = errors.New("keyset: token is not an object")
	// ErrTableFull is returned when table has no room left for a key
	// that is not already present in it.
	ErrTableFull = errors.New("keyset: table has no room for another key")
)

// Fixed, arbitrary hash seeds; any seed works, it only needs to be
// consistent between calls within a single Scan.
const (
	seed0 uint64 = 0x6d756a736f6e6b79 // "mujsonky"
	seed1 uint64 = 0x6579736574746162 // "eysettab"
)

// hashKey hashes a key token's raw byte span, quotes included, directly
// off the input buffer: no string conversion, no copy. Grounded on
// SnellerInc-sneller/ion/zion/zll/hash.go's Hash64, which hashes a
// symbol's raw byte encoding the same way with siphash.Hash.
func hashKey(input []byte, key token.Token) uint64 {
	return siphash.Hash(seed0, seed1, key.Text(input))
}

// Scan walks object's direct children — tokens must be the slice a
// token.Parse call produced, and object must index an OBJECT token
// within it — and reports which key tokens repeat an earlier key in
// the same object, per spec.md invariant 6 (even-indexed children are
// keys). table is a caller-supplied open-addressing backing store;
// Scan clears it on entry and never grows it, so its size is the limit
// on how many distinct keys a single Scan call can track.
//
// Two keys that are byte-identical after escape decoding but differ
// in their raw escaped form (e.g. "\/" vs "/") are treated as
// distinct: like the tokenizer, this package never decodes escapes;
// it compares keys only by the hash of their raw bytes (spec.md §1).
func Scan(input []byte, tokens []token.Token, object int, table []Slot) (Report, error) {
	if tokens[object].Kind() != token.KindObject {
		return Report{}, ErrNotObject
	}
	for i := range table {
		table[i] = Slot{}
	}

	var report Report
	pos := 0
	for c := token.Child(tokens, object); c != -1; c = token.SiblingNext(tokens, c) {
		isKey := pos%2 == 0
		pos++
		if !isKey {
			continue
		}
		h := hashKey(input, tokens[c])
		slot, found, err := probe(table, h)
		if err != nil {
			return Report{}, err
		}
		if found {
			report.Duplicates = append(report.Duplicates, c)
			continue
		}
		table[slot] = Slot{used: true, hash: h, index: c}
	}

	return report, nil
}

// probe performs linear-probing open addressing over table, returning
// the slot a hash belongs in and whether that hash was already present.
func probe(table []Slot, h uint64) (int, bool, error) {
	if len(table) == 0 {
		return 0, false, ErrTableFull
	}
	start := int(h % uint64(len(table)))
	for i := 0; i < len(table); i++ {
		idx := (start + i) % len(table)
		if !table[idx].used {
			return idx, false, nil
		}
		if table[idx].hash == h {
			return idx, true, nil
		}
	}
	return 0, false, ErrTableFull
}
