package emit

import "strconv"

const hexDigits = "0123456789abcdef"

// writeEscaped writes one input byte as JSON string content: bytes
// below 0x20 or at/above 0x7F are written as "\u00XX" (spec.md §4.3
// string quoting; only ASCII is ever produced, matching the
// tokenizer's ASCII-only, NO_MULTIBYTE stance), '"' and '\\' are
// backslash-escaped, everything else is written verbatim.
func (e *Emitter) writeEscaped(b byte) {
	switch {
	case b < 0x20 || b >= 0x7F:
		e.emit('\\')
		e.emit('u')
		e.emit('0')
		e.emit('0')
		e.emit(hexDigits[b>>4])
		e.emit(hexDigits[b&0x0F])
	case b == '"' || b == '\\':
		e.emit('\\')
		e.emit(b)
	default:
		e.emit(b)
	}
}

// String emits s as a quoted, escaped JSON string value.
func (e *Emitter) String(s string) {
	e.prefix()
	e.emit('"')
	for i := 0; i < len(s); i++ {
		e.writeEscaped(s[i])
	}
	e.emit('"')
}

// Bytes emits buf as a quoted, escaped JSON string value. It exists
// alongside String because spec.md §4.3 lists string and bytes as
// distinct operations (a NUL-terminated string vs. an explicit-length
// byte span in the embedded original); in Go both a string and a
// []byte already carry their own length and may contain any byte, so
// the two methods differ only in the caller's preferred argument type.
func (e *Emitter) Bytes(buf []byte) {
	e.prefix()
	e.emit('"')
	for _, b := range buf {
		e.writeEscaped(b)
	}
	e.emit('"')
}

// Integer emits i as a bare JSON integer literal.
func (e *Emitter) Integer(i int64) {
	e.prefix()
	var buf [20]byte
	e.emitBytes(strconv.AppendInt(buf[:0], i, 10))
}

// Number emits d as a JSON number. If d round-trips exactly through
// int64 (no fractional part, within range), it is emitted as a bare
// integer so that number(3.0) and integer(3) produce identical output
// (spec.md §4.3, §8 scenario D); otherwise it is emitted with the
// shortest decimal representation that reproduces d.
func (e *Emitter) Number(d float64) {
	if i := int64(d); float64(i) == d {
		e.Integer(i)
		return
	}
	e.prefix()
	var buf [32]byte
	e.emitBytes(strconv.AppendFloat(buf[:0], d, 'g', -1, 64))
}

// Bool emits the JSON literal true or false.
func (e *Emitter) Bool(b bool) {
	if b {
		e.True()
		return
	}
	e.False()
}

// True emits the bare JSON literal true.
func (e *Emitter) True() { e.Literal(trueLiteral) }

// False emits the bare JSON literal false.
func (e *Emitter) False() { e.Literal(falseLiteral) }

// Null emits the bare JSON literal null.
func (e *Emitter) Null() { e.Literal(nullLiteral) }

var (
	trueLiteral  = []byte("true")
	falseLiteral = []byte("false")
	nullLiteral  = []byte("null")
)

// Literal emits buf verbatim as a single value, with no quoting or
// escaping. The caller is responsible for buf being valid JSON (a
// number, or one of true/false/null) — this is the escape hatch used
// internally by True/False/Null and available to callers who already
// hold a pre-formatted literal.
func (e *Emitter) Literal(buf []byte) {
	e.prefix()
	e.emitBytes(buf)
}
