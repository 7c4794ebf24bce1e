package emit

// Keyed shortcuts pair a String(key) call with a value call: the
// emitter's own separator state machine (prefix, in emit.go) already
// alternates ':' after a key and ',' before the next key, so these are
// thin conveniences, not a separate code path (spec.md §4.3's
// key_<type> operations).

// KeyString emits key, then val as a quoted string value.
func (e *Emitter) KeyString(key, val string) {
	e.String(key)
	e.String(val)
}

// KeyBytes emits key, then val as a quoted string value.
func (e *Emitter) KeyBytes(key string, val []byte) {
	e.String(key)
	e.Bytes(val)
}

// KeyInteger emits key, then val as a bare integer.
func (e *Emitter) KeyInteger(key string, val int64) {
	e.String(key)
	e.Integer(val)
}

// KeyNumber emits key, then val as a JSON number.
func (e *Emitter) KeyNumber(key string, val float64) {
	e.String(key)
	e.Number(val)
}

// KeyBool emits key, then val as true or false.
func (e *Emitter) KeyBool(key string, val bool) {
	e.String(key)
	e.Bool(val)
}

// KeyTrue emits key, then the literal true.
func (e *Emitter) KeyTrue(key string) {
	e.String(key)
	e.True()
}

// KeyFalse emits key, then the literal false.
func (e *Emitter) KeyFalse(key string) {
	e.String(key)
	e.False()
}

// KeyNull emits key, then the literal null.
func (e *Emitter) KeyNull(key string) {
	e.String(key)
	e.Null()
}

// KeyLiteral emits key, then buf verbatim as the value.
func (e *Emitter) KeyLiteral(key string, buf []byte) {
	e.String(key)
	e.Literal(buf)
}

// KeyObjectOpen emits key, then opens a nested object as its value.
func (e *Emitter) KeyObjectOpen(key string) {
	e.String(key)
	e.ObjectOpen()
}

// KeyArrayOpen emits key, then opens a nested array as its value.
func (e *Emitter) KeyArrayOpen(key string) {
	e.String(key)
	e.ArrayOpen()
}
