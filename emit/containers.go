package emit

// ObjectOpen emits '{' and, if the level stack has room, pushes a new
// object level. Pushing past the stack's capacity is silently
// suppressed: the bracket is still emitted but the level is not
// pushed, so item counts at the overflow depth are no longer tracked
// (spec.md §4.3, §7) — the emitter favors staying alive over aborting.
func (e *Emitter) ObjectOpen() {
	e.open('{', true)
}

// ArrayOpen emits '[' and pushes a new array level, under the same
// overflow rule as ObjectOpen.
func (e *Emitter) ArrayOpen() {
	e.open('[', false)
}

func (e *Emitter) open(bracket byte, isObject bool) {
	e.prefix()
	e.emit(bracket)
	if e.depth+1 < len(e.levels) {
		e.depth++
		e.levels[e.depth] = Level{IsObject: isObject}
	}
}

// ObjectClose emits '}' and pops the current level, guarded against
// underflow (closing at depth 0 just emits the bracket).
func (e *Emitter) ObjectClose() {
	e.close('}')
}

// ArrayClose emits ']' and pops the current level, under the same
// underflow guard as ObjectClose.
func (e *Emitter) ArrayClose() {
	e.close(']')
}

func (e *Emitter) close(bracket byte) {
	e.emit(bracket)
	if e.depth > 0 {
		e.depth--
	}
}
