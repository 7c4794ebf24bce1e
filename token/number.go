package token

// parseNumber recognizes a JSON number, per spec.md §4.1. A number
// token starts as KindInteger and is promoted to KindNumber iff it
// carries a fractional part or an exponent.
func (s *scanner) parseNumber(level int) error {
	idx, err := s.reserve(KindInteger, level)
	if err != nil {
		return err
	}

	if b, ok := s.peek(); ok && b == '-' {
		s.pos++
	}

	b, ok := s.peek()
	if !ok {
		return newParseError(CodeIncomplete, s.pos)
	}
	if !isDigit(b) {
		return newParseError(CodeBadFormat, s.pos)
	}

	if b == '0' {
		s.pos++
		if nb, ok := s.peek(); ok && isDigit(nb) {
			return newParseError(CodeBadFormat, s.pos)
		}
	} else {
		for {
			d, ok := s.peek()
			if !ok || !isDigit(d) {
				break
			}
			s.pos++
		}
	}

	promoted := KindNone

	if fb, ok := s.peek(); ok && fb == '.' {
		s.pos++
		n := 0
		for {
			d, ok := s.peek()
			if !ok || !isDigit(d) {
				break
			}
			s.pos++
			n++
		}
		if n == 0 {
			return newParseError(CodeBadFormat, s.pos)
		}
		promoted = KindNumber
	}

	if eb, ok := s.peek(); ok && (eb == 'e' || eb == 'E') {
		s.pos++
		if sb, ok := s.peek(); ok && (sb == '+' || sb == '-') {
			s.pos++
		}
		n := 0
		for {
			d, ok := s.peek()
			if !ok || !isDigit(d) {
				break
			}
			s.pos++
			n++
		}
		if n == 0 {
			return newParseError(CodeBadFormat, s.pos)
		}
		promoted = KindNumber
	}

	return s.finish(idx, promoted)
}
