package token

// parseObject recognizes a JSON object, per spec.md §4.1. Direct
// children alternate key (string) / value per invariant 6; this
// recognizer enforces that shape directly rather than leaving it to a
// later validation pass.
func (s *scanner) parseObject(level int) error {
	idx, err := s.reserve(KindObject, level)
	if err != nil {
		return err
	}
	s.pos++ // consume '{'

	first := true
	for {
		if err := s.skipWhitespace(); err != nil {
			return err
		}
		b, ok := s.peek()
		if !ok {
			return newParseError(CodeIncomplete, s.pos)
		}
		if b == '}' {
			s.pos++
			return s.finish(idx, KindNone)
		}
		if !first {
			if b != ',' {
				return newParseError(CodeBadFormat, s.pos)
			}
			s.pos++
			if err := s.skipWhitespace(); err != nil {
				return err
			}
			b, ok = s.peek()
			if !ok {
				return newParseError(CodeIncomplete, s.pos)
			}
		}
		if b != '"' {
			return newParseError(CodeBadFormat, s.pos)
		}
		if err := s.parseString(level + 1); err != nil {
			return err
		}

		if err := s.skipWhitespace(); err != nil {
			return err
		}
		cb, ok := s.peek()
		if !ok {
			return newParseError(CodeIncomplete, s.pos)
		}
		if cb != ':' {
			return newParseError(CodeBadFormat, s.pos)
		}
		s.pos++

		if err := s.skipWhitespace(); err != nil {
			return err
		}
		if _, ok := s.peek(); !ok {
			return newParseError(CodeIncomplete, s.pos)
		}
		if err := s.parseElement(level + 1); err != nil {
			return err
		}

		first = false
	}
}

// parseArray recognizes a JSON array, per spec.md §4.1. Unlike
// parseObject it imposes no alternation constraint on its children.
func (s *scanner) parseArray(level int) error {
	idx, err := s.reserve(KindArray, level)
	if err != nil {
		return err
	}
	s.pos++ // consume '['

	first := true
	for {
		if err := s.skipWhitespace(); err != nil {
			return err
		}
		b, ok := s.peek()
		if !ok {
			return newParseError(CodeIncomplete, s.pos)
		}
		if b == ']' {
			s.pos++
			return s.finish(idx, KindNone)
		}
		if !first {
			if b != ',' {
				return newParseError(CodeBadFormat, s.pos)
			}
			s.pos++
			if err := s.skipWhitespace(); err != nil {
				return err
			}
			if _, ok := s.peek(); !ok {
				return newParseError(CodeIncomplete, s.pos)
			}
		}
		if err := s.parseElement(level + 1); err != nil {
			return err
		}
		first = false
	}
}
