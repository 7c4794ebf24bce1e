package token

// parseLiteral matches one of the three JSON keywords byte-for-byte,
// per spec.md §4.1.
func (s *scanner) parseLiteral(level int, literal string, kind Kind) error {
	idx, err := s.reserve(kind, level)
	if err != nil {
		return err
	}
	for i := 0; i < len(literal); i++ {
		b, ok := s.peek()
		if !ok {
			return newParseError(CodeIncomplete, s.pos)
		}
		if b != literal[i] {
			return newParseError(CodeBadFormat, s.pos)
		}
		s.pos++
	}
	return s.finish(idx, KindNone)
}
