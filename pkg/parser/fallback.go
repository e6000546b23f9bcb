package parser

// bracketPairs maps each opening bracket to its closer, used by the
// fallback expression scanner (spec §4.5).
var bracketPairs = map[byte]byte{
	'(': ')', '{': '}', '[': ']', '<': '>',
}

// parseExpressionFallback recovers verbatim text for an expression that
// failed strict parsing, by scanning forward while tracking a stack of
// open brackets from bracketPairs and stopping at the first character in
// endChars seen while the stack is empty (spec §4.5
// "_parse_expression_fallback"). It never fails: if nothing can be
// consumed before an end character, it returns the empty string.
func (p *Parser) parseExpressionFallback(s *state, endChars map[byte]bool) string {
	start := s.snapshot()
	var stack []byte
	for !s.eof() {
		c := s.text[s.pos]
		if len(stack) == 0 && endChars[c] {
			break
		}
		if closer, ok := bracketPairs[c]; ok {
			stack = append(stack, closer)
			s.pos++
			continue
		}
		if len(stack) > 0 && c == stack[len(stack)-1] {
			stack = stack[:len(stack)-1]
			s.pos++
			continue
		}
		s.pos++
	}
	text := s.text[start:s.pos]
	return trimSpace(text)
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && isSpaceByte(s[i]) {
		i++
	}
	for j > i && isSpaceByte(s[j-1]) {
		j--
	}
	return s[i:j]
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
