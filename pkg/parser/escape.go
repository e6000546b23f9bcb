package parser

import "strconv"

// decodeEscape decodes a single C++ escape sequence starting at body[0]
// == '\\', returning the decoded rune, how many bytes of body it
// consumed, whether it decoded cleanly, and an error for a malformed
// sequence.
func decodeEscape(body string) (rune, int, bool, error) {
	if len(body) < 2 {
		return 0, 0, false, newParseError("escape-sequence", 0, "truncated escape sequence")
	}
	switch body[1] {
	case 'n':
		return '\n', 2, true, nil
	case 't':
		return '\t', 2, true, nil
	case 'r':
		return '\r', 2, true, nil
	case '0':
		return 0, 2, true, nil
	case '\\':
		return '\\', 2, true, nil
	case '\'':
		return '\'', 2, true, nil
	case '"':
		return '"', 2, true, nil
	case 'a':
		return '\a', 2, true, nil
	case 'b':
		return '\b', 2, true, nil
	case 'f':
		return '\f', 2, true, nil
	case 'v':
		return '\v', 2, true, nil
	case 'x':
		j := 2
		for j < len(body) && isHexDigit(body[j]) {
			j++
		}
		if j == 2 {
			return 0, 0, false, newParseError("escape-sequence", 0, "\\x escape with no hex digits")
		}
		v, err := strconv.ParseInt(body[2:j], 16, 32)
		if err != nil {
			return 0, 0, false, newParseError("escape-sequence", 0, "invalid \\x escape")
		}
		return rune(v), j, true, nil
	default:
		if body[1] >= '0' && body[1] <= '7' {
			j := 1
			for j < len(body) && j < 4 && body[j] >= '0' && body[j] <= '7' {
				j++
			}
			v, err := strconv.ParseInt(body[1:j], 8, 32)
			if err != nil {
				return 0, 0, false, newParseError("escape-sequence", 0, "invalid octal escape")
			}
			return rune(v), j, true, nil
		}
		return 0, 0, false, newParseError("escape-sequence", 0, "unknown escape sequence")
	}
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
