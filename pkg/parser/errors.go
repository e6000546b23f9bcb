package parser

import "strings"

// ParseError is a single failed parse attempt at some position, paired
// with a human label describing what was being attempted. The parser
// never panics on malformed input; every failure path returns one of
// these (or a MultiError composing several), mirroring the original's
// DefinitionError without relying on exceptions for control flow (spec
// §4.2, §7).
type ParseError struct {
	Label   string
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	if e.Label == "" {
		return e.Message
	}
	return e.Label + ": " + e.Message
}

func newParseError(label string, pos int, message string) *ParseError {
	return &ParseError{Label: label, Pos: pos, Message: message}
}

// MultiError composes the errors from every alternative tried at one
// speculation point, so a caller gets the full "here is why each
// possibility failed" picture instead of only the first or last
// attempt (spec §4.2 "_make_multi_error").
type MultiError struct {
	Header  string
	Options []error
}

func (e *MultiError) Error() string {
	var b strings.Builder
	if e.Header != "" {
		b.WriteString(e.Header)
		b.WriteString(": ")
	}
	for i, opt := range e.Options {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(opt.Error())
	}
	return b.String()
}

// makeMultiError builds a MultiError from (label, err) pairs, dropping
// any nil error and collapsing to the lone remaining error when only one
// alternative was attempted - matching the original's behavior of never
// wrapping a single failure in a multi-error shell.
func makeMultiError(header string, pairs ...labeledErr) error {
	var opts []error
	for _, p := range pairs {
		if p.err == nil {
			continue
		}
		if p.label != "" {
			opts = append(opts, newParseError(p.label, 0, p.err.Error()))
		} else {
			opts = append(opts, p.err)
		}
	}
	switch len(opts) {
	case 0:
		return nil
	case 1:
		return opts[0]
	default:
		return &MultiError{Header: header, Options: opts}
	}
}

type labeledErr struct {
	label string
	err   error
}
