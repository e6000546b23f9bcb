package parser

import "regexp"

// unaryOps lists the prefix unary operators accepted before a
// cast-expression, longest spelling first so the greedy string match in
// expr.go never stops short (e.g. "++" before "+").
var unaryOps = []string{
	"++", "--", "*", "&", "+", "-", "!", "not", "~", "compl",
}

// assignmentOps lists every assignment-expression operator, "=" first,
// then the compound forms.
var assignmentOps = []string{
	"=", "*=", "/=", "%=", "+=", "-=", ">>=", "<<=", "&=", "and_eq",
	"^=", "xor_eq", "|=", "or_eq",
}

// binOpLevel is one precedence level of the binary-operator grammar,
// evaluated left-associatively except where noted; the table's order IS
// the precedence order, grounded on _parser.py's "_expression_bin_ops"
// (spec §4.4).
type binOpLevel struct {
	ops      []string
	opRegexp *regexp.Regexp
}

func mkLevel(ops ...string) binOpLevel {
	return binOpLevel{ops: ops}
}

// binOpLevels runs from lowest to highest precedence: logical-or down to
// pointer-to-member. "&&"/"&" and "<<"/"<" ambiguities are handled by
// matching the longer spelling first within a level.
var binOpLevels = []binOpLevel{
	mkLevel("||", "or"),
	mkLevel("&&", "and"),
	mkLevel("|", "bitor"),
	mkLevel("^", "xor"),
	mkLevel("&", "bitand"),
	mkLevel("==", "!=", "not_eq"),
	mkLevel("<=>"),
	mkLevel("<=", ">=", "<", ">"),
	mkLevel("<<", ">>"),
	mkLevel("+", "-"),
	mkLevel("*", "/", "%"),
	mkLevel(".*", "->*"),
}

// foldOperators lists every operator a fold-expression may use, shared
// with the binary-operator table plus comma.
var foldOperators = []string{
	"||", "&&", "|", "^", "&", "==", "!=", "<=>", "<=", ">=", "<", ">",
	"<<", ">>", "+", "-", "*", "/", "%", ".*", "->*", ",",
	"=", "*=", "/=", "%=", "+=", "-=", ">>=", "<<=", "&=", "^=", "|=",
}

// builtinOperatorTokens lists operator-id spellings after the "operator"
// keyword, longest first, plus the two bracketed forms ("[]", "()")
// handled separately by the caller.
var builtinOperatorTokens = []string{
	"<=>", "->*", "->", "++", "--", "<<=", ">>=", "<<", ">>",
	"==", "!=", "<=", ">=", "&&", "||", "+=", "-=", "*=", "/=", "%=",
	"^=", "&=", "|=", "+", "-", "*", "/", "%", "^", "&", "|", "~", "!",
	"=", "<", ">", ",",
}

// storageClassKeywords lists the storage-class keywords of decl-specs
// parsing (spec §4.8).
var storageClassKeywords = []string{"static", "extern", "register"}

// validDirectiveKinds is the closed set of directive-kind spellings a
// declaration may be tagged with, distinct from (and more specific
// than) its objectType: e.g. an objectType of "class" may have been
// written under a "struct" directive, and "enum" covers both
// "enum-struct" and "enum-class" (spec §3, _parser.py:2001-2004).
// "namespace" is not one of the original directive spellings (the
// reference parser routes namespaces through a dedicated entry point
// with no directiveType at all); this port folds namespace parsing into
// the general declaration path, so "namespace" is carried here too.
var validDirectiveKinds = map[string]bool{
	"class": true, "struct": true, "union": true, "function": true,
	"member": true, "var": true, "type": true, "concept": true,
	"enum": true, "enum-struct": true, "enum-class": true, "enumerator": true,
	"namespace": true,
}

// fundamentalTypeWords is every token that can appear in a fundamental
// type-specifier sequence.
var fundamentalTypeWords = map[string]bool{
	"void": true, "bool": true, "char": true, "wchar_t": true,
	"char8_t": true, "char16_t": true, "char32_t": true,
	"int": true, "float": true, "double": true,
	"signed": true, "unsigned": true, "short": true, "long": true,
	"__int64": true, "__int128": true, "_Bool": true,
	"__float80": true, "_Float64x": true, "__float128": true, "_Float128": true,
	"_Complex": true, "_Imaginary": true,
}

// canonicalizeFundamental normalizes a raw run of fundamental-type
// tokens into the [modifier, signedness, width..., base] order used for
// comparison (base omitted when no base token was present), applying
// the same mutual-exclusion rules as "_parse_simple_type_specifiers":
// at most one of "_Complex"/"_Imaginary", at most one signedness
// keyword, at most two "long", "short" incompatible with "long" or
// "double" (long double is fine), and a base type compatible with the
// modifiers seen. It returns nil if the combination is invalid.
func canonicalizeFundamental(words []string) []string {
	var modifier, signedness, base string
	var longCount int
	var short bool

	for _, w := range words {
		switch w {
		case "_Complex", "_Imaginary":
			if modifier != "" && modifier != w {
				return nil
			}
			modifier = w
		case "signed", "unsigned":
			if signedness != "" && signedness != w {
				return nil
			}
			signedness = w
		case "short":
			if short || longCount > 0 {
				return nil
			}
			short = true
		case "long":
			longCount++
			if longCount > 2 || short {
				return nil
			}
		default:
			if base != "" && base != w {
				return nil
			}
			base = w
		}
	}

	switch base {
	case "int":
		if modifier != "" {
			return nil
		}
	case "char":
		if modifier != "" || short || longCount > 0 {
			return nil
		}
	case "__int64", "__int128":
		if modifier != "" || short || longCount > 0 {
			return nil
		}
	case "float":
		if short || longCount > 0 || signedness != "" {
			return nil
		}
	case "double":
		if short || longCount > 1 || signedness != "" {
			return nil
		}
	case "void", "bool", "wchar_t", "char8_t", "char16_t", "char32_t",
		"_Bool", "__float80", "_Float64x", "__float128", "_Float128":
		if modifier != "" || short || longCount > 0 || signedness != "" {
			return nil
		}
	case "":
		// No base token: bare signed/unsigned/short/long, implying int.
		// A modifier needs a floating-point base to attach to.
		if modifier != "" {
			return nil
		}
	default:
		return nil
	}

	var out []string
	if modifier != "" {
		out = append(out, modifier)
	}
	if signedness != "" {
		out = append(out, signedness)
	}
	if short {
		out = append(out, "short")
	}
	for i := 0; i < longCount; i++ {
		out = append(out, "long")
	}
	if base != "" {
		out = append(out, base)
	}
	return out
}
