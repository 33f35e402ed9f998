package cmd

import (
	"regexp"
	"strconv"
	"strings"
)

// TokenKind is the literal kind of a raw token, decided once before any
// slot tries to match it.
type TokenKind uint8

const (
	TokenString TokenKind = iota
	TokenBool
	TokenInt
	TokenFloat
)

var (
	intLiteral = regexp.MustCompile(`^[+-]?[0-9]+$`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
)

// Token is one whitespace-delimited unit of a command line with its kind.
type Token struct {
	Raw  string
	Kind TokenKind
}

// Classify tags raw with its kind. Priority is bool, int, float, string:
// "true" and "false" (any case) are bools, base-10 integer literals are
// ints even when they overflow, other numeric literals are floats.
func Classify(raw string) Token {
	switch {
	case strings.EqualFold(raw, "true"), strings.EqualFold(raw, "false"):
		return Token{Raw: raw, Kind: TokenBool}
	case intLiteral.MatchString(raw):
		return Token{Raw: raw, Kind: TokenInt}
	case hasDigit.MatchString(raw):
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			return Token{Raw: raw, Kind: TokenFloat}
		}
	}
	return Token{Raw: raw, Kind: TokenString}
}

// Tokenize classifies every raw token in order.
func Tokenize(raw []string) []Token {
	tokens := make([]Token, len(raw))
	for i, r := range raw {
		tokens[i] = Classify(r)
	}
	return tokens
}

// String returns the kind with its indefinite article, as used in
// diagnostics ("an int", "a string").
func (k TokenKind) String() string {
	switch k {
	case TokenBool:
		return "a bool"
	case TokenInt:
		return "an int"
	case TokenFloat:
		return "a float"
	default:
		return "a string"
	}
}

func joinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Raw
	}
	return strings.Join(parts, " ")
}
