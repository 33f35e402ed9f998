package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SpanRest marks a type that consumes every remaining token.
const SpanRest = -1

// Type is a type tag an argument slot can accept. Match is the cheap
// predicate, Parse the coercion; a Parse error after a successful Match is
// reported the same way as a mismatch.
type Type interface {
	Name() string
	Match(tok Token) bool
	Parse(tok Token) (any, error)
}

// Spanner is implemented by types that consume more than one token. The
// tokens are joined with single spaces into one token before matching.
type Spanner interface {
	Span() int
}

// ErrRejected marks a Parse error as a domain rejection rather than a
// malformed value. Such errors are reported as InvalidArguments with the
// error text as detail.
var ErrRejected = errors.New("argument rejected")

func spanOf(t Type) int {
	if s, ok := t.(Spanner); ok {
		return s.Span()
	}
	return 1
}

// Built-in types.
var (
	Integer  Type = integerType{}
	Float    Type = floatType{}
	Boolean  Type = booleanType{}
	String   Type = stringType{}
	Rest     Type = textType{}
	Duration Type = durationType{}
	Position Type = positionType{}
)

type integerType struct{}

func (integerType) Name() string         { return "int" }
func (integerType) Match(tok Token) bool { return tok.Kind == TokenInt }
func (integerType) Parse(tok Token) (any, error) {
	n, err := strconv.ParseInt(tok.Raw, 10, 0)
	if err != nil {
		return nil, err
	}
	return int(n), nil
}

type floatType struct{}

func (floatType) Name() string { return "float" }
func (floatType) Match(tok Token) bool {
	return tok.Kind == TokenFloat || tok.Kind == TokenInt
}
func (floatType) Parse(tok Token) (any, error) {
	return strconv.ParseFloat(tok.Raw, 64)
}

type booleanType struct{}

func (booleanType) Name() string         { return "bool" }
func (booleanType) Match(tok Token) bool { return tok.Kind == TokenBool }
func (booleanType) Parse(tok Token) (any, error) {
	return strconv.ParseBool(strings.ToLower(tok.Raw))
}

type stringType struct{}

func (stringType) Name() string                 { return "string" }
func (stringType) Match(Token) bool             { return true }
func (stringType) Parse(tok Token) (any, error) { return tok.Raw, nil }

type textType struct{}

func (textType) Name() string                 { return "text" }
func (textType) Match(Token) bool             { return true }
func (textType) Parse(tok Token) (any, error) { return tok.Raw, nil }
func (textType) Span() int                    { return SpanRest }

type durationType struct{}

func (durationType) Name() string { return "duration" }
func (durationType) Match(tok Token) bool {
	_, err := time.ParseDuration(tok.Raw)
	return err == nil
}
func (durationType) Parse(tok Token) (any, error) {
	return time.ParseDuration(tok.Raw)
}

// Vec3 is the value produced by the Position type.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) String() string {
	return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z)
}

type positionType struct{}

func (positionType) Name() string { return "position" }
func (positionType) Span() int    { return 3 }
func (positionType) Match(tok Token) bool {
	fields := strings.Fields(tok.Raw)
	if len(fields) != 3 {
		return false
	}
	for _, f := range fields {
		if k := Classify(f).Kind; k != TokenInt && k != TokenFloat {
			return false
		}
	}
	return true
}
func (positionType) Parse(tok Token) (any, error) {
	fields := strings.Fields(tok.Raw)
	var xyz [3]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		xyz[i] = n
	}
	return Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

type enumType struct {
	name   string
	values []string
}

// Enum accepts one of values, compared case-insensitively. The parsed value
// is the declared spelling.
func Enum(name string, values ...string) Type {
	return enumType{name: name, values: values}
}

func (e enumType) Name() string { return e.name }
func (e enumType) Match(tok Token) bool {
	_, ok := e.lookup(tok.Raw)
	return ok
}
func (e enumType) Parse(tok Token) (any, error) {
	if v, ok := e.lookup(tok.Raw); ok {
		return v, nil
	}
	return nil, fmt.Errorf("%q is not one of %s", tok.Raw, strings.Join(e.values, ", "))
}
func (e enumType) lookup(raw string) (string, bool) {
	for _, v := range e.values {
		if strings.EqualFold(v, raw) {
			return v, true
		}
	}
	return "", false
}

// Values returns the accepted spellings.
func (e enumType) Values() []string {
	return append([]string(nil), e.values...)
}

type intRangeType struct {
	min, max int
}

// IntRange is an int bounded to [min, max]. Out-of-range values are
// rejected with ErrRejected.
func IntRange(min, max int) Type {
	return intRangeType{min: min, max: max}
}

func (r intRangeType) Name() string         { return "int" }
func (r intRangeType) Match(tok Token) bool { return tok.Kind == TokenInt }
func (r intRangeType) Parse(tok Token) (any, error) {
	v, err := Integer.Parse(tok)
	if err != nil {
		return nil, err
	}
	n := v.(int)
	if n < r.min || n > r.max {
		return nil, fmt.Errorf("%w: must be between %d and %d", ErrRejected, r.min, r.max)
	}
	return n, nil
}
