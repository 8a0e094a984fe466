package code

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is a parsed "function.nature[.subaccount]" account code.
// The sub-account segment stays a string: explicit taxonomy codes may carry
// alphanumeric sub-segments, while reconciliation keys use the integer form.
type Code struct {
	Function   int
	Nature     int
	SubAccount string // "" when absent
}

// ParseError describes a malformed account code string.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid account code %q: %s", e.Input, e.Reason)
}

// Parse parses a dotted account code like "720.351" or "460.352.1".
// Whitespace around the code is trimmed first.
func Parse(s string) (Code, error) {
	trimmed := strings.TrimSpace(s)
	parts := strings.Split(trimmed, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Code{}, &ParseError{Input: s, Reason: "expected 2 or 3 dot-separated parts"}
	}

	function, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Code{}, &ParseError{Input: s, Reason: "function is not an integer"}
	}
	nature, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Code{}, &ParseError{Input: s, Reason: "nature is not an integer"}
	}

	c := Code{Function: function, Nature: nature}
	if len(parts) == 3 {
		sub := strings.TrimSpace(parts[2])
		if sub == "" {
			return Code{}, &ParseError{Input: s, Reason: "empty sub-account segment"}
		}
		c.SubAccount = sub
	}
	return c, nil
}

// MustParse parses a code and panics on failure. Reserved for static
// taxonomy tables, where a malformed code is a programming error.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders the code back to its dotted form.
// Parse(c.String()) == c for every valid code.
func (c Code) String() string {
	if c.SubAccount == "" {
		return fmt.Sprintf("%d.%d", c.Function, c.Nature)
	}
	return fmt.Sprintf("%d.%d.%s", c.Function, c.Nature, c.SubAccount)
}
