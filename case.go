package humps

import (
	"strings"
)

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isSeparator(c byte) bool {
	return c == '-' || c == '_' || isSpace(c)
}

func toUpper(c byte) byte {
	if isLower(c) {
		return c - 'a' + 'A'
	}
	return c
}

func toLower(c byte) byte {
	if isUpper(c) {
		return c - 'A' + 'a'
	}
	return c
}

func lowerFirst(s string) string {
	if s == "" || !isUpper(s[0]) {
		return s
	}
	return string(toLower(s[0])) + s[1:]
}

func upperFirst(s string) string {
	if s == "" || !isLower(s[0]) {
		return s
	}
	return string(toUpper(s[0])) + s[1:]
}

// Camelize converts s to camelCase: every run of '-', '_' or whitespace is
// removed and the character after it is uppercased. The first character is
// always lowercase. Numeric strings are returned unchanged.
func Camelize(s string) string {
	if isNumerical(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	upperNext := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSeparator(c) {
			upperNext = true
			continue
		}
		if upperNext {
			c = toUpper(c)
			upperNext = false
		}
		b.WriteByte(c)
	}
	return lowerFirst(b.String())
}

// Pascalize is Camelize with the first character uppercased.
func Pascalize(s string) string {
	return upperFirst(Camelize(s))
}

// Decamelize converts a camelCase or PascalCase string to snake_case using
// the default initialisms.
func Decamelize(s string, opts *Options) string {
	return defaultCaser.Decamelize(s, opts)
}

// Depascalize is an alias of Decamelize.
func Depascalize(s string, opts *Options) string {
	return defaultCaser.Decamelize(s, opts)
}

// SplitBefore returns a SplitFunc that starts a new word before every byte
// for which pred reports true, except at the start of the string.
func SplitBefore(pred func(c byte) bool) SplitFunc {
	return func(s string) []string {
		var words []string
		start := 0
		for i := 1; i < len(s); i++ {
			if pred(s[i]) {
				words = append(words, s[start:i])
				start = i
			}
		}
		return append(words, s[start:])
	}
}

// SplitBeforeUpper splits before each uppercase ASCII letter.
var SplitBeforeUpper = SplitBefore(isUpper)

// isNumerical reports whether s would coerce to a number in JavaScript,
// which is how the key converters decide that a key is not a word.
func isNumerical(s string) bool {
	s = strings.Trim(s, " \t\n\v\f\r")
	if s == "" {
		return true
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return allDigits(s[2:], 16)
		case 'o', 'O':
			return allDigits(s[2:], 8)
		case 'b', 'B':
			return allDigits(s[2:], 2)
		}
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "Infinity" {
		return true
	}
	return isDecimal(s)
}

func allDigits(s string, base int) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d int
		switch {
		case isDigit(c):
			d = int(c - '0')
		case 'a' <= c && c <= 'f':
			d = int(c-'a') + 10
		case 'A' <= c && c <= 'F':
			d = int(c-'A') + 10
		default:
			return false
		}
		if d >= base {
			return false
		}
	}
	return true
}

func isDecimal(s string) bool {
	i, digits := 0, 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == len(s)
}
