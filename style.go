package humps

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Style names a target casing convention.
type Style string

const (
	StyleCamel  Style = "camel"
	StylePascal Style = "pascal"
	StyleSnake  Style = "snake"
	StyleKebab  Style = "kebab"
)

// Styles lists the supported styles in display order.
var Styles = []Style{StyleCamel, StylePascal, StyleSnake, StyleKebab}

var styleAliases = map[string]Style{
	"camel":       StyleCamel,
	"camelcase":   StyleCamel,
	"lower-camel": StyleCamel,
	"lowercamel":  StyleCamel,
	"pascal":      StylePascal,
	"pascalcase":  StylePascal,
	"upper-camel": StylePascal,
	"uppercamel":  StylePascal,
	"snake":       StyleSnake,
	"snake_case":  StyleSnake,
	"snakecase":   StyleSnake,
	"kebab":       StyleKebab,
	"kebab-case":  StyleKebab,
	"kebabcase":   StyleKebab,
}

// maxSuggestDistance bounds how far a typo may be from a known style name
// to still be suggested.
const maxSuggestDistance = 3

// ParseStyle resolves a style name or alias, ignoring case.
func ParseStyle(name string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", usageError("pass --to or set \"to\" in the config file", "case style is required")
	}
	if s, ok := styleAliases[key]; ok {
		return s, nil
	}
	return "", usageError(suggestStyle(key), "unknown case style %q (want one of %s)", name, styleList())
}

func suggestStyle(key string) string {
	best, bestDist := "", maxSuggestDistance+1
	for alias := range styleAliases {
		d := levenshtein.ComputeDistance(key, alias)
		if d < bestDist || (d == bestDist && alias < best) {
			best, bestDist = alias, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", string(styleAliases[best]))
}

func styleList() string {
	names := make([]string, len(Styles))
	for i, s := range Styles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Converter returns the key converter for style. Unknown styles convert
// nothing.
func (c *Caser) Converter(style Style) Converter {
	switch style {
	case StyleCamel:
		return c.camelizer()
	case StylePascal:
		return c.pascalizer()
	case StyleSnake:
		return ConverterFunc(c.delimited)
	case StyleKebab:
		return ConverterFunc(func(key string, opts *Options) string {
			return c.delimited(key, opts.withSeparator("-"))
		})
	}
	return ConverterFunc(func(key string, _ *Options) string { return key })
}

// delimited decamelizes key and then rewrites every run of '-', '_' or
// whitespace as the separator, so snake, kebab and camel input all reach the
// same form. Numeric keys are returned unchanged.
func (c *Caser) delimited(key string, opts *Options) string {
	if isNumerical(key) {
		return key
	}
	words := strings.FieldsFunc(c.Decamelize(key, opts), func(r rune) bool {
		return r < utf8.RuneSelf && isSeparator(byte(r))
	})
	return strings.Join(words, opts.separator())
}
