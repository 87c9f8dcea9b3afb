package humps

import "strings"

// Caser converts between casing conventions using a fixed set of
// initialisms. A Caser is immutable and safe for concurrent use.
type Caser struct {
	initialisms *Initialisms
}

var defaultCaser = NewCaser(defaultInitialisms)

// NewCaser returns a Caser for in. A nil set disables initialism handling.
func NewCaser(in *Initialisms) *Caser {
	return &Caser{initialisms: in}
}

// Initialisms returns the set the Caser was built with.
func (c *Caser) Initialisms() *Initialisms {
	return c.initialisms
}

// CamelizeWithInitialism camelizes s and renders every word after the first
// that is a known initialism in its canonical spelling, so "user_id" becomes
// "userID".
func (c *Caser) CamelizeWithInitialism(s string) string {
	words := SplitBeforeUpper(Camelize(s))
	for i := 1; i < len(words); i++ {
		if w, ok := c.initialisms.Lookup(words[i]); ok {
			words[i] = w
		}
	}
	return strings.Join(words, "")
}

// RevertInitialism title-cases every known initialism embedded in s, so that
// "userID" becomes "userId" and splitting before uppercase letters keeps the
// initialism as one word.
func (c *Caser) RevertInitialism(s string) string {
	if c.initialisms.Len() == 0 {
		return s
	}
	var b []byte
	for i := 0; i < len(s); {
		start, end := nextRegion(s, i)
		if start < 0 {
			break
		}
		w := c.initialisms.match(s[start:end])
		if w == "" {
			i = end
			continue
		}
		if b == nil {
			b = []byte(s)
		}
		for j := start + 1; j < start+len(w); j++ {
			b[j] = toLower(b[j])
		}
		i = start + len(w)
	}
	if b == nil {
		return s
	}
	return string(b)
}

// nextRegion finds the first run of two or more uppercase letters at or
// after from and returns its bounds extended over the following
// non-uppercase characters. start is -1 when there is none.
func nextRegion(s string, from int) (start, end int) {
	start = -1
	for i := from; i+1 < len(s); i++ {
		if isUpper(s[i]) && isUpper(s[i+1]) {
			start = i
			break
		}
	}
	if start < 0 {
		return -1, len(s)
	}
	end = start + 2
	for end < len(s) && isUpper(s[end]) {
		end++
	}
	for end < len(s) && !isUpper(s[end]) {
		end++
	}
	return start, end
}

// Decamelize reverts initialisms in s, splits it into words, joins them with
// the separator and lowercases the result.
func (c *Caser) Decamelize(s string, opts *Options) string {
	words := opts.split()(c.RevertInitialism(s))
	return strings.ToLower(strings.Join(words, opts.separator()))
}

// Depascalize is an alias of Decamelize.
func (c *Caser) Depascalize(s string, opts *Options) string {
	return c.Decamelize(s, opts)
}

// CamelizeWithInitialism camelizes s using the default initialisms.
func CamelizeWithInitialism(s string) string {
	return defaultCaser.CamelizeWithInitialism(s)
}

// RevertInitialism title-cases initialisms in s using the default set.
func RevertInitialism(s string) string {
	return defaultCaser.RevertInitialism(s)
}
