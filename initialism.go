package humps

import (
	"sort"
	"strings"
)

// defaultInitialismWords are the initialisms recognized by the package-level
// converters.
var defaultInitialismWords = []string{
	"ACL", "AMQP", "API", "ASCII",
	"CIDR", "CPU", "CSS",
	"DB", "DNS",
	"EOF",
	"FQDN",
	"GID", "GUID",
	"HTML", "HTTP", "HTTPS",
	"ID", "IP", "IPAM", "IPv4", "IPv6",
	"JSON",
	"PC",
	"QPS",
	"RAM", "RPC", "RTP",
	"SIP", "SLA", "SMTP", "SQL", "SSH",
	"TCP", "TLS", "TS", "TTL",
	"UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID",
	"VM",
	"XML", "XMPP", "XSRF", "XSS",
}

var defaultInitialisms = NewInitialisms(defaultInitialismWords...)

// Initialisms is an immutable set of initialisms. Words are kept sorted by
// descending length so that a longer token is always tried before any of its
// prefixes. A nil *Initialisms is valid and matches nothing.
type Initialisms struct {
	words  []string
	lookup map[string]string
}

// NewInitialisms builds a set from words. When two words share a lowercase
// form the first one is kept. Empty words are ignored.
func NewInitialisms(words ...string) *Initialisms {
	in := &Initialisms{lookup: make(map[string]string, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		lower := strings.ToLower(w)
		if _, ok := in.lookup[lower]; ok {
			continue
		}
		in.lookup[lower] = w
		in.words = append(in.words, w)
	}
	sort.SliceStable(in.words, func(i, j int) bool {
		return len(in.words[i]) > len(in.words[j])
	})
	return in
}

// DefaultInitialisms returns the built-in set.
func DefaultInitialisms() *Initialisms {
	return defaultInitialisms
}

// With returns a new set containing extra in addition to the receiver's words.
// An extra word replaces a registered word with the same lowercase form.
func (in *Initialisms) With(extra ...string) *Initialisms {
	words := make([]string, 0, len(extra)+in.Len())
	words = append(words, extra...)
	if in != nil {
		words = append(words, in.words...)
	}
	return NewInitialisms(words...)
}

// Lookup returns the canonical spelling of word, compared case-insensitively.
func (in *Initialisms) Lookup(word string) (string, bool) {
	if in == nil {
		return "", false
	}
	w, ok := in.lookup[strings.ToLower(word)]
	return w, ok
}

// Words returns the registered words, longest first.
func (in *Initialisms) Words() []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in.words...)
}

// Len reports the number of registered words.
func (in *Initialisms) Len() int {
	if in == nil {
		return 0
	}
	return len(in.words)
}

// match picks the token to collapse at the start of region, a run of two or
// more uppercase letters followed by its non-uppercase tail. The longest token
// that ends on a word boundary wins; failing that, the longest token that is
// a prefix of region at all.
func (in *Initialisms) match(region string) string {
	if in == nil {
		return ""
	}
	var fallback string
	for _, w := range in.words {
		if !strings.HasPrefix(region, w) {
			continue
		}
		if len(w) == len(region) || !isLower(region[len(w)]) {
			return w
		}
		if fallback == "" {
			fallback = w
		}
	}
	return fallback
}
