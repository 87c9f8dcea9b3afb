package humps

// SplitFunc splits a string into words.
type SplitFunc func(s string) []string

// Options configures key conversion. The zero value and a nil *Options both
// mean the defaults.
type Options struct {
	// Separator joins words in Decamelize. Defaults to "_".
	Separator string
	// Split breaks a string into words in Decamelize. Defaults to
	// SplitBeforeUpper.
	Split SplitFunc
	// Process, when set, is called for every key in place of the default
	// converter, which it receives as next.
	Process ProcessFunc
	// Preserve lists keys whose values are copied without converting the keys
	// inside them. Either the original or the converted key name may match.
	Preserve []string
}

func (o *Options) separator() string {
	if o == nil || o.Separator == "" {
		return "_"
	}
	return o.Separator
}

func (o *Options) split() SplitFunc {
	if o == nil || o.Split == nil {
		return SplitBeforeUpper
	}
	return o.Split
}

func (o *Options) process() ProcessFunc {
	if o == nil {
		return nil
	}
	return o.Process
}

func (o *Options) preserve() map[string]bool {
	if o == nil || len(o.Preserve) == 0 {
		return nil
	}
	m := make(map[string]bool, len(o.Preserve))
	for _, k := range o.Preserve {
		m[k] = true
	}
	return m
}

// withSeparator returns a copy of o using sep.
func (o *Options) withSeparator(sep string) *Options {
	var c Options
	if o != nil {
		c = *o
	}
	c.Separator = sep
	return &c
}

// Converter rewrites a single key.
type Converter interface {
	Convert(key string, opts *Options) string
}

// ConverterFunc adapts a function to Converter.
type ConverterFunc func(key string, opts *Options) string

// Convert calls f(key, opts).
func (f ConverterFunc) Convert(key string, opts *Options) string {
	return f(key, opts)
}

// ProcessFunc converts key, optionally delegating to next.
type ProcessFunc func(key string, next Converter, opts *Options) string

type override struct {
	next    Converter
	process ProcessFunc
}

func (o override) Convert(key string, opts *Options) string {
	return o.process(key, o.next, opts)
}

// Override returns a Converter that runs fn with next as the delegate.
func Override(next Converter, fn ProcessFunc) Converter {
	if fn == nil {
		return next
	}
	return override{next: next, process: fn}
}
