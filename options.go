package smjson

// DecodeOptions configures Decode behavior.
type DecodeOptions struct {
	// SingleQuotes accepts '...' as an alternative string delimiter
	// during parsing. Output always uses double quotes.
	SingleQuotes bool

	// MaxDepth bounds input nesting so hostile documents cannot exhaust
	// the call stack. Zero or negative means unbounded.
	MaxDepth int
}

// DefaultDecodeOptions are the options used when Decode is called without
// mutators.
var DefaultDecodeOptions = DecodeOptions{
	MaxDepth: 1024,
}

// WithSingleQuotes enables single-quoted strings during decoding.
func WithSingleQuotes() func(o *DecodeOptions) {
	return func(o *DecodeOptions) {
		o.SingleQuotes = true
	}
}

// WithMaxDepth sets the nesting bound for decoding. n <= 0 removes the
// bound.
func WithMaxDepth(n int) func(o *DecodeOptions) {
	return func(o *DecodeOptions) {
		o.MaxDepth = n
	}
}

// EncodeOptions configures Encode output. The formatting strings are
// explicit per-call configuration; there is no process-wide mutable
// format state.
type EncodeOptions struct {
	// Pretty produces multi-line, indented output.
	Pretty bool

	// Indent is the per-level indent unit used in pretty mode.
	Indent string

	// Newline is the line separator used in pretty mode.
	Newline string

	// KeySpacer is emitted after the colon of each object key.
	KeySpacer string
}

// DefaultEncodeOptions are the options used when Encode is called without
// mutators.
var DefaultEncodeOptions = EncodeOptions{
	Indent:    "\t",
	Newline:   "\n",
	KeySpacer: " ",
}

// WithPretty enables pretty-printed output.
func WithPretty() func(o *EncodeOptions) {
	return func(o *EncodeOptions) {
		o.Pretty = true
	}
}

// WithIndent enables pretty-printed output with the given indent unit.
func WithIndent(indent string) func(o *EncodeOptions) {
	return func(o *EncodeOptions) {
		o.Pretty = true
		o.Indent = indent
	}
}
