package interfaces

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Draft generation may propose description bodies in Markdown; they are
// rendered to HTML before landing in the draft buffer so comparisons against
// the working copy stay format-homogeneous.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}
