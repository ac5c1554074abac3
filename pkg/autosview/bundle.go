package autosview

import "time"

// Metadata stores information about how and when the output was generated.
type Metadata struct {
	Format    string            // Format identifier ("text", "markdown", "html")
	Kind      string            // Document kind that selected the extractor
	Sections  int               // Number of sections rendered
	Generated time.Time         // Timestamp when the bundle was created
	Tag       string            // Optional generation tag
	Custom    map[string]string // Extensible metadata for format-specific information
}

// Bundle represents the complete output of a presentation pass.
type Bundle struct {
	Content     []byte
	ContentType string
	Metadata    Metadata
}

// NewBundle creates an empty Bundle with initialized metadata.
// The Generated timestamp is set to the current time.
func NewBundle(format, contentType string) *Bundle {
	return &Bundle{
		ContentType: contentType,
		Metadata: Metadata{
			Format:    format,
			Generated: time.Now(),
			Custom:    make(map[string]string),
		},
	}
}
