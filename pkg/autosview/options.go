package autosview

import "github.com/honeybbq/autosview/pkg/document"

// RenderOptions controls dispatch and presentation.
type RenderOptions struct {
	Format          string // Presentation format ("text", "markdown", "html")
	FallbackOnEmpty bool   // Emit the generic dump when the selected extractor yields no sections
	GenerationTag   string // Optional tag copied into bundle metadata
}

// DecodeOptions controls how raw input becomes a Document.
type DecodeOptions struct {
	Kind        document.Kind // Overrides the kind found in the input when set
	Identifiers []string      // Array merge identifiers for overlays (nil: DefaultIdentifiers)
	Source      string        // Input origin, for error messages
}
