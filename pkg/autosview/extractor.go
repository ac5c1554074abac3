package autosview

import (
	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/document"
)

// Extractor turns a document into the ordered sections of one document kind.
// Implementations are pure: they never mutate the document and hold no state between calls,
// so a single Extractor may be shared across goroutines.
type Extractor interface {
	// Kind returns the discriminant this extractor serves. The generic fallback returns
	// document.KindUnknown.
	Kind() document.Kind

	// Extract computes the sections for doc. Missing fields read as empty; the only error
	// an extractor reports is a document it cannot represent at all.
	Extract(doc *document.Document) (*report.Report, error)
}
