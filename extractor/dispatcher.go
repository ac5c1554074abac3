// Package extractor selects the section extractor for a document kind.
package extractor

import (
	"log/slog"

	"github.com/honeybbq/autosview/extractor/analysis"
	"github.com/honeybbq/autosview/extractor/generic"
	"github.com/honeybbq/autosview/extractor/petition"
	"github.com/honeybbq/autosview/extractor/ruling"
	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/autosview"
	"github.com/honeybbq/autosview/pkg/document"
)

// Dispatcher maps a kind to its extractor. The mapping is closed: every kind without a
// dedicated extractor goes to the generic dump. A Dispatcher is safe for concurrent use.
type Dispatcher struct {
	extractors map[document.Kind]autosview.Extractor
	fallback   autosview.Extractor
	logger     *slog.Logger
}

// NewDispatcher builds the dispatcher with the analysis, ruling and petition extractors.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		extractors: map[document.Kind]autosview.Extractor{
			document.KindAnalysis: analysis.New(),
			document.KindRuling:   ruling.New(logger),
			document.KindPetition: petition.New(),
		},
		fallback: generic.New(),
		logger:   logger,
	}
}

// Select returns the extractor for kind, or the generic extractor.
func (d *Dispatcher) Select(kind document.Kind) autosview.Extractor {
	if ext, ok := d.extractors[kind]; ok {
		return ext
	}
	return d.fallback
}

// DispatchDocument dispatches on the kind carried by doc.
func (d *Dispatcher) DispatchDocument(doc *document.Document, opts autosview.RenderOptions) (*report.Report, error) {
	var kind document.Kind
	if doc != nil {
		kind = doc.Kind
	}
	return d.Dispatch(doc, kind, opts)
}

// Dispatch runs the extractor selected by kind. A nil document reads as an empty one.
//
// Missing fields never cause a fall through to the generic dump; each extractor applies its
// own empty-input rule. With opts.FallbackOnEmpty an extractor that yields no sections at
// all is replaced by the generic dump.
func (d *Dispatcher) Dispatch(doc *document.Document, kind document.Kind, opts autosview.RenderOptions) (*report.Report, error) {
	if doc == nil {
		doc = &document.Document{}
	}
	ext := d.Select(kind)
	if ext == d.fallback {
		d.logger.Info("no extractor for kind, using generic dump", "kind", kind.String())
	} else {
		d.logger.Debug("dispatching document", "kind", kind.String())
	}

	rep, err := ext.Extract(doc)
	if err != nil {
		return nil, err
	}
	if rep.Empty() && opts.FallbackOnEmpty && ext != d.fallback {
		d.logger.Info("extractor produced no sections, using generic dump", "kind", kind.String())
		return d.fallback.Extract(doc)
	}
	return rep, nil
}

// Kinds lists the kinds with a dedicated extractor.
func (d *Dispatcher) Kinds() []document.Kind {
	kinds := make([]document.Kind, 0, len(d.extractors))
	for _, k := range document.KnownKinds() {
		if _, ok := d.extractors[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
