package generic

import (
	domain "github.com/honeybbq/autosview/domain/generic"
	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/document"
)

// Extractor 负责通用转储（兜底）的章节提取。
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Kind() document.Kind {
	return document.KindUnknown
}

func (e *Extractor) Extract(doc *document.Document) (*report.Report, error) {
	model, err := domain.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	return model.ToAST()
}
