package ruling

import (
	"log/slog"

	domain "github.com/honeybbq/autosview/domain/ruling"
	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/document"
)

// Extractor 负责判决的章节提取。
type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

func (e *Extractor) Kind() document.Kind {
	return document.KindRuling
}

func (e *Extractor) Extract(doc *document.Document) (*report.Report, error) {
	model, err := domain.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	if n := len(model.Dropped); n > 0 {
		tipos := make([]string, 0, n)
		for _, q := range model.Dropped {
			if q.Tipo == nil {
				tipos = append(tipos, "")
				continue
			}
			tipos = append(tipos, *q.Tipo)
		}
		e.logger.Debug("ruling issues outside relatorio/fundamentacao dropped", "count", n, "tipos", tipos)
	}
	return model.ToAST()
}
