package petition

import (
	"fmt"

	"github.com/honeybbq/autosview/domain/common"
	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/docerrors"
	"github.com/honeybbq/autosview/pkg/document"
)

const (
	FactsTitle    = "Exposição dos Fatos"
	RequestsTitle = "Pedidos"
)

// Petition 表示包含事实陈述与请求列表的诉状。
type Petition struct {
	Fatos   []string
	Pedidos []string
}

// FromDocument 构造模型。
func FromDocument(doc *document.Document) (*Petition, error) {
	if doc == nil {
		return nil, docerrors.New(docerrors.KindValidation, fmt.Errorf("document is nil"))
	}
	return &Petition{
		Fatos:   common.Paragraphs(doc.Corpo),
		Pedidos: common.Paragraphs(doc.Pedidos),
	}, nil
}

// ToAST 输出事实章节（始终存在）以及非空时的请求章节。
func (p *Petition) ToAST() (*report.Report, error) {
	if p == nil {
		return nil, docerrors.New(docerrors.KindValidation, fmt.Errorf("petition is nil"))
	}
	rep := &report.Report{
		Kind:     document.KindPetition.String(),
		Sections: []report.Section{report.NewSection(FactsTitle, p.Fatos)},
	}
	if len(p.Pedidos) > 0 {
		req := report.NewSection(RequestsTitle, p.Pedidos)
		req.SeparatorBefore = true
		rep.Sections = append(rep.Sections, req)
	}
	return rep, nil
}
