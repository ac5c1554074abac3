package analysis

import (
	"fmt"

	"github.com/honeybbq/autosview/domain/common"
	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/docerrors"
	"github.com/honeybbq/autosview/pkg/document"
)

// HeaderTitle 是分析意见的固定引导标题。
const HeaderTitle = "Fundamentação Jurídica"

// Opinion 表示一份按 Questão 论证的分析意见。
type Opinion struct {
	Issues []document.Issue
}

// FromDocument 构造模型。
func FromDocument(doc *document.Document) (*Opinion, error) {
	if doc == nil {
		return nil, docerrors.New(docerrors.KindValidation, fmt.Errorf("document is nil"))
	}
	return &Opinion{Issues: doc.Questoes}, nil
}

// ToAST 输出章节：引导标题 + 每个 Questão 一个章节。没有 Questão 时不输出任何章节。
func (o *Opinion) ToAST() (*report.Report, error) {
	if o == nil {
		return nil, docerrors.New(docerrors.KindValidation, fmt.Errorf("opinion is nil"))
	}
	rep := &report.Report{Kind: document.KindAnalysis.String()}
	if len(o.Issues) == 0 {
		return rep, nil
	}

	rep.Sections = make([]report.Section, 0, len(o.Issues)+1)
	rep.Sections = append(rep.Sections, report.NewSection(HeaderTitle, nil))
	for _, q := range o.Issues {
		sec := report.NewSection(q.Title()+":", common.Paragraphs(q.Paragrafos))
		sec.Level = report.LevelSubheading
		rep.Sections = append(rep.Sections, sec)
	}
	return rep, nil
}
