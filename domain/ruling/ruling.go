package ruling

import (
	"fmt"

	"github.com/honeybbq/autosview/domain/common"
	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/docerrors"
	"github.com/honeybbq/autosview/pkg/document"
)

const (
	ReportTitle      = "Relatório"
	GroundsTitle     = "Fundamentação"
	DispositionTitle = "Dispositivo"
)

var (
	reportTipos  = []string{document.TipoRelatorio}
	groundsTipos = []string{document.TipoMerito, document.TipoFundamentacao}
)

// Ruling 表示拆分为三个固定区域的判决。
type Ruling struct {
	Relatorio     []string
	Fundamentacao []string
	Dispositivo   []string

	// Dropped 保存 tipo 不属于任何区域的 Questão；它们不会出现在输出中。
	Dropped []document.Issue
}

// FromDocument 按 tipo 精确匹配拆分 Questão。
func FromDocument(doc *document.Document) (*Ruling, error) {
	if doc == nil {
		return nil, docerrors.New(docerrors.KindValidation, fmt.Errorf("document is nil"))
	}
	known := append(append([]string(nil), reportTipos...), groundsTipos...)
	return &Ruling{
		Relatorio:     common.FlattenByTipo(doc.Questoes, reportTipos...),
		Fundamentacao: common.FlattenByTipo(doc.Questoes, groundsTipos...),
		Dispositivo:   common.Paragraphs(doc.DispositionParagraphs()),
		Dropped:       common.Unclassified(doc.Questoes, known...),
	}, nil
}

// ToAST 输出 Relatório、Fundamentação（始终存在）以及非空时的 Dispositivo。
func (r *Ruling) ToAST() (*report.Report, error) {
	if r == nil {
		return nil, docerrors.New(docerrors.KindValidation, fmt.Errorf("ruling is nil"))
	}
	rep := &report.Report{
		Kind:     document.KindRuling.String(),
		Sections: make([]report.Section, 0, 3),
	}

	rep.Sections = append(rep.Sections, report.NewSection(ReportTitle, r.Relatorio))

	grounds := report.NewSection(GroundsTitle, r.Fundamentacao)
	grounds.SeparatorBefore = true
	rep.Sections = append(rep.Sections, grounds)

	if len(r.Dispositivo) > 0 {
		disp := report.NewSection(DispositionTitle, r.Dispositivo)
		disp.SeparatorBefore = true
		disp.Emphasis = report.EmphasisStrong
		rep.Sections = append(rep.Sections, disp)
	}
	return rep, nil
}
