package generic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/docerrors"
	"github.com/honeybbq/autosview/pkg/document"
)

// Title 是无法识别的文档使用的诊断标题。
const Title = "Documento genérico ou estrutura não reconhecida"

// Dump 保存需要原样转储的文档结构。
type Dump struct {
	Kind   document.Kind
	Fields map[string]any
}

// FromDocument 构造模型。
func FromDocument(doc *document.Document) (*Dump, error) {
	if doc == nil {
		return nil, docerrors.New(docerrors.KindValidation, fmt.Errorf("document is nil"))
	}
	return &Dump{Kind: doc.Kind, Fields: doc.Fields()}, nil
}

// ToAST 输出唯一的诊断章节，正文为结构化转储。
func (d *Dump) ToAST() (*report.Report, error) {
	if d == nil {
		return nil, docerrors.New(docerrors.KindValidation, fmt.Errorf("dump is nil"))
	}
	text, err := Serialize(d.Fields)
	if err != nil {
		return nil, err
	}
	sec := report.NewSection(Title, []string{text})
	sec.Level = report.LevelNote
	sec.Preformatted = true
	return &report.Report{
		Kind:     d.Kind.String(),
		Sections: []report.Section{sec},
	}, nil
}

// Serialize renders v as two-space indented JSON with map keys sorted. HTML characters are
// kept literal. Cyclic or unrepresentable values yield a render error wrapping
// docerrors.ErrUnserializable.
func Serialize(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", docerrors.New(docerrors.KindRender, fmt.Errorf("%w: %v", docerrors.ErrUnserializable, err))
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
