package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/autosview"
)

func TestRenderPetition(t *testing.T) {
	t.Parallel()

	req := report.NewSection("Pedidos", []string{"P1"})
	req.SeparatorBefore = true
	rep := &report.Report{
		Kind:     "petition",
		Sections: []report.Section{report.NewSection("Exposição dos Fatos", []string{"F1", "F2"}), req},
	}

	bundle, err := NewRenderer().Render(context.Background(), rep, autosview.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "## Exposição dos Fatos\n\nF1\n\nF2\n\n---\n\n## Pedidos\n\nP1\n"
	if got := string(bundle.Content); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
	if _, ok := bundle.Metadata.Custom["converted_paragraphs"]; ok {
		t.Fatal("plain paragraphs should not be converted")
	}
}

func TestRenderConvertsInlineHTML(t *testing.T) {
	t.Parallel()

	disp := report.NewSection("Dispositivo", []string{"Julgo <strong>procedente</strong> o pedido."})
	disp.Emphasis = report.EmphasisStrong
	bundle, err := NewRenderer().Render(context.Background(), &report.Report{Sections: []report.Section{disp}}, autosview.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := string(bundle.Content)
	if strings.Contains(got, "<strong>") {
		t.Fatalf("inline HTML should be converted, got %q", got)
	}
	if !strings.Contains(got, "procedente") {
		t.Fatalf("paragraph text lost: %q", got)
	}
	if strings.Contains(got, "**Julgo") {
		t.Fatalf("strong markers must not nest around converted emphasis: %q", got)
	}
	if bundle.Metadata.Custom["converted_paragraphs"] != "1" {
		t.Fatalf("unexpected metadata %v", bundle.Metadata.Custom)
	}
}

func TestRenderStrongConvertedBlocks(t *testing.T) {
	t.Parallel()

	disp := report.NewSection("Dispositivo", []string{"<p>Julgo procedente.</p><p>Custas pelo réu.</p><ul><li>Oficie-se.</li></ul>"})
	disp.Emphasis = report.EmphasisStrong
	bundle, err := NewRenderer().Render(context.Background(), &report.Report{Sections: []report.Section{disp}}, autosview.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := string(bundle.Content)
	if !strings.Contains(got, "**Julgo procedente.**\n\n**Custas pelo réu.**") {
		t.Fatalf("each converted block should be bold on its own: %q", got)
	}
	if !strings.Contains(got, "\n- Oficie-se.") || strings.Contains(got, "**- ") {
		t.Fatalf("list blocks should stay lists: %q", got)
	}
}

func TestRenderGenericDumpFenced(t *testing.T) {
	t.Parallel()

	note := report.NewSection("Documento genérico ou estrutura não reconhecida", []string{"{\n  \"foo\": \"<b>x</b>\"\n}"})
	note.Level = report.LevelNote
	note.Preformatted = true

	bundle, err := NewRenderer().Render(context.Background(), &report.Report{Sections: []report.Section{note}}, autosview.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "_Documento genérico ou estrutura não reconhecida_\n\n```json\n{\n  \"foo\": \"<b>x</b>\"\n}\n```\n"
	if got := string(bundle.Content); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarkupPattern(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"texto simples":             false,
		"a < b e c > d":             false,
		"<p>parágrafo</p>":          true,
		"quebra<br/>de linha":       true,
		"<a href=\"x\">link</a>":    true,
		"art. 5º, <i>caput</i>, CF": true,
	}
	for in, want := range cases {
		if got := markupPattern.MatchString(in); got != want {
			t.Errorf("markupPattern(%q) = %v, want %v", in, got, want)
		}
	}
}
