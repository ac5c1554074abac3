package generic

import (
	"errors"
	"math"
	"testing"

	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/docerrors"
	"github.com/honeybbq/autosview/pkg/document"
)

func TestScenarioC(t *testing.T) {
	doc := document.FromMap(map[string]any{"kind": "unknown", "foo": 1.0})
	d, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	rep, err := d.ToAST()
	if err != nil {
		t.Fatalf("ToAST: %v", err)
	}
	if len(rep.Sections) != 1 {
		t.Fatalf("expected one section, got %d", len(rep.Sections))
	}
	sec := rep.Sections[0]
	if sec.Title != Title || !sec.Preformatted || sec.Level != report.LevelNote {
		t.Fatalf("unexpected section %+v", sec)
	}
	want := "{\n  \"foo\": 1\n}"
	if len(sec.Body) != 1 || sec.Body[0] != want {
		t.Fatalf("body = %q, want %q", sec.Body, want)
	}
}

func TestSerializeSortedAndLiteral(t *testing.T) {
	got, err := Serialize(map[string]any{
		"zeta":  []any{"a", map[string]any{"b": true, "a": nil}},
		"alpha": "<p>Autor & Réu</p>",
	})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := `{
  "alpha": "<p>Autor & Réu</p>",
  "zeta": [
    "a",
    {
      "a": null,
      "b": true
    }
  ]
}`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSerializeDeterministic(t *testing.T) {
	doc := &document.Document{
		Questoes: []document.Issue{{Tema: document.String("T"), Paragrafos: []string{"x"}}},
		Corpo:    []string{"c"},
		Extra:    map[string]any{"b": 2, "a": 1, "c": map[string]any{"y": 1, "x": 2}},
	}
	first, err := Serialize(doc.Fields())
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := Serialize(doc.Fields())
		if err != nil {
			t.Fatalf("Serialize: %v", err)
		}
		if again != first {
			t.Fatalf("serialization changed between runs:\n%s\n---\n%s", first, again)
		}
	}
}

func TestSerializeCycleIsReported(t *testing.T) {
	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	doc := &document.Document{Extra: map[string]any{"loop": cyclic}}
	d, _ := FromDocument(doc)
	_, err := d.ToAST()
	if err == nil {
		t.Fatal("expected an error for a cyclic value")
	}
	if !errors.Is(err, docerrors.ErrUnserializable) || docerrors.KindOf(err) != docerrors.KindRender {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSerializeUnrepresentable(t *testing.T) {
	for name, v := range map[string]any{
		"func": func() {},
		"chan": make(chan int),
		"nan":  math.NaN(),
	} {
		if _, err := Serialize(map[string]any{"v": v}); !errors.Is(err, docerrors.ErrUnserializable) {
			t.Errorf("%s: expected ErrUnserializable, got %v", name, err)
		}
	}
}

func TestEmptyDocumentDump(t *testing.T) {
	d, _ := FromDocument(&document.Document{Kind: document.Kind("contrato")})
	rep, err := d.ToAST()
	if err != nil {
		t.Fatalf("ToAST: %v", err)
	}
	if rep.Sections[0].Body[0] != "{}" {
		t.Fatalf("unexpected dump %q", rep.Sections[0].Body[0])
	}
	if rep.Kind != "contrato" {
		t.Fatalf("unexpected kind %q", rep.Kind)
	}
}
