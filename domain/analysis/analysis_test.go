package analysis

import (
	"reflect"
	"testing"

	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/docerrors"
	"github.com/honeybbq/autosview/pkg/document"
)

func TestToASTNoIssuesYieldsNothing(t *testing.T) {
	for _, doc := range []*document.Document{
		{},
		{Questoes: []document.Issue{}},
	} {
		op, err := FromDocument(doc)
		if err != nil {
			t.Fatalf("FromDocument: %v", err)
		}
		rep, err := op.ToAST()
		if err != nil {
			t.Fatalf("ToAST: %v", err)
		}
		if !rep.Empty() {
			t.Fatalf("expected no sections, got %d", len(rep.Sections))
		}
	}
}

func TestToASTHeaderThenOneSectionPerIssue(t *testing.T) {
	doc := &document.Document{
		Questoes: []document.Issue{
			{Tema: document.String("Prescrição"), Paragrafos: []string{"P1", "P2"}},
			{Paragrafos: []string{"Q1"}},
			{Tema: document.String("Sem parágrafos")},
			{Tema: document.String("")},
		},
	}
	op, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	rep, err := op.ToAST()
	if err != nil {
		t.Fatalf("ToAST: %v", err)
	}

	wantTitles := []string{HeaderTitle, "Prescrição:", "Questão:", "Sem parágrafos:", ":"}
	if len(rep.Sections) != len(wantTitles) {
		t.Fatalf("expected %d sections, got %d", len(wantTitles), len(rep.Sections))
	}
	for i, title := range wantTitles {
		if rep.Sections[i].Title != title {
			t.Errorf("section %d title = %q, want %q", i, rep.Sections[i].Title, title)
		}
		if rep.Sections[i].SeparatorBefore {
			t.Errorf("section %d should not carry a divider", i)
		}
	}

	if len(rep.Sections[0].Body) != 0 || rep.Sections[0].Level != report.LevelHeading {
		t.Fatalf("header should be a bare heading: %+v", rep.Sections[0])
	}
	if !reflect.DeepEqual(rep.Sections[1].Body, []string{"P1", "P2"}) {
		t.Fatalf("unexpected body %v", rep.Sections[1].Body)
	}
	if rep.Sections[1].Level != report.LevelSubheading {
		t.Fatal("issue sections are subheadings")
	}
	if len(rep.Sections[3].Body) != 0 {
		t.Fatal("issue without paragraphs keeps its heading with an empty body")
	}
}

func TestToASTDoesNotAliasDocument(t *testing.T) {
	paras := []string{"P1"}
	doc := &document.Document{Questoes: []document.Issue{{Paragrafos: paras}}}
	op, _ := FromDocument(doc)
	rep, _ := op.ToAST()
	rep.Sections[1].Body[0] = "changed"
	if paras[0] != "P1" {
		t.Fatal("section body must not share storage with the document")
	}
}

func TestFromDocumentNil(t *testing.T) {
	if _, err := FromDocument(nil); docerrors.KindOf(err) != docerrors.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestToASTNonObjectIssueKeepsItsSlot(t *testing.T) {
	doc := document.FromMap(map[string]any{
		"kind": "analysis",
		"questoes": []any{
			map[string]any{"tema": "A", "paragrafos": []any{"x"}},
			"junk",
		},
	})
	op, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	rep, err := op.ToAST()
	if err != nil {
		t.Fatalf("ToAST: %v", err)
	}
	if len(rep.Sections) != 3 {
		t.Fatalf("expected header and 2 issues, got %d sections", len(rep.Sections))
	}
	if rep.Sections[1].Title != "A:" || !reflect.DeepEqual(rep.Sections[1].Body, []string{"x"}) {
		t.Fatalf("unexpected first issue %+v", rep.Sections[1])
	}
	if rep.Sections[2].Title != document.PlaceholderTema+":" || len(rep.Sections[2].Body) != 0 {
		t.Fatalf("unexpected placeholder issue %+v", rep.Sections[2])
	}
}
