package document

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag  string
		want Kind
	}{
		{"ruling", KindRuling},
		{" Sentença ", KindRuling},
		{"SENTENCA", KindRuling},
		{"analise", KindAnalysis},
		{"Análise", KindAnalysis},
		{"petition", KindPetition},
		{"petição_inicial", KindPetition},
		{"unknown", Kind("unknown")},
		{"  ", KindUnknown},
	}
	for _, tc := range cases {
		if got := ParseKind(tc.tag); got != tc.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestKindKnown(t *testing.T) {
	t.Parallel()

	for _, k := range KnownKinds() {
		if !k.Known() {
			t.Fatalf("%s should be known", k)
		}
	}
	if Kind("unknown").Known() || KindUnknown.Known() {
		t.Fatal("unrecognized kinds must not be known")
	}
	if KindUnknown.String() != "unknown" {
		t.Fatalf("unexpected zero kind label %q", KindUnknown.String())
	}
}

func TestKindFromNatureza(t *testing.T) {
	t.Parallel()

	if KindFromNatureza(NaturezaSentenca) != KindRuling {
		t.Fatal("code 8 should map to ruling")
	}
	if KindFromNatureza(NaturezaPeticaoInicial) != KindPetition || KindFromNatureza(NaturezaPeticaoDiversa) != KindPetition {
		t.Fatal("codes 1 and 6 should map to petition")
	}
	if KindFromNatureza(2) != KindUnknown {
		t.Fatal("contestação has no dedicated layout")
	}
	if NaturezaDescription(8) != "Sentença" {
		t.Fatalf("unexpected description %q", NaturezaDescription(8))
	}
	if NaturezaDescription(99) != "Documento desconhecido" {
		t.Fatalf("unexpected fallback description %q", NaturezaDescription(99))
	}
}

func TestFromMapRuling(t *testing.T) {
	t.Parallel()

	doc := FromMap(map[string]any{
		"kind": "ruling",
		"questoes": []any{
			map[string]any{"tipo": "relatorio", "paragrafos": []any{"R1"}},
			map[string]any{"tipo": "mérito", "tema": "Dano moral", "paragrafos": []any{"M1", "M2"}, "decisao": "procedente"},
		},
		"dispositivo": map[string]any{"paragrafos": []any{"D1"}},
		"processo":    "0001234-56.2024.8.26.0100",
	})

	if doc.Kind != KindRuling {
		t.Fatalf("unexpected kind %q", doc.Kind)
	}
	if len(doc.Questoes) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(doc.Questoes))
	}
	second := doc.Questoes[1]
	if second.Title() != "Dano moral" || !second.HasTipo(TipoMerito) {
		t.Fatalf("unexpected issue %+v", second)
	}
	if second.Extra["decisao"] != "procedente" {
		t.Fatalf("unrecognized issue field should be kept, got %v", second.Extra)
	}
	if !reflect.DeepEqual(doc.DispositionParagraphs(), []string{"D1"}) {
		t.Fatalf("unexpected disposition %v", doc.DispositionParagraphs())
	}
	if doc.Extra["processo"] == nil {
		t.Fatal("unknown top level field should land in Extra")
	}
	if _, ok := doc.Extra["kind"]; ok {
		t.Fatal("kind is envelope, not body")
	}
}

func TestFromMapMalformedFieldsKeptVerbatim(t *testing.T) {
	t.Parallel()

	doc := FromMap(map[string]any{
		"kind":     "petition",
		"corpo":    "not a list",
		"questoes": nil,
	})
	if doc.Corpo != nil || doc.Questoes != nil {
		t.Fatalf("malformed fields must read as absent: %+v", doc)
	}
	for _, key := range []string{"corpo", "questoes"} {
		if _, ok := doc.Extra[key]; !ok {
			t.Fatalf("malformed %q should be kept in Extra", key)
		}
	}
}

func TestFromMapSkipsNonStringParagraphs(t *testing.T) {
	t.Parallel()

	relatorio := []any{"R1", nil, "R2"}
	pedidos := []any{"P1", 2.0, map[string]any{"x": 1.0}, "P2"}
	doc := FromMap(map[string]any{
		"kind":    "ruling",
		"pedidos": pedidos,
		"questoes": []any{
			map[string]any{"tipo": "relatorio", "paragrafos": relatorio},
		},
		"dispositivo": map[string]any{"paragrafos": []any{true, "D1"}},
	})

	if !reflect.DeepEqual(doc.Pedidos, []string{"P1", "P2"}) {
		t.Fatalf("unexpected pedidos %#v", doc.Pedidos)
	}
	if len(doc.Questoes) != 1 || !reflect.DeepEqual(doc.Questoes[0].Paragrafos, []string{"R1", "R2"}) {
		t.Fatalf("unexpected questoes %+v", doc.Questoes)
	}
	if !reflect.DeepEqual(doc.DispositionParagraphs(), []string{"D1"}) {
		t.Fatalf("unexpected dispositivo %+v", doc.Dispositivo)
	}

	// the dump still sees the lists as received
	fields := doc.Fields()
	if !reflect.DeepEqual(fields["pedidos"], pedidos) {
		t.Fatalf("pedidos should be dumped as received, got %#v", fields["pedidos"])
	}
	issue := fields["questoes"].([]any)[0].(map[string]any)
	if !reflect.DeepEqual(issue["paragrafos"], relatorio) || issue["tipo"] != "relatorio" {
		t.Fatalf("issue should be dumped as received, got %#v", issue)
	}
}

func TestFromMapNonObjectIssue(t *testing.T) {
	t.Parallel()

	questoes := []any{
		map[string]any{"tema": "A", "paragrafos": []any{"x"}},
		"junk",
	}
	doc := FromMap(map[string]any{"kind": "analysis", "questoes": questoes})

	if len(doc.Questoes) != 2 {
		t.Fatalf("expected 2 issues, got %+v", doc.Questoes)
	}
	if doc.Questoes[0].Title() != "A" || !reflect.DeepEqual(doc.Questoes[0].Paragrafos, []string{"x"}) {
		t.Fatalf("unexpected first issue %+v", doc.Questoes[0])
	}
	second := doc.Questoes[1]
	if second.Tema != nil || second.Tipo != nil || second.Paragrafos != nil {
		t.Fatalf("non-object issue should read as empty, got %+v", second)
	}
	if !reflect.DeepEqual(doc.Fields()["questoes"], questoes) {
		t.Fatalf("questoes should be dumped as received, got %#v", doc.Fields()["questoes"])
	}
}

func TestFromMapEmptyListIsPresent(t *testing.T) {
	t.Parallel()

	doc := FromMap(map[string]any{"pedidos": []any{}})
	if doc.Pedidos == nil || len(doc.Pedidos) != 0 {
		t.Fatalf("empty list should be present and empty, got %#v", doc.Pedidos)
	}
}

func TestFromMapKindFromNatureza(t *testing.T) {
	t.Parallel()

	doc := FromMap(map[string]any{
		"tipo": map[string]any{"key": 8.0, "description": "Sentença"},
	})
	if doc.Kind != KindRuling {
		t.Fatalf("expected ruling from natureza code, got %q", doc.Kind)
	}
	if _, ok := doc.Extra["tipo"]; !ok {
		t.Fatal("tipo stays in the body")
	}

	fromNumber := FromMap(map[string]any{
		"tipo": map[string]any{"key": json.Number("1")},
	})
	if fromNumber.Kind != KindPetition {
		t.Fatalf("expected petition from json.Number code, got %q", fromNumber.Kind)
	}
	if doc := FromMap(map[string]any{"tipo": map[string]any{"key": json.Number("8.5")}}); doc.Kind != KindUnknown {
		t.Fatalf("non-integral code must not resolve, got %q", doc.Kind)
	}

	explicit := FromMap(map[string]any{
		"kind": "petition",
		"tipo": map[string]any{"key": 8},
	})
	if explicit.Kind != KindPetition {
		t.Fatalf("explicit kind must win, got %q", explicit.Kind)
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"questoes": []any{
			map[string]any{"tema": "Prescrição", "paragrafos": []any{"P1"}},
		},
		"dispositivo": map[string]any{"paragrafos": []any{"D1"}, "assinatura": "Juiz"},
		"foo":         1.0,
	}
	fields := FromMap(in).Fields()

	issues, ok := fields["questoes"].([]any)
	if !ok || len(issues) != 1 {
		t.Fatalf("unexpected questoes %#v", fields["questoes"])
	}
	issue := issues[0].(map[string]any)
	if issue["tema"] != "Prescrição" {
		t.Fatalf("unexpected tema %v", issue["tema"])
	}
	if _, ok := issue["tipo"]; ok {
		t.Fatal("absent tipo must not be materialized")
	}
	disp := fields["dispositivo"].(map[string]any)
	if disp["assinatura"] != "Juiz" {
		t.Fatalf("disposition extras lost: %v", disp)
	}
	if fields["foo"] != 1.0 {
		t.Fatalf("extra lost: %v", fields["foo"])
	}
}

func TestFieldsNilDocument(t *testing.T) {
	t.Parallel()

	var doc *Document
	if len(doc.Fields()) != 0 {
		t.Fatal("nil document should have no fields")
	}
	if doc.DispositionParagraphs() != nil {
		t.Fatal("nil document has no disposition")
	}
}
