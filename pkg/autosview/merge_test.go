package autosview

import "testing"

func TestMergeLayers_Scalars(t *testing.T) {
	base := map[string]any{"processo": "0001", "juizo": "1ª Vara"}
	over := map[string]any{"processo": "0002"}

	result, err := MergeLayers([]map[string]any{base, over}, nil)
	if err != nil {
		t.Fatalf("MergeLayers: %v", err)
	}
	if result["processo"] != "0002" {
		t.Errorf("processo should be overridden, got %v", result["processo"])
	}
	if result["juizo"] != "1ª Vara" {
		t.Errorf("juizo should be preserved, got %v", result["juizo"])
	}
	if base["processo"] != "0001" {
		t.Error("inputs must not be modified")
	}
}

func TestMergeLayers_NestedObject(t *testing.T) {
	base := map[string]any{
		"dispositivo": map[string]any{"paragrafos": []any{"D1"}, "assinatura": "Juiz"},
	}
	over := map[string]any{
		"dispositivo": map[string]any{"paragrafos": []any{"D2"}},
	}
	result, _ := MergeLayers([]map[string]any{base, over}, nil)

	disp := result["dispositivo"].(map[string]any)
	if disp["assinatura"] != "Juiz" {
		t.Error("assinatura should be preserved")
	}
	paras := disp["paragrafos"].([]any)
	if len(paras) != 2 || paras[0] != "D1" || paras[1] != "D2" {
		t.Errorf("scalar arrays should append new elements, got %v", paras)
	}
}

func TestMergeLayers_IssuesByTema(t *testing.T) {
	base := map[string]any{
		"questoes": []any{
			map[string]any{"tema": "Prescrição", "tipo": "preliminar", "paragrafos": []any{"P1"}},
		},
	}
	over := map[string]any{
		"questoes": []any{
			map[string]any{"tema": "Prescrição", "tipo": "mérito"},
			map[string]any{"tema": "Dano moral", "paragrafos": []any{"M1"}},
		},
	}
	result, _ := MergeLayers([]map[string]any{base, over}, nil)

	issues := result["questoes"].([]any)
	if len(issues) != 2 {
		t.Fatalf("should have 2 issues, got %d", len(issues))
	}
	first := issues[0].(map[string]any)
	if first["tipo"] != "mérito" {
		t.Errorf("tipo should be overridden, got %v", first["tipo"])
	}
	if paras := first["paragrafos"].([]any); len(paras) != 1 {
		t.Errorf("paragrafos should be preserved, got %v", paras)
	}
}

func TestMergeLayers_SkipDuplicates(t *testing.T) {
	base := map[string]any{"pedidos": []any{"P1", "P2"}}
	over := map[string]any{"pedidos": []any{"P2", "P3"}}
	result, _ := MergeLayers([]map[string]any{base, over}, nil)

	pedidos := result["pedidos"].([]any)
	if len(pedidos) != 3 {
		t.Fatalf("expected 3 pedidos, got %v", pedidos)
	}
}

func TestMergeLayers_TypeChangeOverrides(t *testing.T) {
	base := map[string]any{"corpo": []any{"F1"}}
	over := map[string]any{"corpo": "texto corrido"}
	result, _ := MergeLayers([]map[string]any{base, over}, nil)
	if result["corpo"] != "texto corrido" {
		t.Fatalf("later layer should replace on type change, got %v", result["corpo"])
	}
}

func TestMergeLayers_NoLayers(t *testing.T) {
	if _, err := MergeLayers(nil, nil); err == nil {
		t.Fatal("expected error for no layers")
	}
}
