package document

import (
	"encoding/json"
	"log/slog"
)

const (
	fieldKind        = "kind"
	fieldTipo        = "tipo"
	fieldTema        = "tema"
	fieldQuestoes    = "questoes"
	fieldDispositivo = "dispositivo"
	fieldCorpo       = "corpo"
	fieldPedidos     = "pedidos"
	fieldParagrafos  = "paragrafos"
	fieldTipoKey     = "key"
)

// FromMap builds a Document from a generic JSON-like tree. It never fails: recognized fields
// whose value has an unexpected shape (including null) are kept in Extra and read as absent.
//
// Lists are read element by element. A paragraph that is not a string is skipped and an issue
// that is not an object reads as an issue with no fields; in both cases the list as received
// is also kept in Extra so the generic dump shows it unchanged.
//
// A top level "kind" string becomes Document.Kind and is removed from the body. Without it,
// the kind is resolved from the natureza code at tipo.key.
func FromMap(m map[string]any) *Document {
	doc := &Document{}
	for key, value := range m {
		switch key {
		case fieldKind:
			if tag, ok := value.(string); ok {
				doc.Kind = ParseKind(tag)
				continue
			}
			doc.setExtra(key, value)
		case fieldQuestoes:
			issues, exact, ok := issuesFrom(value)
			if !ok {
				doc.setExtra(key, value)
				continue
			}
			doc.Questoes = issues
			if !exact {
				doc.setExtra(key, value)
			}
		case fieldDispositivo:
			obj, ok := value.(map[string]any)
			if !ok {
				doc.setExtra(key, value)
				continue
			}
			doc.Dispositivo = dispositionFrom(obj)
		case fieldCorpo, fieldPedidos:
			paras, exact, ok := stringsFrom(key, value)
			if !ok {
				doc.setExtra(key, value)
				continue
			}
			if key == fieldCorpo {
				doc.Corpo = paras
			} else {
				doc.Pedidos = paras
			}
			if !exact {
				doc.setExtra(key, value)
			}
		default:
			doc.setExtra(key, value)
		}
	}
	if doc.Kind == KindUnknown {
		if code, ok := naturezaCode(m[fieldTipo]); ok {
			doc.Kind = KindFromNatureza(code)
		}
	}
	return doc
}

func (d *Document) setExtra(key string, value any) {
	if d.Extra == nil {
		d.Extra = make(map[string]any)
	}
	d.Extra[key] = value
}

// issuesFrom reads a questoes list. exact is false when some item was not an object.
func issuesFrom(value any) (issues []Issue, exact, ok bool) {
	items, ok := value.([]any)
	if !ok {
		return nil, false, false
	}
	exact = true
	issues = make([]Issue, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			slog.Debug("questao is not an object, reading it as empty", "index", i, "type", typeName(item))
			issues = append(issues, Issue{})
			exact = false
			continue
		}
		issues = append(issues, issueFrom(obj))
	}
	return issues, exact, true
}

func issueFrom(obj map[string]any) Issue {
	var issue Issue
	extra := func(key string, value any) {
		if issue.Extra == nil {
			issue.Extra = make(map[string]any)
		}
		issue.Extra[key] = value
	}
	for key, value := range obj {
		switch key {
		case fieldTema:
			if s, ok := value.(string); ok {
				issue.Tema = String(s)
				continue
			}
			extra(key, value)
		case fieldTipo:
			if s, ok := value.(string); ok {
				issue.Tipo = String(s)
				continue
			}
			extra(key, value)
		case fieldParagrafos:
			paras, exact, ok := stringsFrom("questoes.paragrafos", value)
			if ok {
				issue.Paragrafos = paras
			}
			if !exact {
				extra(key, value)
			}
		default:
			extra(key, value)
		}
	}
	return issue
}

func dispositionFrom(obj map[string]any) *Disposition {
	disp := &Disposition{}
	for key, value := range obj {
		if key == fieldParagrafos {
			paras, exact, ok := stringsFrom("dispositivo.paragrafos", value)
			if ok {
				disp.Paragrafos = paras
			}
			if exact {
				continue
			}
		}
		if disp.Extra == nil {
			disp.Extra = make(map[string]any)
		}
		disp.Extra[key] = value
	}
	return disp
}

// stringsFrom reads a paragraph list, skipping items that are not strings. ok is false when
// value is not a list at all; exact is false when anything was skipped.
func stringsFrom(field string, value any) (out []string, exact, ok bool) {
	switch v := value.(type) {
	case []string:
		return append(make([]string, 0, len(v)), v...), true, true
	case []any:
		exact = true
		out = make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				slog.Debug("skipping non-string paragraph", "field", field, "index", i, "type", typeName(item))
				exact = false
				continue
			}
			out = append(out, s)
		}
		return out, exact, true
	}
	return nil, false, false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64, uint64:
		return "number"
	}
	return "unknown"
}

// naturezaCode reads tipo.key, accepting the numeric forms produced by the codecs and by code.
func naturezaCode(tipo any) (int, bool) {
	obj, ok := tipo.(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := obj[fieldTipoKey].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}
