// Package document holds the loosely shaped legal document consumed by the extractors.
//
// Every field is optional because the shape depends on the document kind. A nil slice or
// pointer means the field was absent; readers treat absent and empty alike.
package document

// PlaceholderTema is used as an Issue heading when the issue carries no tema.
const PlaceholderTema = "Questão"

// Recognized Issue.Tipo values.
const (
	TipoRelatorio     = "relatorio"
	TipoMerito        = "mérito"
	TipoFundamentacao = "fundamentacao"
)

// Document is one legal instrument, tagged with its kind.
type Document struct {
	// Kind travels with the document but is not part of its body.
	Kind Kind

	Questoes    []Issue
	Dispositivo *Disposition
	Corpo       []string
	Pedidos     []string

	// Extra keeps every other top level field as received. A recognized field lands here
	// too when its value could not be read in full, so the generic dump shows it unchanged.
	Extra map[string]any
}

// Issue is one argued point inside an analysis or ruling.
type Issue struct {
	Tema       *string
	Tipo       *string
	Paragrafos []string
	Extra      map[string]any
}

// Disposition is the operative part of a ruling.
type Disposition struct {
	Paragrafos []string
	Extra      map[string]any
}

// Title returns the issue heading, falling back to PlaceholderTema when tema is absent.
func (i Issue) Title() string {
	if i.Tema == nil {
		return PlaceholderTema
	}
	return *i.Tema
}

// HasTipo reports whether the issue tipo equals one of the given values exactly.
func (i Issue) HasTipo(tipos ...string) bool {
	if i.Tipo == nil {
		return false
	}
	for _, t := range tipos {
		if *i.Tipo == t {
			return true
		}
	}
	return false
}

// DispositionParagraphs returns dispositivo.paragrafos, or nil when either level is absent.
func (d *Document) DispositionParagraphs() []string {
	if d == nil || d.Dispositivo == nil {
		return nil
	}
	return d.Dispositivo.Paragrafos
}

// String returns a pointer to s. Handy for building Issues in code.
func String(s string) *string {
	return &s
}
