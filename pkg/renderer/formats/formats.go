// Package formats looks up presentation renderers by name.
package formats

import (
	"fmt"
	"strings"

	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/docerrors"
	"github.com/honeybbq/autosview/pkg/renderer"
	htmlrenderer "github.com/honeybbq/autosview/pkg/renderer/html"
	mdrenderer "github.com/honeybbq/autosview/pkg/renderer/markdown"
	textrenderer "github.com/honeybbq/autosview/pkg/renderer/text"
)

// Default is used when no format is requested.
const Default = textrenderer.Format

var aliases = map[string]string{
	"":      textrenderer.Format,
	"txt":   textrenderer.Format,
	"plain": textrenderer.Format,
	"md":    mdrenderer.Format,
	"htm":   htmlrenderer.Format,
}

// Lookup returns a renderer for format. Names are case-insensitive.
func Lookup(format string) (renderer.Renderer[*report.Report], error) {
	name := Canonical(format)
	switch name {
	case textrenderer.Format:
		return textrenderer.NewPlainTextRenderer(), nil
	case mdrenderer.Format:
		return mdrenderer.NewRenderer(), nil
	case htmlrenderer.Format:
		return htmlrenderer.NewRenderer(), nil
	}
	return nil, docerrors.New(docerrors.KindUnsupported, fmt.Errorf("%w: %q", docerrors.ErrUnknownFormat, format))
}

// Canonical normalizes a format name, resolving aliases.
func Canonical(format string) string {
	name := strings.ToLower(strings.TrimSpace(format))
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

// Names lists the supported formats.
func Names() []string {
	return []string{textrenderer.Format, mdrenderer.Format, htmlrenderer.Format}
}
