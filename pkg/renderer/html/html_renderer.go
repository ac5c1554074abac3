package html

import (
	"context"
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/autosview"
	"github.com/honeybbq/autosview/pkg/docerrors"
)

const (
	Format      = "html"
	ContentType = "text/html; charset=utf-8"
)

// Renderer 将章节渲染为 HTML 片段，段落经过 bluemonday 清洗。
type Renderer struct {
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	return &Renderer{policy: bluemonday.UGCPolicy()}
}

// Render 实现 renderer.Renderer。
func (r *Renderer) Render(ctx context.Context, rep *report.Report, opts autosview.RenderOptions) (*autosview.Bundle, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, docerrors.New(docerrors.KindRender, fmt.Errorf("report is nil"))
	}

	bundle := autosview.NewBundle(Format, ContentType)
	bundle.Metadata.Kind = rep.Kind
	bundle.Metadata.Sections = len(rep.Sections)
	bundle.Metadata.Tag = opts.GenerationTag

	if len(rep.Sections) == 0 {
		return bundle, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<article class=\"autosview\" data-kind=\"%s\">\n", stdhtml.EscapeString(rep.Kind))
	for _, sec := range rep.Sections {
		if sec.SeparatorBefore {
			b.WriteString("<hr>\n")
		}
		if sec.Emphasis == report.EmphasisStrong {
			b.WriteString("<section class=\"strong\">\n")
		} else {
			b.WriteString("<section>\n")
		}
		tag := headingTag(sec.Level)
		fmt.Fprintf(&b, "<%s>%s</%s>\n", tag, stdhtml.EscapeString(sec.Title), tag)
		for _, p := range sec.Body {
			switch {
			case sec.Preformatted:
				fmt.Fprintf(&b, "<pre>%s</pre>\n", stdhtml.EscapeString(p))
			case sec.Emphasis == report.EmphasisStrong:
				fmt.Fprintf(&b, "<p><strong>%s</strong></p>\n", r.policy.Sanitize(p))
			default:
				fmt.Fprintf(&b, "<p>%s</p>\n", r.policy.Sanitize(p))
			}
		}
		b.WriteString("</section>\n")
	}
	b.WriteString("</article>\n")

	bundle.Content = []byte(b.String())
	return bundle, nil
}

func headingTag(level report.Level) string {
	switch level {
	case report.LevelSubheading:
		return "h3"
	case report.LevelNote:
		return "h4"
	}
	return "h2"
}
