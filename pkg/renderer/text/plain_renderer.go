package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/autosview"
	"github.com/honeybbq/autosview/pkg/docerrors"
)

const (
	Format      = "text"
	ContentType = "text/plain; charset=utf-8"
	// Divider 是章节之间的分隔线。
	Divider = "----------------------------------------"
)

// PlainTextRenderer 将章节渲染为纯文本，块之间以空行分隔。
type PlainTextRenderer struct{}

func NewPlainTextRenderer() *PlainTextRenderer {
	return &PlainTextRenderer{}
}

// Render 实现 renderer.Renderer。
func (r *PlainTextRenderer) Render(ctx context.Context, rep *report.Report, opts autosview.RenderOptions) (*autosview.Bundle, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if rep == nil {
		return nil, docerrors.New(docerrors.KindRender, fmt.Errorf("report is nil"))
	}

	bundle := autosview.NewBundle(Format, ContentType)
	bundle.Metadata.Kind = rep.Kind
	bundle.Metadata.Sections = len(rep.Sections)
	bundle.Metadata.Tag = opts.GenerationTag

	var blocks []string
	for _, sec := range rep.Sections {
		if sec.SeparatorBefore {
			blocks = append(blocks, Divider)
		}
		blocks = append(blocks, heading(sec))
		blocks = append(blocks, sec.Body...)
	}
	if len(blocks) > 0 {
		bundle.Content = []byte(strings.Join(blocks, "\n\n") + "\n")
	}
	return bundle, nil
}

func heading(sec report.Section) string {
	title := sec.Title
	if sec.Emphasis == report.EmphasisStrong {
		title = strings.ToUpper(title)
	}
	switch sec.Level {
	case report.LevelSubheading:
		return "  " + title
	case report.LevelNote:
		return "(" + title + ")"
	}
	return title
}
