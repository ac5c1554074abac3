package markdown

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"

	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/autosview"
	"github.com/honeybbq/autosview/pkg/docerrors"
)

const (
	Format      = "markdown"
	ContentType = "text/markdown; charset=utf-8"
)

// 段落中出现 HTML 标签时（OCR / LLM 输出常见），先转换为 Markdown。
var markupPattern = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(\s[^<>]*)?/?>`)

// Block level Markdown that cannot sit inside ** without changing meaning.
var blockPattern = regexp.MustCompile("^(#{1,6} |[-*+] |[0-9]+[.)] |> |```|\\||---)")

// Renderer 将章节渲染为 Markdown。
type Renderer struct {
	conv *converter.Converter
}

func NewRenderer() *Renderer {
	return &Renderer{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
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

	var blocks []string
	converted := 0
	for _, sec := range rep.Sections {
		if sec.SeparatorBefore {
			blocks = append(blocks, "---")
		}
		blocks = append(blocks, heading(sec))
		if sec.Preformatted {
			for _, p := range sec.Body {
				blocks = append(blocks, "```json\n"+p+"\n```")
			}
			continue
		}
		for _, p := range sec.Body {
			md, ok, err := r.paragraph(p)
			if err != nil {
				return nil, docerrors.New(docerrors.KindRender, fmt.Errorf("section %q: %w", sec.Title, err))
			}
			if ok {
				converted++
			}
			if sec.Emphasis == report.EmphasisStrong && md != "" {
				if ok {
					md = strong(md)
				} else {
					md = "**" + md + "**"
				}
			}
			blocks = append(blocks, md)
		}
	}
	if converted > 0 {
		bundle.Metadata.Custom["converted_paragraphs"] = fmt.Sprint(converted)
	}
	if len(blocks) > 0 {
		bundle.Content = []byte(strings.Join(blocks, "\n\n") + "\n")
	}
	return bundle, nil
}

// paragraph 返回段落的 Markdown 形式，以及是否经过了 HTML 转换。
func (r *Renderer) paragraph(p string) (string, bool, error) {
	if !markupPattern.MatchString(p) {
		return p, false, nil
	}
	md, err := r.conv.ConvertString(p)
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(md), true, nil
}

// strong 对转换后的 Markdown 逐块加粗。块级结构和已含 ** 的块保持原样，** 不能嵌套。
func strong(md string) string {
	var out []string
	for _, block := range strings.Split(md, "\n\n") {
		block = strings.TrimSpace(block)
		switch {
		case block == "":
			continue
		case blockPattern.MatchString(block), strings.Contains(block, "**"):
			out = append(out, block)
		default:
			out = append(out, "**"+block+"**")
		}
	}
	return strings.Join(out, "\n\n")
}

func heading(sec report.Section) string {
	switch sec.Level {
	case report.LevelSubheading:
		return "### " + sec.Title
	case report.LevelNote:
		return "_" + sec.Title + "_"
	}
	return "## " + sec.Title
}
