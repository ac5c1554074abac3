package autos

import (
	"context"

	"github.com/honeybbq/autosview/extractor"
	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/autosview"
	"github.com/honeybbq/autosview/pkg/document"
	"github.com/honeybbq/autosview/pkg/renderer/formats"
)

// Backend 串联章节提取与展示渲染：文档 → Report → Bundle。
type Backend struct {
	dispatcher *extractor.Dispatcher
}

func New(d *extractor.Dispatcher) *Backend {
	if d == nil {
		d = extractor.NewDispatcher(nil)
	}
	return &Backend{dispatcher: d}
}

// Sections 只做章节提取，不渲染。
func (b *Backend) Sections(ctx context.Context, doc *document.Document, opts autosview.RenderOptions) (*report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.dispatcher.DispatchDocument(doc, opts)
}

// Render 提取章节并按 opts.Format 渲染。
func (b *Backend) Render(ctx context.Context, doc *document.Document, opts autosview.RenderOptions) (*autosview.Bundle, error) {
	r, err := formats.Lookup(opts.Format)
	if err != nil {
		return nil, err
	}
	rep, err := b.Sections(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, rep, opts)
}

// Kinds 列出有专用提取器的类型。
func (b *Backend) Kinds() []document.Kind {
	return b.dispatcher.Kinds()
}
