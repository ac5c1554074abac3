package renderer

import (
	"context"

	"github.com/honeybbq/autosview/pkg/autosview"
)

// Renderer 定义展示层接口，使用泛型约束输入类型。
type Renderer[T any] interface {
	Render(ctx context.Context, doc T, opts autosview.RenderOptions) (*autosview.Bundle, error)
}

// Decoder 将原始输入解析成领域文档。
type Decoder[T any] interface {
	Decode(ctx context.Context, data []byte, opts autosview.DecodeOptions) (T, error)
}
