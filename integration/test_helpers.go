package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/honeybbq/autosview/backend/autos"
	"github.com/honeybbq/autosview/extractor"
	"github.com/honeybbq/autosview/pkg/autosview"
	"github.com/honeybbq/autosview/pkg/codec"
	"github.com/honeybbq/autosview/pkg/document"
)

// testdataPath 返回 ../testdata 下的文件路径
func testdataPath(parts ...string) string {
	return filepath.Join(append([]string{"..", "testdata"}, parts...)...)
}

// loadDocument 读取并合并各层文档，按扩展名选择 JSON/YAML 解码器
func loadDocument(t *testing.T, opts autosview.DecodeOptions, paths ...string) *document.Document {
	t.Helper()

	layers := make([]map[string]any, 0, len(paths))
	for _, path := range paths {
		payload, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read document: %v", err)
		}
		tree, err := codec.ForPath(path).Tree(payload)
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		layers = append(layers, tree)
	}
	merged, err := autosview.MergeLayers(layers, opts.Identifiers)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	doc, err := codec.FromTree(merged, opts)
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	return doc
}

// renderGolden 渲染文档并与 golden 文件比较
func renderGolden(t *testing.T, doc *document.Document, opts autosview.RenderOptions, golden string) *autosview.Bundle {
	t.Helper()

	bundle, err := autos.New(extractor.NewDispatcher(nil)).Render(context.Background(), doc, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	wantBytes, err := os.ReadFile(golden)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	got, want := bundleToText(bundle), string(wantBytes)
	if !compareOutputs(got, want) {
		t.Fatalf("%s", formatOutputDiff(got, want))
	}
	return bundle
}

// bundleToText 将 Bundle 转换为文本（用于测试对比）
func bundleToText(bundle *autosview.Bundle) string {
	if bundle == nil {
		return ""
	}
	return string(bundle.Content)
}

// normalizeOutput 标准化输出文本用于比较
// 1. 去除首尾空白
// 2. 统一换行符
func normalizeOutput(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return text
}

// compareOutputs 比较渲染结果，忽略首尾空白差异
func compareOutputs(got, want string) bool {
	return normalizeOutput(got) == normalizeOutput(want)
}

// formatOutputDiff 格式化输出差异信息
func formatOutputDiff(got, want string) string {
	gotNorm := normalizeOutput(got)
	wantNorm := normalizeOutput(want)

	if gotNorm == wantNorm {
		return "outputs match (after normalization)"
	}

	gotLines := strings.Split(gotNorm, "\n")
	wantLines := strings.Split(wantNorm, "\n")

	var b strings.Builder
	fmt.Fprintf(&b, "output mismatch (got %d lines, want %d lines)\n", len(gotLines), len(wantLines))
	fmt.Fprintf(&b, "--- got (normalized) ---\n%s\n", gotNorm)
	fmt.Fprintf(&b, "--- want (normalized) ---\n%s\n", wantNorm)

	maxLines := max(len(gotLines), len(wantLines))
	fmt.Fprintf(&b, "--- line-by-line diff ---\n")
	for i := 0; i < maxLines; i++ {
		var gotLine, wantLine string
		if i < len(gotLines) {
			gotLine = gotLines[i]
		}
		if i < len(wantLines) {
			wantLine = wantLines[i]
		}
		if gotLine != wantLine {
			fmt.Fprintf(&b, "Line %d differs:\n", i+1)
			fmt.Fprintf(&b, "  got:  %q\n", gotLine)
			fmt.Fprintf(&b, "  want: %q\n", wantLine)
		}
	}
	return b.String()
}
