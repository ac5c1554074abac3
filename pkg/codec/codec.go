// Package codec decodes raw input into documents.
//
// Every decoder normalizes its input into the same tree shape before building the Document:
// string keys only, and numbers as json.Number carrying the literal digits, so the generic
// dump reproduces them exactly.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/honeybbq/autosview/pkg/autosview"
	"github.com/honeybbq/autosview/pkg/docerrors"
	"github.com/honeybbq/autosview/pkg/document"
)

// TreeDecoder is a Decoder that can also expose the normalized tree, used for overlays.
type TreeDecoder interface {
	Tree(data []byte) (map[string]any, error)
}

// FromTree builds a Document from a normalized tree and applies opts.Kind. Trees holding
// values with no JSON form are rejected.
func FromTree(tree map[string]any, opts autosview.DecodeOptions) (*document.Document, error) {
	// structpb 只用来校验, 转换结果会把数字变成 float64, 不能拿来建文档
	if _, err := structpb.NewStruct(tree); err != nil {
		return nil, parseError(opts.Source, err)
	}
	doc := document.FromMap(tree)
	if opts.Kind != document.KindUnknown {
		doc.Kind = opts.Kind
	}
	return doc, nil
}

// ForPath picks the decoder from a file extension; anything but .yaml/.yml is JSON.
func ForPath(path string) TreeDecoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLDecoder()
	}
	return NewJSONDecoder()
}

// ForContentType picks the decoder from an HTTP Content-Type header.
func ForContentType(contentType string) (TreeDecoder, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	switch mediaType {
	case "", "application/json", "text/json":
		return NewJSONDecoder(), nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return NewYAMLDecoder(), nil
	}
	return nil, docerrors.New(docerrors.KindUnsupported, fmt.Errorf("unsupported content type %q", contentType))
}

func parseError(source string, err error) error {
	if source == "" {
		return docerrors.New(docerrors.KindParse, err)
	}
	return docerrors.New(docerrors.KindParse, fmt.Errorf("%s: %w", source, err))
}
