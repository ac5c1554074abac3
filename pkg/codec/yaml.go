package codec

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/honeybbq/autosview/pkg/autosview"
	"github.com/honeybbq/autosview/pkg/document"
)

// YAMLDecoder decodes a YAML mapping.
type YAMLDecoder struct{}

func NewYAMLDecoder() *YAMLDecoder {
	return &YAMLDecoder{}
}

// Decode implements renderer.Decoder.
func (d *YAMLDecoder) Decode(ctx context.Context, data []byte, opts autosview.DecodeOptions) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tree, err := d.tree(data)
	if err != nil {
		return nil, parseError(opts.Source, err)
	}
	return FromTree(tree, opts)
}

// Tree returns the normalized tree for data.
func (d *YAMLDecoder) Tree(data []byte) (map[string]any, error) {
	tree, err := d.tree(data)
	if err != nil {
		return nil, parseError("", err)
	}
	return tree, nil
}

func (d *YAMLDecoder) tree(data []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	tree, ok := normalizeYAML(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document must be a mapping, got %T", raw)
	}
	if _, err := structpb.NewStruct(tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// normalizeYAML rewrites what yaml.v3 produces for untyped targets into JSON-shaped values:
// non-string keys become strings, timestamps become RFC 3339 text and numbers become
// json.Number. NaN and infinities stay float64; the generic dump reports them as
// unserializable.
func normalizeYAML(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeYAML(item)
		}
		return out
	case time.Time:
		return v.Format(time.RFC3339)
	case int:
		return json.Number(strconv.Itoa(v))
	case int64:
		return json.Number(strconv.FormatInt(v, 10))
	case uint64:
		return json.Number(strconv.FormatUint(v, 10))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v
		}
		return json.Number(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return v
}
