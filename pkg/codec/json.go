package codec

import (
	"bytes"
	"context"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/honeybbq/autosview/pkg/autosview"
	"github.com/honeybbq/autosview/pkg/document"
)

// JSONDecoder decodes a JSON object. protojson checks the syntax strictly (a single object,
// no duplicate keys, valid UTF-8); the tree is then read with json.Number leaves.
type JSONDecoder struct {
	unmarshal protojson.UnmarshalOptions
}

func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{unmarshal: protojson.UnmarshalOptions{DiscardUnknown: false}}
}

// Decode implements renderer.Decoder.
func (d *JSONDecoder) Decode(ctx context.Context, data []byte, opts autosview.DecodeOptions) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tree, err := d.tree(data)
	if err != nil {
		return nil, parseError(opts.Source, err)
	}
	doc := document.FromMap(tree)
	if opts.Kind != document.KindUnknown {
		doc.Kind = opts.Kind
	}
	return doc, nil
}

// Tree returns the normalized tree for data.
func (d *JSONDecoder) Tree(data []byte) (map[string]any, error) {
	tree, err := d.tree(data)
	if err != nil {
		return nil, parseError("", err)
	}
	return tree, nil
}

func (d *JSONDecoder) tree(data []byte) (map[string]any, error) {
	var s structpb.Struct
	if err := d.unmarshal.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree map[string]any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return tree, nil
}
