package transform

import (
	"bytes"

	"github.com/arthur-debert/assetpipe/pkg/asset"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/js"
)

// jsMin parses the script and writes it back compacted: comments and
// layout whitespace dropped, blocks and statements shortened, local names
// renamed.
type jsMin struct {
	m *minify.M
}

func newJSMin(params map[string]interface{}) (Transform, error) {
	var none struct{}
	if err := decodeParams(params, &none); err != nil {
		return nil, err
	}
	return jsMin{m: minify.New()}, nil
}

func (t jsMin) Run(content []byte, _ *asset.Asset) ([]byte, error) {
	if len(content) == 0 {
		return content, nil
	}
	var out bytes.Buffer
	out.Grow(len(content))
	if err := js.Minify(t.m, &out, bytes.NewReader(content), nil); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
