package transform

import (
	"fmt"

	"github.com/arthur-debert/assetpipe/pkg/asset"
)

type bannerOptions struct {
	Text string `mapstructure:"text"`
}

// banner prepends a fixed text, typically a license comment
type banner struct {
	text []byte
}

func newBanner(params map[string]interface{}) (Transform, error) {
	var opts bannerOptions
	if err := decodeParams(params, &opts); err != nil {
		return nil, err
	}
	if opts.Text == "" {
		return nil, fmt.Errorf("banner needs a non-empty text parameter")
	}
	return &banner{text: []byte(opts.Text + "\n")}, nil
}

func (b *banner) Run(content []byte, _ *asset.Asset) ([]byte, error) {
	out := make([]byte, 0, len(b.text)+len(content))
	out = append(out, b.text...)
	return append(out, content...), nil
}
