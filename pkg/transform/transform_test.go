package transform_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/assetpipe/pkg/asset"
	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/arthur-debert/assetpipe/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"css-min", "css-min"},
		{"CSSMin", "css-min"},
		{"css_min", "css-min"},
		{`\App\Assets\Filters\CSSMin`, "css-min"},
		{"JSMinPlus", "js-min-plus"},
		{"  banner ", "banner"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, transform.NormalizeName(tt.in))
		})
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	names := transform.Names()
	for _, n := range []string{"banner", "css-compress", "css-min", "js-compress", "js-min", "js-min-plus"} {
		assert.Contains(t, names, n)
	}

	_, err := transform.Lookup("CSSMin")
	assert.NoError(t, err)
}

func TestRegister_Duplicate(t *testing.T) {
	err := transform.Register("JsMin", func(map[string]interface{}) (transform.Transform, error) { return nil, nil })
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestBuild_UnknownTransform(t *testing.T) {
	_, err := transform.Build(transform.Specs{
		".js": {{Name: "js-min"}, {Name: "uglify"}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTransform))
	assert.Contains(t, err.Error(), "uglify")
	assert.Equal(t, ".js", errors.GetErrorDetails(err)["extension"])
}

func TestBuild_InvalidParams(t *testing.T) {
	_, err := transform.Build(transform.Specs{
		".css": {{Name: "css-min", Params: map[string]interface{}{"colour": "red"}}},
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = transform.Build(transform.Specs{".js": {{Name: "banner"}}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestChains_ApplyInOrder(t *testing.T) {
	c, err := transform.Build(transform.Specs{
		"js": {
			{Name: "banner", Params: map[string]interface{}{"text": "/* one */"}},
			{Name: "Banner", Params: map[string]interface{}{"text": "/* two */"}},
		},
	})
	require.NoError(t, err)

	assert.True(t, c.Has(".js"))
	assert.Equal(t, []string{"banner", "banner"}, c.Stages("js"))
	assert.Equal(t, []string{".js"}, c.Extensions())

	out, err := c.Apply(".js", []byte("x"), nil)
	require.NoError(t, err)
	assert.Equal(t, "/* two */\n/* one */\nx", string(out))
}

func TestChains_NoChainIsIdentity(t *testing.T) {
	c, err := transform.Build(transform.Specs{".js": {{Name: "js-min"}}})
	require.NoError(t, err)

	in := []byte("  anything /* at all */ ")
	out, err := c.Apply(".min.js", in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	var nilChains *transform.Chains
	out, err = nilChains.Apply(".js", in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestChains_ReceivesAsset(t *testing.T) {
	var got *asset.Asset
	require.NoError(t, transform.Register("capture-asset-test", func(map[string]interface{}) (transform.Transform, error) {
		return transform.Func(func(content []byte, a *asset.Asset) ([]byte, error) {
			got = a
			return content, nil
		}), nil
	}))

	c, err := transform.Build(transform.Specs{".txt": {{Name: "capture_asset_test"}}})
	require.NoError(t, err)

	a, err := asset.New("notes.txt", nil)
	require.NoError(t, err)
	_, err = c.Apply(".txt", []byte("x"), a)
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestChains_TransformFailure(t *testing.T) {
	require.NoError(t, transform.Register("always-fails-test", func(map[string]interface{}) (transform.Transform, error) {
		return transform.Func(func([]byte, *asset.Asset) ([]byte, error) {
			return nil, fmt.Errorf("boom")
		}), nil
	}))

	c, err := transform.Build(transform.Specs{".js": {{Name: "always-fails-test"}}})
	require.NoError(t, err)

	_, err = c.Apply(".js", []byte("x"), nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTransformFailed))
	assert.Contains(t, err.Error(), "boom")
}
