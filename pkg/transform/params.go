package transform

import (
	"github.com/go-viper/mapstructure/v2"
)

// decodeParams fills out from a loosely typed parameter map. Values coming
// from environment variables arrive as strings, so weak typing is on.
func decodeParams(params map[string]interface{}, out interface{}) error {
	if len(params) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(params)
}
