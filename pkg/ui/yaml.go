package ui

import (
	"io"

	"gopkg.in/yaml.v3"
)

type yamlRenderer struct {
	out io.Writer
}

func (r *yamlRenderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

func (r *yamlRenderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

func (r *yamlRenderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

func (r *yamlRenderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
