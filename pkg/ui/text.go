package ui

import (
	"fmt"
	"io"
	"time"
)

// textRenderer writes aligned "key: value" lines without styling
type textRenderer struct {
	out io.Writer
}

func (r *textRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *AssetView:
		return r.fields(assetFields(v))
	case *ManifestView:
		if err := r.fields([][2]string{{"filename", v.Filename}, {"found", yesNo(v.Found)}}); err != nil {
			return err
		}
		for _, f := range v.Files {
			if _, err := fmt.Fprintf(r.out, "  %s\n", f); err != nil {
				return err
			}
		}
		for _, f := range v.Excluded {
			if _, err := fmt.Fprintf(r.out, "  - %s\n", f); err != nil {
				return err
			}
		}
		return nil
	case *CompileView:
		for _, p := range v.Published {
			if _, err := fmt.Fprintf(r.out, "%s -> %s\n", p.Filename, p.Path); err != nil {
				return err
			}
		}
		for _, f := range v.Failed {
			if _, err := fmt.Fprintf(r.out, "%s failed\n", f); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(r.out, "%+v\n", result)
		return err
	}
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.out, "Error: %v\n", err)
	return werr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.out, msg)
	return err
}

func (r *textRenderer) fields(fields [][2]string) error {
	width := labelWidth(fields)
	for _, f := range fields {
		if _, err := fmt.Fprintf(r.out, "%-*s %s\n", width, f[0]+":", f[1]); err != nil {
			return err
		}
	}
	return nil
}

func assetFields(v *AssetView) [][2]string {
	fields := [][2]string{
		{"filename", v.Filename},
		{"found", yesNo(v.Found)},
		{"type", v.Type},
		{"mime", v.Mime},
		{"extension", v.Extension},
	}
	if v.Found {
		fields = append(fields, [2]string{"path", v.Path})
		if v.Subfolder != "" {
			fields = append(fields, [2]string{"subfolder", v.Subfolder})
		}
	}
	if v.ModTime != nil {
		fields = append(fields, [2]string{"modified", v.ModTime.UTC().Format(time.RFC3339)})
	}
	return fields
}

func labelWidth(fields [][2]string) int {
	width := 0
	for _, f := range fields {
		if n := len(f[0]) + 1; n > width {
			width = n
		}
	}
	return width
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
