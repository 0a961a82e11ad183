package transform

import (
	"sort"
	"strings"

	"github.com/arthur-debert/assetpipe/pkg/asset"
	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/arthur-debert/assetpipe/pkg/logging"
	"github.com/arthur-debert/assetpipe/pkg/registry"
	"github.com/iancoleman/strcase"
)

// Transform maps content to new content. The asset gives access to the
// MIME type and extension the content was resolved with; it may be nil.
type Transform interface {
	Run(content []byte, a *asset.Asset) ([]byte, error)
}

// Func adapts a plain function to Transform
type Func func(content []byte, a *asset.Asset) ([]byte, error)

func (f Func) Run(content []byte, a *asset.Asset) ([]byte, error) { return f(content, a) }

// Factory creates a configured Transform
type Factory func(params map[string]interface{}) (Transform, error)

// Spec names one stage of a chain
type Spec struct {
	Name   string
	Params map[string]interface{}
}

// Specs maps an extension (".min.js") to its ordered stages
type Specs map[string][]Spec

// NormalizeName maps a transform name to its registry key
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	return strcase.ToKebab(name)
}

var factories = registry.NewWithNormalizer[Factory](NormalizeName)

// Register adds a factory under name
func Register(name string, f Factory) error {
	return factories.Register(name, f)
}

// Lookup returns the factory registered for name
func Lookup(name string) (Factory, error) {
	f, err := factories.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrUnknownTransform, "unknown transform %q", name).
			WithDetail("transform", name)
	}
	return f, nil
}

// Names lists the registered transform names
func Names() []string {
	return factories.List()
}

// New creates a single transform by name
func New(name string, params map[string]interface{}) (Transform, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	t, err := f(params)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid parameters for transform %q", name).
			WithDetail("transform", name)
	}
	return t, nil
}

type stage struct {
	name string
	t    Transform
}

// Chains holds one ordered list of transforms per extension. It is
// immutable once built and safe for concurrent use.
type Chains struct {
	chains map[string][]stage
}

// Build resolves every spec into a transform. Any unknown name fails the
// whole build.
func Build(specs Specs) (*Chains, error) {
	logger := logging.GetLogger("transform")
	c := &Chains{chains: make(map[string][]stage, len(specs))}

	exts := make([]string, 0, len(specs))
	for ext := range specs {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	for _, ext := range exts {
		key := normalizeExtension(ext)
		if key == "" {
			return nil, errors.New(errors.ErrInvalidInput, "transform chain needs an extension")
		}
		for _, s := range specs[ext] {
			t, err := New(s.Name, s.Params)
			if err != nil {
				return nil, errors.Wrapf(err, errors.GetErrorCode(err),
					"cannot build transform chain for %s", key).
					WithDetail("extension", key)
			}
			c.chains[key] = append(c.chains[key], stage{name: NormalizeName(s.Name), t: t})
		}
		logger.Debug().
			Str("extension", key).
			Int("stages", len(c.chains[key])).
			Msg("Built transform chain")
	}
	return c, nil
}

// Has reports whether a chain exists for ext
func (c *Chains) Has(ext string) bool {
	if c == nil {
		return false
	}
	return len(c.chains[normalizeExtension(ext)]) > 0
}

// Stages lists the transform names of the chain for ext
func (c *Chains) Stages(ext string) []string {
	if c == nil {
		return nil
	}
	var names []string
	for _, s := range c.chains[normalizeExtension(ext)] {
		names = append(names, s.name)
	}
	return names
}

// Extensions lists the extensions that have a chain
func (c *Chains) Extensions() []string {
	if c == nil {
		return nil
	}
	exts := make([]string, 0, len(c.chains))
	for ext := range c.chains {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Apply runs the chain for ext, feeding each stage the previous output.
// Without a chain the content is returned unchanged.
func (c *Chains) Apply(ext string, content []byte, a *asset.Asset) ([]byte, error) {
	if c == nil {
		return content, nil
	}
	key := normalizeExtension(ext)
	for _, s := range c.chains[key] {
		out, err := s.t.Run(content, a)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTransformFailed,
				"transform %s failed on %s content", s.name, key).
				WithDetail("transform", s.name).
				WithDetail("extension", key)
		}
		content = out
	}
	return content, nil
}

func normalizeExtension(ext string) string {
	ext = strings.TrimLeft(strings.TrimSpace(ext), ".")
	if ext == "" {
		return ""
	}
	return "." + ext
}
