package pipeline

import (
	"bytes"
	"encoding/hex"
	"path/filepath"
	"time"

	"github.com/arthur-debert/assetpipe/pkg/asset"
	"github.com/arthur-debert/assetpipe/pkg/config"
	"github.com/arthur-debert/assetpipe/pkg/directives"
	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/arthur-debert/assetpipe/pkg/logging"
	"github.com/arthur-debert/assetpipe/pkg/transform"
	"github.com/arthur-debert/assetpipe/pkg/types"
	"github.com/cespare/xxhash"
	"github.com/rs/zerolog"
)

// separator goes between the owning file and each required file
const separator = "\n\n"

// Options configure a Pipeline
type Options struct {
	Locator asset.Options
	// Tags rewrite directive arguments; nil means none
	Tags *directives.TagRegistry
	// Chains are the transforms per extension; nil means none
	Chains *transform.Chains
	// LiveAssetsFolder is where Publish writes by default
	LiveAssetsFolder string
	// Output receives published files; defaults to the input storage
	Output types.FS
}

// Pipeline processes assets. It holds no per-request state and is safe for
// concurrent use.
type Pipeline struct {
	fsys       types.FS
	output     types.FS
	locator    *asset.Locator
	parser     *directives.Parser
	chains     *transform.Chains
	liveFolder string
	logger     zerolog.Logger
}

// Result is the outcome of processing one asset
type Result struct {
	Filename  string
	Found     bool
	Content   []byte
	Type      types.FileType
	Mime      string
	Extension string
	// Path is the physical file the asset resolved to
	Path string
	// ModTime is the newest modification time among the asset and the
	// files its directives pulled in
	ModTime time.Time
	// ETag is the hex xxhash64 of Content
	ETag string
	// Included lists the required files that were appended
	Included []string
}

// New creates a Pipeline reading through fsys
func New(fsys types.FS, opts Options) *Pipeline {
	locator := asset.NewLocator(fsys, opts.Locator)
	output := opts.Output
	if output == nil {
		output = fsys
	}
	return &Pipeline{
		fsys:    fsys,
		output:  output,
		locator: locator,
		parser: directives.NewParser(
			directives.WithTags(opts.Tags),
			directives.WithExpander(locator),
		),
		chains:     opts.Chains,
		liveFolder: opts.LiveAssetsFolder,
		logger:     logging.GetLogger("pipeline"),
	}
}

// NewFromConfig validates cfg, resolves every configured transform and
// builds the pipeline. Unknown transforms fail here, not per request.
func NewFromConfig(cfg *config.Config, fsys types.FS) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	locOpts, err := cfg.LocatorOptions()
	if err != nil {
		return nil, err
	}
	chains, err := transform.Build(cfg.TransformSpecs())
	if err != nil {
		return nil, err
	}

	return New(fsys, Options{
		Locator:          locOpts,
		Tags:             cfg.TagRegistry(),
		Chains:           chains,
		LiveAssetsFolder: cfg.LiveAssetsFolder,
	}), nil
}

// Locator exposes the locator the pipeline resolves with
func (p *Pipeline) Locator() *asset.Locator { return p.locator }

// Parser exposes the directive parser
func (p *Pipeline) Parser() *directives.Parser { return p.parser }

// Chains exposes the transform chains
func (p *Pipeline) Chains() *transform.Chains { return p.chains }

// Manifest locates filename and parses its directives without reading the
// required files. A missing or non-text asset has an empty manifest.
func (p *Pipeline) Manifest(filename string) (*asset.Asset, *directives.Manifest, error) {
	a, err := p.locator.Locate(filename)
	if err != nil {
		return nil, nil, err
	}
	content, ok := a.Content()
	if !ok || !a.Type().IsText() {
		return a, directives.NewManifest(), nil
	}
	return a, p.parser.ParseManifest(string(content), a.Filename()), nil
}

// Process resolves and builds one asset
func (p *Pipeline) Process(filename string) (*Result, error) {
	done := logging.LogOperationStart(p.logger, "process")
	defer done()

	a, err := p.locator.Locate(filename)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Filename:  a.Filename(),
		Type:      a.Type(),
		Mime:      a.Mime(),
		Extension: a.Extension(),
		Content:   []byte{},
	}

	content, ok := a.Content()
	if !ok {
		p.logger.Info().Str("filename", filename).Msg("Asset not found")
		return res, nil
	}
	res.Found = true
	res.Path, _ = a.Path()
	res.ModTime, _ = a.ModTime()

	if a.Type().IsText() {
		content = p.appendRequired(a, content, res)
		a.SetContent(content)
	}

	out, err := p.chains.Apply(a.Extension(), content, a)
	if err != nil {
		// already coded TRANSFORM_FAILED by the chain
		if perr, ok := err.(*errors.PipelineError); ok {
			return nil, perr.WithDetail("filename", filename)
		}
		return nil, err
	}

	res.Content = out
	res.ETag = ETag(out)

	p.logger.Debug().
		Str("filename", filename).
		Str("mime", res.Mime).
		Str("extension", res.Extension).
		Int("included", len(res.Included)).
		Int("bytes", len(out)).
		Msg("Asset processed")
	return res, nil
}

// appendRequired appends every file the directives in content require.
// Required files are read as they are: their own directives are not
// followed.
func (p *Pipeline) appendRequired(a *asset.Asset, content []byte, res *Result) []byte {
	files := p.parser.Parse(string(content), a.Filename())
	if len(files) == 0 {
		return content
	}

	var buf bytes.Buffer
	buf.Write(content)
	for _, f := range files {
		required, err := p.locator.Locate(f)
		if err != nil {
			p.logger.Warn().Err(err).Str("owner", a.Filename()).Str("file", f).Msg("Skipping invalid required file")
			continue
		}
		data, ok := required.Content()
		if !ok {
			p.logger.Warn().Str("owner", a.Filename()).Str("file", f).Msg("Required file not found, skipping")
			continue
		}

		buf.WriteString(separator)
		buf.Write(data)
		res.Included = append(res.Included, f)

		if mt, ok := required.ModTime(); ok && mt.After(res.ModTime) {
			res.ModTime = mt
		}
	}
	return buf.Bytes()
}

// Publish processes filename and writes the result to dest/filename, or to
// the live assets folder when dest is empty. It returns the written path.
func (p *Pipeline) Publish(filename, dest string) (string, error) {
	res, err := p.Process(filename)
	if err != nil {
		return "", err
	}
	if !res.Found {
		return "", errors.Newf(errors.ErrNotFound, "asset %s not found in any asset folder", filename).
			WithDetail("filename", filename)
	}

	if dest == "" {
		dest = p.liveFolder
	}
	target := filepath.Join(dest, filepath.FromSlash(filename))

	if err := p.output.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(target))
	}
	if err := p.output.WriteFile(target, res.Content, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target).
			WithDetail("path", target)
	}

	p.logger.Info().Str("filename", filename).Str("path", target).Int("bytes", len(res.Content)).Msg("Published asset")
	return target, nil
}

// ETag returns the hex xxhash64 of content
func ETag(content []byte) string {
	h := xxhash.New()
	_, _ = h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}
