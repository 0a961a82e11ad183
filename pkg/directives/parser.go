package directives

import (
	"strings"

	"github.com/arthur-debert/assetpipe/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultPrefixes are the directive markers, tried in this order
var DefaultPrefixes = []string{"//= ", "/*= ", "#= "}

// Directive keywords
const (
	KeywordRequire          = "require"
	KeywordRequireDirectory = "require_directory"
	KeywordRequireTree      = "require_tree"
	KeywordExclude          = "exclude"
)

// Expander lists the files a directory directive pulls in. owning is the
// file that holds the directive.
type Expander interface {
	ExpandDirectory(dir, owning string, recursive bool) []string
}

// Parser turns directive lines into a Manifest. A Parser is safe for
// concurrent use as long as its TagRegistry is.
type Parser struct {
	prefixes []string
	tags     *TagRegistry
	expander Expander
	logger   zerolog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithTags sets the registry used to rewrite directive arguments
func WithTags(tags *TagRegistry) Option {
	return func(p *Parser) { p.tags = tags }
}

// WithExpander sets the directory expander. Without one, require_directory
// and require_tree contribute nothing.
func WithExpander(e Expander) Option {
	return func(p *Parser) { p.expander = e }
}

// WithPrefixes replaces the directive markers
func WithPrefixes(prefixes ...string) Option {
	return func(p *Parser) {
		if len(prefixes) > 0 {
			p.prefixes = append([]string(nil), prefixes...)
		}
	}
}

// NewParser creates a parser with the default prefixes and no tags
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		prefixes: DefaultPrefixes,
		logger:   logging.GetLogger("directives.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns the final file list for content owned by owning
func (p *Parser) Parse(content, owning string) []string {
	return p.ParseManifest(content, owning).Files()
}

// ParseLines is Parse for input that is already split into lines
func (p *Parser) ParseLines(lines []string, owning string) []string {
	return p.ParseLinesManifest(lines, owning).Files()
}

// ParseManifest returns the full manifest for content
func (p *Parser) ParseManifest(content, owning string) *Manifest {
	return p.ParseLinesManifest(splitLines(content), owning)
}

// ParseLinesManifest returns the full manifest for pre-split lines
func (p *Parser) ParseLinesManifest(lines []string, owning string) *Manifest {
	m := NewManifest()
	for _, line := range lines {
		include, exclude := p.ParseLine(line, owning)
		for _, f := range include {
			m.Include(f)
		}
		for _, f := range exclude {
			m.Exclude(f)
		}
	}

	p.logger.Debug().
		Str("owner", owning).
		Int("included", len(m.Included)).
		Int("excluded", len(m.Excluded)).
		Msg("Parsed directives")
	return m
}

// ParseLine interprets a single line. Anything that is not a well formed
// directive yields nothing.
func (p *Parser) ParseLine(line, owning string) (include, exclude []string) {
	body, ok := p.body(line)
	if !ok {
		return nil, nil
	}

	keyword, arg, found := strings.Cut(body, " ")
	arg = strings.TrimSpace(arg)
	if !found || arg == "" {
		p.logger.Trace().Str("owner", owning).Str("line", line).Msg("Skipping malformed directive")
		return nil, nil
	}
	arg = p.tags.Apply(arg)

	switch keyword {
	case KeywordRequire:
		include = []string{arg}
	case KeywordExclude:
		exclude = []string{arg}
	case KeywordRequireDirectory:
		include = p.expand(arg, owning, false)
	case KeywordRequireTree:
		include = p.expand(arg, owning, true)
	default:
		p.logger.Trace().Str("owner", owning).Str("keyword", keyword).Msg("Ignoring unknown directive")
		return nil, nil
	}

	p.logger.Trace().
		Str("owner", owning).
		Str("keyword", keyword).
		Str("arg", arg).
		Msg("Directive")
	return include, exclude
}

// body strips the directive marker and returns what follows it
func (p *Parser) body(line string) (string, bool) {
	line = strings.TrimLeft(line, " \t\r\n")
	if line == "" {
		return "", false
	}

	for _, prefix := range p.prefixes {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			rest = strings.TrimSpace(rest)
			if strings.HasPrefix(prefix, "/*") {
				rest = strings.TrimSpace(strings.TrimSuffix(rest, "*/"))
			}
			return rest, true
		}
	}
	return "", false
}

func (p *Parser) expand(dir, owning string, recursive bool) []string {
	if p.expander == nil {
		p.logger.Debug().Str("dir", dir).Msg("No directory expander configured, skipping")
		return nil
	}
	return p.expander.ExpandDirectory(dir, owning, recursive)
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}
