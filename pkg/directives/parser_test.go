package directives_test

import (
	"testing"

	"github.com/arthur-debert/assetpipe/pkg/directives"
	"github.com/stretchr/testify/assert"
)

type stubExpander struct {
	dirs  map[string][]string
	calls []string
}

func (s *stubExpander) ExpandDirectory(dir, owning string, recursive bool) []string {
	mode := "dir"
	if recursive {
		mode = "tree"
	}
	s.calls = append(s.calls, mode+":"+dir+":"+owning)
	if recursive {
		return s.dirs[dir+"/**"]
	}
	return s.dirs[dir]
}

func TestParseLines_ExcludeWinsRegardlessOfOrder(t *testing.T) {
	p := directives.NewParser()
	got := p.ParseLines([]string{
		"//= require a.js",
		"//= exclude b.js",
		"//= require b.js",
	}, "app.js")

	assert.Equal(t, []string{"a.js"}, got)
}

func TestParseLines_DuplicatesKeepFirstPosition(t *testing.T) {
	p := directives.NewParser()
	got := p.ParseLines([]string{
		"//= require a.js",
		"//= require b.js",
		"//= require a.js",
		"//= require c.js",
	}, "app.js")

	assert.Equal(t, []string{"a.js", "b.js", "c.js"}, got)
}

func TestParseLines_Malformed(t *testing.T) {
	p := directives.NewParser()

	tests := []struct {
		name string
		line string
	}{
		{"marker without body", "//= "},
		{"keyword without marker", "require"},
		{"keyword without argument", "//= require"},
		{"blank argument", "//= require    "},
		{"marker without space", "//=require a.js"},
		{"unknown keyword", "//= include a.js"},
		{"keyword case matters", "//= REQUIRE a.js"},
		{"plain comment", "// require a.js"},
		{"empty line", ""},
		{"whitespace line", "   \t"},
		{"code", "var x = 1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			include, exclude := p.ParseLine(tt.line, "app.js")
			assert.Empty(t, include)
			assert.Empty(t, exclude)
		})
	}
}

func TestParseLine_Prefixes(t *testing.T) {
	p := directives.NewParser()

	tests := []struct {
		name string
		line string
		want string
	}{
		{"slash", "//= require a.js", "a.js"},
		{"block", "/*= require a.css */", "a.css"},
		{"block without close", "/*= require a.css", "a.css"},
		{"hash", "#= require a.coffee", "a.coffee"},
		{"leading whitespace", "  \t//= require a.js", "a.js"},
		{"argument padding", "//= require   a.js  ", "a.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			include, exclude := p.ParseLine(tt.line, "x")
			assert.Equal(t, []string{tt.want}, include)
			assert.Empty(t, exclude)
		})
	}
}

func TestParse_SplitsContent(t *testing.T) {
	p := directives.NewParser()
	content := "//= require a.js\r\nvar x = 1;\n\n  //= require b.js\n#= exclude a.js\n"

	assert.Equal(t, []string{"b.js"}, p.Parse(content, "app.js"))
	assert.Empty(t, p.Parse("", "app.js"))
	assert.NotNil(t, p.Parse("", "app.js"))
}

func TestParseManifest(t *testing.T) {
	p := directives.NewParser()
	m := p.ParseManifest("//= require a.js\n//= require b.js\n//= exclude b.js", "app.js")

	assert.Equal(t, []string{"a.js", "b.js"}, m.Included)
	assert.True(t, m.IsExcluded("b.js"))
	assert.Equal(t, []string{"a.js"}, m.Files())
}

func TestParse_DirectoryDirectives(t *testing.T) {
	exp := &stubExpander{dirs: map[string][]string{
		"lib":    {"lib/a.js", "lib/b.js"},
		"lib/**": {"lib/a.js", "lib/b.js", "lib/sub/c.js"},
	}}
	p := directives.NewParser(directives.WithExpander(exp))

	got := p.ParseLines([]string{
		"//= require_directory lib",
		"//= require_tree lib",
		"//= exclude lib/b.js",
	}, "app.js")

	assert.Equal(t, []string{"lib/a.js", "lib/sub/c.js"}, got)
	assert.Equal(t, []string{"dir:lib:app.js", "tree:lib:app.js"}, exp.calls)
}

func TestParse_DirectoryWithoutExpander(t *testing.T) {
	p := directives.NewParser()
	assert.Equal(t, []string{"a.js"}, p.Parse("//= require_tree lib\n//= require a.js", "app.js"))
}

func TestParse_TagsRewriteArguments(t *testing.T) {
	tags := directives.NewTagRegistry()
	tags.Register("theme", directives.PlaceholderTag("theme", "themes"))

	exp := &stubExpander{dirs: map[string][]string{"themes/admin/js": {"themes/admin/js/x.js"}}}
	p := directives.NewParser(directives.WithTags(tags), directives.WithExpander(exp))

	got := p.Parse("//= require {theme:admin}/a.js\n//= require_directory {theme:admin}/js", "app.js")
	assert.Equal(t, []string{"themes/admin/a.js", "themes/admin/js/x.js"}, got)
}

func TestWithPrefixes(t *testing.T) {
	p := directives.NewParser(directives.WithPrefixes("-- "))

	assert.Equal(t, []string{"a.sql"}, p.Parse("-- require a.sql\n//= require b.js", "x.sql"))
}

func TestParse_Pure(t *testing.T) {
	p := directives.NewParser()
	content := "//= require a.js\n//= require b.js"
	assert.Equal(t, p.Parse(content, "app.js"), p.Parse(content, "app.js"))
}
