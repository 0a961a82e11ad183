package asset_test

import (
	"testing"

	"github.com/arthur-debert/assetpipe/pkg/asset"
	"github.com/arthur-debert/assetpipe/pkg/mime"
	"github.com/arthur-debert/assetpipe/pkg/testutil"
	"github.com/arthur-debert/assetpipe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocator(t *testing.T, files map[string]string, roots ...string) (*asset.Locator, *testutil.MemFS) {
	t.Helper()
	fsys := testutil.NewMemFS(t, files)
	return asset.NewLocator(fsys, asset.Options{Roots: roots}), fsys
}

func TestLocate_FirstRootWins(t *testing.T) {
	loc, _ := newLocator(t, map[string]string{
		"/one/app.js": "one",
		"/two/app.js": "two",
	}, "/one", "/two")

	a, err := loc.Locate("app.js")
	require.NoError(t, err)

	folder, ok := a.ResolvedPath()
	require.True(t, ok)
	assert.Equal(t, "/one", folder)

	content, _ := a.Content()
	assert.Equal(t, "one", string(content))
}

func TestLocate_BareBeforeSubfolder(t *testing.T) {
	loc, _ := newLocator(t, map[string]string{
		"/root/app.js":    "bare",
		"/root/js/app.js": "sub",
	}, "/root")

	a, err := loc.Locate("app.js")
	require.NoError(t, err)

	folder, _ := a.ResolvedPath()
	assert.Equal(t, "/root", folder)
	assert.Equal(t, "", a.Subfolder())
}

func TestLocate_SubfolderBeforeNextRoot(t *testing.T) {
	loc, _ := newLocator(t, map[string]string{
		"/one/css/site.css": "sub",
		"/two/site.css":     "bare",
	}, "/one", "/two")

	a, err := loc.Locate("site.css")
	require.NoError(t, err)

	folder, ok := a.ResolvedPath()
	require.True(t, ok)
	assert.Equal(t, "/one/css", folder)
	assert.Equal(t, "css", a.Subfolder())

	p, _ := a.Path()
	assert.Equal(t, "/one/css/site.css", p)
}

func TestLocate_UnresolvedStillDetected(t *testing.T) {
	loc, _ := newLocator(t, nil, "/root")

	a, err := loc.Locate("missing.png")
	require.NoError(t, err)

	assert.False(t, a.IsResolved())
	assert.Equal(t, types.Image, a.Type())
	assert.Equal(t, "image/png", a.Mime())
	assert.Equal(t, ".png", a.Extension())

	_, ok := a.Content()
	assert.False(t, ok)
}

func TestLocate_DirectoryIsNotAFile(t *testing.T) {
	loc, fsys := newLocator(t, nil, "/root")
	fsys.Mkdir(t, "/root/app.js")

	a, err := loc.Locate("app.js")
	require.NoError(t, err)
	assert.False(t, a.IsResolved())
}

func TestLocate_EscapingPathStaysUnresolved(t *testing.T) {
	loc, _ := newLocator(t, map[string]string{
		"/secret.js":  "nope",
		"/root/ok.js": "yes",
	}, "/root")

	for _, name := range []string{"../secret.js", "/secret.js", "js/../../secret.js"} {
		a, err := loc.Locate(name)
		require.NoError(t, err, name)
		assert.False(t, a.IsResolved(), name)
	}
}

func TestLocate_EmptyFilename(t *testing.T) {
	loc, _ := newLocator(t, nil, "/root")
	a, err := loc.Locate("")
	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestLocate_Overrides(t *testing.T) {
	fsys := testutil.NewMemFS(t, map[string]string{"/root/js/jquery.min.js": "x"})
	overrides, unknown := mime.NewOverrides(map[string][]string{
		"javascript": {".min.js"},
	})
	require.Empty(t, unknown)

	loc := asset.NewLocator(fsys, asset.Options{Roots: []string{"/root"}, Overrides: overrides})
	a, err := loc.Locate("jquery.min.js")
	require.NoError(t, err)

	assert.True(t, a.IsResolved())
	assert.Equal(t, types.Javascript, a.Type())
	assert.Equal(t, ".min.js", a.Extension())
}

func TestLocate_CustomSubfolders(t *testing.T) {
	fsys := testutil.NewMemFS(t, map[string]string{"/root/scripts/app.js": "x"})
	loc := asset.NewLocator(fsys, asset.Options{
		Roots:      []string{"/root"},
		Subfolders: map[types.FileType]string{types.Javascript: "scripts"},
	})

	a, err := loc.Locate("app.js")
	require.NoError(t, err)
	assert.Equal(t, "scripts", a.Subfolder())
}

func TestExpandDirectory(t *testing.T) {
	files := map[string]string{
		"/root/js/app.js":            "//= require_tree lib",
		"/root/js/lib/b.js":          "b",
		"/root/js/lib/a.js":          "a",
		"/root/js/lib/style.css":     "css",
		"/root/js/lib/nested/c.js":   "c",
		"/root/js/lib/nested/d.css":  "d",
		"/root/js/lib/z/deeper/e.js": "e",
	}

	t.Run("directory", func(t *testing.T) {
		loc, _ := newLocator(t, files, "/root")
		got := loc.ExpandDirectory("lib", "app.js", false)
		assert.Equal(t, []string{"lib/a.js", "lib/b.js"}, got)
	})

	t.Run("tree depth first", func(t *testing.T) {
		loc, _ := newLocator(t, files, "/root")
		got := loc.ExpandDirectory("lib", "app.js", true)
		assert.Equal(t, []string{
			"lib/a.js",
			"lib/b.js",
			"lib/nested/c.js",
			"lib/z/deeper/e.js",
		}, got)
	})

	t.Run("owner type filters", func(t *testing.T) {
		loc, _ := newLocator(t, files, "/root")
		got := loc.ExpandDirectory("js/lib", "site.css", true)
		assert.Equal(t, []string{"js/lib/nested/d.css", "js/lib/style.css"}, got)
	})

	t.Run("owning file skipped", func(t *testing.T) {
		loc, _ := newLocator(t, files, "/root")
		got := loc.ExpandDirectory("lib", "lib/a.js", false)
		assert.Equal(t, []string{"lib/b.js"}, got)
	})

	t.Run("missing directory", func(t *testing.T) {
		loc, _ := newLocator(t, files, "/root")
		assert.Empty(t, loc.ExpandDirectory("nope", "app.js", true))
	})

	t.Run("escaping directory", func(t *testing.T) {
		loc, _ := newLocator(t, files, "/root")
		assert.Empty(t, loc.ExpandDirectory("../root", "app.js", true))
	})
}
