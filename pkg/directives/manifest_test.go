package directives_test

import (
	"testing"

	"github.com/arthur-debert/assetpipe/pkg/directives"
	"github.com/stretchr/testify/assert"
)

func TestManifest_Files(t *testing.T) {
	m := directives.NewManifest()
	m.Include("a.js")
	m.Include("b.js")
	m.Include("a.js")
	m.Exclude("c.js")
	m.Include("c.js")

	assert.Equal(t, []string{"a.js", "b.js", "c.js"}, m.Included)
	assert.Equal(t, []string{"a.js", "b.js"}, m.Files())
}

func TestManifest_ZeroValue(t *testing.T) {
	var m directives.Manifest
	m.Include("a.js")
	m.Exclude("b.js")

	assert.Equal(t, []string{"a.js"}, m.Files())
	assert.Equal(t, []string{}, (&directives.Manifest{}).Files())
}
