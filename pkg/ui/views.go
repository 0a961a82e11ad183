package ui

import (
	"sort"
	"time"

	"github.com/arthur-debert/assetpipe/pkg/asset"
	"github.com/arthur-debert/assetpipe/pkg/directives"
)

// AssetView describes a located asset
type AssetView struct {
	Filename  string     `json:"filename" yaml:"filename"`
	Found     bool       `json:"found" yaml:"found"`
	Type      string     `json:"type" yaml:"type"`
	Mime      string     `json:"mime" yaml:"mime"`
	Extension string     `json:"extension" yaml:"extension"`
	Folder    string     `json:"folder,omitempty" yaml:"folder,omitempty"`
	Subfolder string     `json:"subfolder,omitempty" yaml:"subfolder,omitempty"`
	Path      string     `json:"path,omitempty" yaml:"path,omitempty"`
	ModTime   *time.Time `json:"mod_time,omitempty" yaml:"mod_time,omitempty"`
}

// NewAssetView captures what the locator found for a
func NewAssetView(a *asset.Asset) *AssetView {
	v := &AssetView{
		Filename:  a.Filename(),
		Found:     a.IsResolved(),
		Type:      a.Type().String(),
		Mime:      a.Mime(),
		Extension: a.Extension(),
		Subfolder: a.Subfolder(),
	}
	v.Folder, _ = a.ResolvedPath()
	v.Path, _ = a.Path()
	if mt, ok := a.ModTime(); ok {
		v.ModTime = &mt
	}
	return v
}

// ManifestView describes the directives of one asset
type ManifestView struct {
	Filename string   `json:"filename" yaml:"filename"`
	Found    bool     `json:"found" yaml:"found"`
	Included []string `json:"included" yaml:"included"`
	Excluded []string `json:"excluded" yaml:"excluded"`
	Files    []string `json:"files" yaml:"files"`
}

// NewManifestView flattens m for display. Excluded paths are sorted.
func NewManifestView(a *asset.Asset, m *directives.Manifest) *ManifestView {
	excluded := make([]string, 0, len(m.Excluded))
	for p := range m.Excluded {
		excluded = append(excluded, p)
	}
	sort.Strings(excluded)

	included := append([]string{}, m.Included...)
	return &ManifestView{
		Filename: a.Filename(),
		Found:    a.IsResolved(),
		Included: included,
		Excluded: excluded,
		Files:    m.Files(),
	}
}

// Published is one compiled file
type Published struct {
	Filename string `json:"filename" yaml:"filename"`
	Path     string `json:"path" yaml:"path"`
}

// CompileView summarises a compile run
type CompileView struct {
	Published []Published `json:"published" yaml:"published"`
	Failed    []string    `json:"failed,omitempty" yaml:"failed,omitempty"`
}
