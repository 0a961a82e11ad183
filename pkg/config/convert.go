package config

import (
	"github.com/arthur-debert/assetpipe/pkg/asset"
	"github.com/arthur-debert/assetpipe/pkg/directives"
	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/arthur-debert/assetpipe/pkg/filesystem"
	"github.com/arthur-debert/assetpipe/pkg/mime"
	"github.com/arthur-debert/assetpipe/pkg/transform"
	"github.com/arthur-debert/assetpipe/pkg/types"
)

// Overrides returns the user MIME patterns
func (c *Config) Overrides() (mime.Overrides, error) {
	overrides, unknown := mime.NewOverrides(c.MimeTypes)
	if len(unknown) > 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "unknown asset categories in mime_types: %v", unknown)
	}
	return overrides, nil
}

// Subfolders returns the per-type folder convention
func (c *Config) Subfolders() (map[types.FileType]string, error) {
	subs := make(map[types.FileType]string, len(c.AssetTypeFolders))
	for _, name := range sortedKeys(c.AssetTypeFolders) {
		t, ok := types.ParseFileType(name)
		if !ok {
			return nil, errors.Newf(errors.ErrConfigValid, "unknown asset category %q in asset_type_folders", name)
		}
		subs[t] = c.AssetTypeFolders[name]
	}
	return subs, nil
}

// LocatorOptions assembles everything the locator needs
func (c *Config) LocatorOptions() (asset.Options, error) {
	overrides, err := c.Overrides()
	if err != nil {
		return asset.Options{}, err
	}
	subs, err := c.Subfolders()
	if err != nil {
		return asset.Options{}, err
	}
	return asset.Options{
		Roots:      append([]string(nil), c.AssetFolders...),
		Subfolders: subs,
		Overrides:  overrides,
	}, nil
}

// TransformSpecs returns the configured chains. Two filters for the same
// extension are concatenated.
func (c *Config) TransformSpecs() transform.Specs {
	specs := make(transform.Specs, len(c.Filters))
	for _, f := range c.Filters {
		for _, t := range f.Transforms {
			specs[f.Extension] = append(specs[f.Extension], transform.Spec{Name: t.Name, Params: t.Params})
		}
	}
	return specs
}

// TagRegistry registers one placeholder tag per [tags] entry, in name order
func (c *Config) TagRegistry() *directives.TagRegistry {
	tags := directives.NewTagRegistry()
	for _, kind := range sortedKeys(c.Tags) {
		tags.Register(kind, directives.PlaceholderTag(kind, c.Tags[kind]))
	}
	return tags
}

// OpenFS opens the configured storage backend
func (c *Config) OpenFS() (types.FS, error) {
	switch c.Storage.Backend {
	case "", "os":
		return filesystem.NewOS(), nil
	case "s3":
		s3 := c.Storage.S3
		fsys, err := filesystem.NewS3FS(filesystem.S3Config{
			Endpoint:  s3.Endpoint,
			Region:    s3.Region,
			AccessKey: s3.AccessKey,
			SecretKey: s3.SecretKey,
			Bucket:    s3.Bucket,
			Prefix:    s3.Prefix,
			UseSSL:    s3.UseSSL,
			Timeout:   s3.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return fsys, nil
	default:
		return nil, errors.Newf(errors.ErrConfigValid, "unknown storage backend %q", c.Storage.Backend)
	}
}
