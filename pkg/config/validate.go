package config

import (
	"sort"
	"strings"

	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/arthur-debert/assetpipe/pkg/types"
)

// Validate checks the values Load cannot type-check. It does not resolve
// transform names; pipeline construction does that.
func (c *Config) Validate() error {
	switch c.Environment {
	case Development, Production:
	default:
		return invalid("environment", "environment must be %q or %q, got %q", Development, Production, c.Environment)
	}

	if len(c.AssetFolders) == 0 {
		return invalid("asset_folders", "at least one asset folder is required")
	}
	for _, f := range c.AssetFolders {
		if strings.TrimSpace(f) == "" {
			return invalid("asset_folders", "asset folders cannot be blank")
		}
	}
	if c.IsProduction() && strings.TrimSpace(c.LiveAssetsFolder) == "" {
		return invalid("live_assets_folder", "production needs a live assets folder")
	}

	for _, category := range sortedKeys(c.AssetTypeFolders) {
		if _, ok := types.ParseFileType(category); !ok {
			return invalid("asset_type_folders", "unknown asset category %q", category)
		}
	}
	for _, category := range sortedKeys(c.MimeTypes) {
		if _, ok := types.ParseFileType(category); !ok {
			return invalid("mime_types", "unknown asset category %q", category)
		}
	}

	for i, f := range c.Filters {
		if strings.Trim(f.Extension, ". ") == "" {
			return invalid("filters", "filter #%d has no extension", i+1)
		}
		for _, t := range f.Transforms {
			if strings.TrimSpace(t.Name) == "" {
				return invalid("filters", "filter for %s has a transform without a name", f.Extension)
			}
		}
	}

	for _, kind := range sortedKeys(c.Tags) {
		if strings.ContainsAny(kind, "{}:") || strings.TrimSpace(kind) == "" {
			return invalid("tags", "invalid tag name %q", kind)
		}
	}

	switch c.Storage.Backend {
	case "", "os":
	case "s3":
		if c.Storage.S3.Endpoint == "" || c.Storage.S3.Bucket == "" {
			return invalid("storage.s3", "s3 storage needs an endpoint and a bucket")
		}
	default:
		return invalid("storage.backend", "unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

func invalid(key, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrConfigValid, format, args...).WithDetail("key", key)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
