package config

import "time"

// Environments
const (
	Development = "development"
	Production  = "production"
)

// Config is the effective assetpipe configuration
type Config struct {
	Environment      string `koanf:"environment" toml:"environment"`
	LiveAssetsFolder string `koanf:"live_assets_folder" toml:"live_assets_folder"`
	AssetURL         string `koanf:"asset_url" toml:"asset_url"`
	// AssetFolders are the search roots, in priority order
	AssetFolders []string `koanf:"asset_folders" toml:"asset_folders"`
	// AssetTypeFolders maps a category name to its subfolder
	AssetTypeFolders map[string]string `koanf:"asset_type_folders" toml:"asset_type_folders"`
	// MimeTypes maps a category name to extension patterns
	MimeTypes map[string][]string `koanf:"mime_types" toml:"mime_types"`
	Filters   []FilterConfig      `koanf:"filters" toml:"filters"`
	// Tags maps a placeholder kind to the folder it expands to
	Tags    map[string]string `koanf:"tags" toml:"tags"`
	Server  ServerConfig      `koanf:"server" toml:"server"`
	Storage StorageConfig     `koanf:"storage" toml:"storage"`
}

// FilterConfig is the transform chain for one extension
type FilterConfig struct {
	Extension  string            `koanf:"extension" toml:"extension"`
	Transforms []TransformConfig `koanf:"transforms" toml:"transforms"`
}

// TransformConfig names one transform and its parameters
type TransformConfig struct {
	Name   string                 `koanf:"name" toml:"name"`
	Params map[string]interface{} `koanf:"params" toml:"params,omitempty"`
}

type ServerConfig struct {
	Addr string `koanf:"addr" toml:"addr"`
}

// StorageConfig selects where asset roots live
type StorageConfig struct {
	// Backend is "os" or "s3"
	Backend string   `koanf:"backend" toml:"backend"`
	S3      S3Config `koanf:"s3" toml:"s3"`
}

type S3Config struct {
	Endpoint  string        `koanf:"endpoint" toml:"endpoint"`
	Region    string        `koanf:"region" toml:"region"`
	AccessKey string        `koanf:"access_key" toml:"-"`
	SecretKey string        `koanf:"secret_key" toml:"-"`
	Bucket    string        `koanf:"bucket" toml:"bucket"`
	Prefix    string        `koanf:"prefix" toml:"prefix"`
	UseSSL    bool          `koanf:"use_ssl" toml:"use_ssl"`
	Timeout   time.Duration `koanf:"timeout" toml:"timeout"`
}

// IsProduction reports whether processed assets are published to disk
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
