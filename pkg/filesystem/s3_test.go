package filesystem

import (
	"io/fs"
	"testing"
	"time"

	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		prefix string
		name   string
		want   string
	}{
		{"", "assets/js/app.js", "assets/js/app.js"},
		{"", "/assets/js/app.js", "assets/js/app.js"},
		{"", "assets//js/../css/site.css", "assets/css/site.css"},
		{"site", "js/app.js", "site/js/app.js"},
		{"site", "", "site"},
		{"", "", ""},
		{"", "/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+"|"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, objectKey(tt.prefix, tt.name))
		})
	}
}

func TestNewS3FS_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  S3Config
		key  string
	}{
		{"endpoint", S3Config{}, "storage.s3.endpoint"},
		{"credentials", S3Config{Endpoint: "localhost:9000"}, "storage.s3.access_key"},
		{"bucket", S3Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, "storage.s3.bucket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewS3FS(tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestNewS3FS_BadEndpoint(t *testing.T) {
	_, err := NewS3FS(S3Config{Endpoint: "http://localhost:9000/path", AccessKey: "a", SecretKey: "b", Bucket: "assets"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStorage))
}

func TestNewS3FS_Defaults(t *testing.T) {
	s, err := NewS3FS(S3Config{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "assets",
		Prefix:    "/public/",
	})
	require.NoError(t, err)

	assert.Equal(t, "public", s.prefix)
	assert.Equal(t, defaultS3Timeout, s.timeout)

	info, err := s.Stat("/")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestObjectInfo(t *testing.T) {
	stamp := time.Now()
	file := &objectInfo{name: "app.js", size: 12, modTime: stamp}
	dir := &objectInfo{name: "js", isDir: true}

	assert.Equal(t, fs.FileMode(0644), file.Mode())
	assert.True(t, dir.Mode().IsDir())
	assert.Equal(t, int64(12), file.Size())
	assert.Equal(t, stamp, file.ModTime())

	entry := fs.FileInfoToDirEntry(dir)
	assert.True(t, entry.IsDir())
	assert.Equal(t, "js", entry.Name())
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "text/css", contentTypeFor("public/site.css"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("public/font.woff2"))
}
