package filesystem

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/arthur-debert/assetpipe/pkg/mime"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultS3Timeout = 10 * time.Second

// S3Config describes an S3-compatible bucket holding asset roots
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	// Prefix is prepended to every key, so roots can live below a folder
	Prefix  string
	UseSSL  bool
	Timeout time.Duration
}

// S3FS implements types.FS over an object store. Directories do not
// exist as objects; a name is a directory when keys exist below it.
type S3FS struct {
	client  *minio.Client
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewS3FS creates the minio client. No request is made until first use.
func NewS3FS(cfg S3Config) (*S3FS, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New(errors.ErrInvalidInput, "s3 endpoint is required").WithDetail("key", "storage.s3.endpoint")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, errors.New(errors.ErrInvalidInput, "s3 access key and secret key are required").WithDetail("key", "storage.s3.access_key")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, errors.New(errors.ErrInvalidInput, "s3 bucket is required").WithDetail("key", "storage.s3.bucket")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultS3Timeout
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStorage, "failed to create s3 client").WithDetail("endpoint", endpoint)
	}

	return &S3FS{
		client:  client,
		bucket:  bucket,
		prefix:  cleanKey(cfg.Prefix),
		timeout: timeout,
	}, nil
}

func (s *S3FS) Stat(name string) (fs.FileInfo, error) {
	if cleanKey(name) == "" {
		return &objectInfo{name: "/", isDir: true}, nil
	}
	key := objectKey(s.prefix, name)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return &objectInfo{name: path.Base(key), size: info.Size, modTime: info.LastModified}, nil
	}
	if !isNoSuchKey(err) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}

	// Not an object; a directory if anything lives below it
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: key + "/", MaxKeys: 1}) {
		if obj.Err != nil {
			return nil, &fs.PathError{Op: "stat", Path: name, Err: obj.Err}
		}
		return &objectInfo{name: path.Base(key), isDir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (s *S3FS) ReadFile(name string) ([]byte, error) {
	key := objectKey(s.prefix, name)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
		}
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return data, nil
}

// ReadDir lists one level below name, sorted by entry name
func (s *S3FS) ReadDir(name string) ([]fs.DirEntry, error) {
	key := objectKey(s.prefix, name)
	listPrefix := ""
	if key != "" {
		listPrefix = key + "/"
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var entries []fs.DirEntry
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: listPrefix, Recursive: false}) {
		if obj.Err != nil {
			return nil, &fs.PathError{Op: "readdir", Path: name, Err: obj.Err}
		}
		rel := strings.TrimPrefix(obj.Key, listPrefix)
		if rel == "" {
			continue
		}
		info := &objectInfo{name: strings.TrimSuffix(rel, "/"), size: obj.Size, modTime: obj.LastModified}
		if strings.HasSuffix(rel, "/") {
			info.isDir = true
		}
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	if len(entries) == 0 {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (s *S3FS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	key := objectKey(s.prefix, name)
	if key == "" {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrInvalid}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentTypeFor(key),
	})
	if err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	return nil
}

// MkdirAll is a no-op: prefixes come into being with their first object
func (s *S3FS) MkdirAll(string, fs.FileMode) error {
	return nil
}

func isNoSuchKey(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NoSuchBucket"
}

func contentTypeFor(key string) string {
	if _, m, ok := mime.DefaultTable().ByExtension(path.Ext(key)); ok {
		return m
	}
	return mime.DefaultMime
}

func objectKey(prefix, name string) string {
	key := cleanKey(name)
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + "/" + key
}

func cleanKey(name string) string {
	name = filepath.ToSlash(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	return strings.Trim(path.Clean("/"+name), "/")
}

type objectInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
}

func (o *objectInfo) Name() string       { return o.name }
func (o *objectInfo) Size() int64        { return o.size }
func (o *objectInfo) ModTime() time.Time { return o.modTime }
func (o *objectInfo) IsDir() bool        { return o.isDir }
func (o *objectInfo) Sys() any           { return nil }

func (o *objectInfo) Mode() fs.FileMode {
	if o.isDir {
		return fs.ModeDir | 0755
	}
	return 0644
}
