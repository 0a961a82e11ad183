package asset

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/arthur-debert/assetpipe/pkg/filesystem"
	"github.com/arthur-debert/assetpipe/pkg/logging"
	"github.com/arthur-debert/assetpipe/pkg/mime"
	"github.com/arthur-debert/assetpipe/pkg/types"
	"github.com/rs/zerolog"
)

// Asset is the resolved identity of one requested asset. It is built per
// request and never shared between requests.
type Asset struct {
	filename string
	fsys     types.FS

	// folder (root plus optional subfolder) the file was found in
	folder    string
	subfolder string
	resolved  bool

	fileType  types.FileType
	mime      string
	extension string

	content    []byte
	hasContent bool
	loaded     bool

	logger zerolog.Logger
}

// New creates an unresolved asset. An empty filename is rejected.
func New(filename string, fsys types.FS) (*Asset, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, errors.New(errors.ErrInvalidFilename, "asset filename cannot be empty")
	}
	return &Asset{
		filename: filename,
		fsys:     fsys,
		fileType: types.Unknown,
		mime:     mime.DefaultMime,
		logger:   logging.GetLogger("asset"),
	}, nil
}

func (a *Asset) Filename() string     { return a.filename }
func (a *Asset) Type() types.FileType { return a.fileType }
func (a *Asset) Mime() string         { return a.mime }
func (a *Asset) Extension() string    { return a.extension }
func (a *Asset) Subfolder() string    { return a.subfolder }
func (a *Asset) IsResolved() bool     { return a.resolved }

func (a *Asset) detect(d mime.Detection) {
	a.fileType = d.Type
	a.mime = d.Mime
	a.extension = d.Extension
}

// ResolvedPath returns the folder the file was found in
func (a *Asset) ResolvedPath() (string, bool) {
	return a.folder, a.resolved
}

// Path returns the full physical path of the file
func (a *Asset) Path() (string, bool) {
	if !a.resolved {
		return "", false
	}
	return filepath.Join(a.folder, a.filename), true
}

func (a *Asset) resolve(folder, subfolder string) {
	a.folder = folder
	a.subfolder = subfolder
	a.resolved = true
}

// Content returns the asset bytes, reading them on first use. The second
// result is false when there is nothing to read (unresolved or unreadable
// file), which is distinct from a file that exists but is empty.
func (a *Asset) Content() ([]byte, bool) {
	if a.loaded {
		return a.content, a.hasContent
	}
	a.loaded = true

	p, ok := a.Path()
	if !ok || a.fsys == nil {
		return nil, false
	}

	data, err := a.fsys.ReadFile(p)
	if err != nil {
		a.logger.Warn().Err(err).Str("path", p).Msg("Failed to read asset, treating as absent")
		return nil, false
	}
	if data == nil {
		data = []byte{}
	}
	a.content = data
	a.hasContent = true
	return a.content, true
}

// SetContent replaces the memoised content. Content returns exactly b
// afterwards, whether or not the file exists.
func (a *Asset) SetContent(b []byte) {
	if b == nil {
		b = []byte{}
	}
	a.content = b
	a.hasContent = true
	a.loaded = true
}

// ModTime returns the file's modification time when it is resolved
func (a *Asset) ModTime() (time.Time, bool) {
	p, ok := a.Path()
	if !ok || a.fsys == nil {
		return time.Time{}, false
	}
	return filesystem.ModTime(a.fsys, p)
}
