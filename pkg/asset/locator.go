package asset

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/assetpipe/pkg/filesystem"
	"github.com/arthur-debert/assetpipe/pkg/logging"
	"github.com/arthur-debert/assetpipe/pkg/mime"
	"github.com/arthur-debert/assetpipe/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultSubfolders is the per-type folder convention inside each root
func DefaultSubfolders() map[types.FileType]string {
	return map[types.FileType]string{
		types.Stylesheet: "css",
		types.Javascript: "js",
		types.Image:      "img",
		types.Audio:      "audio",
		types.Video:      "video",
		types.Flash:      "flash",
	}
}

// Options configure where and how the locator searches
type Options struct {
	// Roots are searched in order; the first hit wins
	Roots      []string
	Subfolders map[types.FileType]string
	Overrides  mime.Overrides
	// Table defaults to mime.DefaultTable()
	Table mime.Table
}

// Locator maps logical filenames to files under the search roots. It keeps
// no state between calls: every Locate walks the roots again.
type Locator struct {
	fsys   types.FS
	opts   Options
	logger zerolog.Logger
}

// NewLocator creates a Locator reading through fsys
func NewLocator(fsys types.FS, opts Options) *Locator {
	if opts.Table == nil {
		opts.Table = mime.DefaultTable()
	}
	if opts.Subfolders == nil {
		opts.Subfolders = DefaultSubfolders()
	}
	return &Locator{
		fsys:   fsys,
		opts:   opts,
		logger: logging.GetLogger("asset.locator"),
	}
}

// Detect infers type, MIME and extension from the filename alone
func (l *Locator) Detect(filename string) mime.Detection {
	return l.opts.Table.Detect(filename, l.opts.Overrides)
}

// Locate builds the Asset for filename. Only an empty filename is an
// error; a file found in no root yields an unresolved Asset whose type,
// MIME and extension are still populated.
func (l *Locator) Locate(filename string) (*Asset, error) {
	a, err := New(filename, l.fsys)
	if err != nil {
		return nil, err
	}
	a.detect(l.Detect(filename))

	if escapesRoot(filename) {
		l.logger.Debug().Str("filename", filename).Msg("Refusing to resolve path outside the search roots")
		return a, nil
	}

	sub := l.opts.Subfolders[a.Type()]
	for _, root := range l.opts.Roots {
		candidate := filepath.Join(root, filename)
		l.logger.Trace().Str("candidate", candidate).Msg("Probing")
		if filesystem.Exists(l.fsys, candidate) {
			a.resolve(root, "")
			break
		}

		if sub == "" {
			continue
		}
		folder := filepath.Join(root, sub)
		candidate = filepath.Join(folder, filename)
		l.logger.Trace().Str("candidate", candidate).Msg("Probing")
		if filesystem.Exists(l.fsys, candidate) {
			a.resolve(folder, sub)
			break
		}
	}

	if folder, ok := a.ResolvedPath(); ok {
		l.logger.Debug().
			Str("filename", filename).
			Str("folder", folder).
			Str("type", a.Type().String()).
			Str("extension", a.Extension()).
			Msg("Asset located")
	} else {
		l.logger.Debug().
			Str("filename", filename).
			Int("roots", len(l.opts.Roots)).
			Msg("Asset not found in any root")
	}
	return a, nil
}

// ExpandDirectory lists the files a require_directory (recursive=false) or
// require_tree (recursive=true) directive in owning pulls in.
//
// The directory is looked up like a file: bare under each root first, then
// under the owning type's subfolder; the first existing directory is used.
// Entries are visited in lexicographic order and a tree is walked depth
// first. Only files of the owning file's type are kept (any type when that
// is unknown), the owning file itself is skipped, and symlinked
// directories are not descended into. Returned names are logical names
// relative to the root, using forward slashes.
func (l *Locator) ExpandDirectory(dir, owning string, recursive bool) []string {
	dir = path.Clean(filepath.ToSlash(strings.TrimSpace(dir)))
	if escapesRoot(dir) {
		return nil
	}
	ownType := l.Detect(owning).Type
	owning = path.Clean(filepath.ToSlash(owning))

	base, ok := l.findDirectory(dir, ownType)
	if !ok {
		l.logger.Debug().Str("dir", dir).Str("owner", owning).Msg("Directory not found in any root")
		return nil
	}

	var files []string
	l.walk(base, dir, recursive, func(logical string) {
		if logical == owning {
			return
		}
		if ownType != types.Unknown && l.Detect(path.Base(logical)).Type != ownType {
			return
		}
		files = append(files, logical)
	})
	return files
}

func (l *Locator) findDirectory(dir string, t types.FileType) (string, bool) {
	sub := l.opts.Subfolders[t]
	for _, root := range l.opts.Roots {
		candidate := filepath.Join(root, filepath.FromSlash(dir))
		if filesystem.IsDir(l.fsys, candidate) {
			return candidate, true
		}
		if sub == "" {
			continue
		}
		candidate = filepath.Join(root, sub, filepath.FromSlash(dir))
		if filesystem.IsDir(l.fsys, candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (l *Locator) walk(physical, logical string, recursive bool, visit func(string)) {
	entries, err := l.fsys.ReadDir(physical)
	if err != nil {
		l.logger.Warn().Err(err).Str("dir", physical).Msg("Failed to list directory")
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		childPhysical := filepath.Join(physical, e.Name())
		childLogical := path.Join(logical, e.Name())

		switch {
		case e.IsDir():
			if recursive {
				l.walk(childPhysical, childLogical, recursive, visit)
			}
		case e.Type()&fs.ModeSymlink != 0:
			if filesystem.Exists(l.fsys, childPhysical) {
				visit(childLogical)
			}
		default:
			visit(childLogical)
		}
	}
}

func escapesRoot(name string) bool {
	clean := path.Clean(filepath.ToSlash(name))
	return path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../")
}
