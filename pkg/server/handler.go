package server

import (
	"bytes"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/arthur-debert/assetpipe/pkg/logging"
	"github.com/arthur-debert/assetpipe/pkg/pipeline"
)

// Processor builds one asset
type Processor interface {
	Process(filename string) (*pipeline.Result, error)
}

// Filename extracts the requested asset from a URL path: the prefix is
// stripped and only the last path element is kept.
func Filename(urlPath, prefix string) string {
	p := strings.TrimPrefix(urlPath, strings.TrimRight(prefix, "/"))
	if strings.HasSuffix(p, "/") {
		return ""
	}
	name := path.Base("/" + p)
	if name == "/" || name == "." || name == ".." {
		return ""
	}
	return name
}

// Handler serves processed assets below prefix. Missing assets get a 404;
// conditional requests are answered from the content ETag.
func Handler(p Processor, prefix string, noCache bool) http.Handler {
	logger := logging.GetLogger("server")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		filename := Filename(r.URL.Path, prefix)
		if filename == "" {
			http.NotFound(w, r)
			return
		}

		res, err := p.Process(filename)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrInvalidFilename) {
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}
			logger.Error().Err(err).Str("filename", filename).Msg("Failed to process asset")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if !res.Found {
			http.NotFound(w, r)
			return
		}

		h := w.Header()
		h.Set("Content-Type", res.Mime)
		h.Set("ETag", `"`+res.ETag+`"`)
		if noCache {
			h.Set("Cache-Control", "no-cache")
		}
		http.ServeContent(w, r, filename, res.ModTime, bytes.NewReader(res.Content))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// WithRequestLogging logs every request at debug level
func WithRequestLogging(next http.Handler) http.Handler {
	logger := logging.GetLogger("server.http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Request")
	})
}
