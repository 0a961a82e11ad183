package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/arthur-debert/assetpipe/pkg/logging"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Server serves assets over HTTP/1.1 and cleartext HTTP/2
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
}

// New wraps handler for h2c and binds it to addr
func New(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           h2c.NewHandler(handler, &http2.Server{}),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logging.GetLogger("server"),
	}
}

// Addr returns the listen address
func (s *Server) Addr() string { return s.httpServer.Addr }

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Starting asset server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
