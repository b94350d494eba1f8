package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/moltbot/gateway/internal/common"
	"github.com/moltbot/gateway/internal/logging"
)

type Server struct {
	Name      string
	http      *http.Server
	startTime time.Time

	l zerolog.Logger
}

type Options struct {
	Name     string
	HTTPAddr string
	Handler  http.Handler
}

func NewServer(opt Options) *Server {
	logger := logging.With().Str("server", opt.Name).Logger()
	return &Server{
		Name: opt.Name,
		http: &http.Server{
			Addr:    opt.HTTPAddr,
			Handler: opt.Handler,
		},
		l: logger,
	}
}

// Start listens and serves in the background. The listener closes
// when ctx is canceled; call Stop for a graceful drain.
//
// Start is non-blocking.
func (s *Server) Start(ctx context.Context) error {
	s.startTime = time.Now()
	s.http.BaseContext = func(net.Listener) context.Context {
		return ctx
	}
	if common.IsDebug {
		s.http.ErrorLog = log.New(&s.l, "", 0)
	}

	var lc net.ListenConfig
	// Serve already closes the listener on return
	l, err := lc.Listen(ctx, "tcp", s.http.Addr)
	if err != nil {
		return err
	}

	s.l.Info().Str("addr", s.http.Addr).Msg("server started")

	go func() {
		if err := s.http.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.l.Err(err).Msg("failed to serve http server")
		}
	}()
	return nil
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), common.ServerShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		s.l.Err(err).Msg("failed to shutdown http server")
	} else {
		s.l.Info().Str("addr", s.http.Addr).Msg("server stopped")
	}
}

func (s *Server) Uptime() time.Duration {
	return time.Since(s.startTime)
}
