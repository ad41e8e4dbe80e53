package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Server struct {
	Engine *gin.Engine
	srv    *nethttp.Server
}

func NewServer(cfg RouterConfig, address string) *Server {
	engine := NewRouter(cfg)
	return &Server{
		Engine: engine,
		srv: &nethttp.Server{
			Addr:              address,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Addr() string { return s.srv.Addr }

// Run blocks until the listener fails or Shutdown is called. A clean shutdown
// returns nil.
func (s *Server) Run() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
