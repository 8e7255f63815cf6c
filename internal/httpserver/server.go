package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crm-backoffice/internal/gateway"
)

// Deps carries the collaborators the router needs.
type Deps struct {
	Gateway *gateway.Gateway
	Auth    *gateway.Authenticator
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// Handler builds the API handler without binding it to a listener. Useful
// for tests that want to mount the real routes on an httptest server.
func Handler(logger *log.Logger, deps Deps, corsOrigins []string) (http.Handler, error) {
	return buildRouter(logger, deps, corsOrigins)
}

// New builds a Server exposing the mock REST API.
func New(addr string, logger *log.Logger, deps Deps, corsOrigins []string) (*Server, error) {
	router, err := buildRouter(logger, deps, corsOrigins)
	if err != nil {
		return nil, err
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
