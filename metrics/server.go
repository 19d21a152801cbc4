package metrics

import (
	"context"
	"fmt"
	"net/http"

	"code.vegaprotocol.io/rgbwallet/logging"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namedLogger = "metrics"

// Server exposes the collectors and a liveness probe.
type Server struct {
	*httprouter.Router

	log *logging.Logger
	cfg Config
	s   *http.Server
}

func NewServer(log *logging.Logger, cfg Config) (*Server, error) {
	if err := Setup(); err != nil {
		return nil, errors.Wrap(err, "couldn't set up the metrics")
	}

	s := &Server{
		Router: httprouter.New(),
		log:    log.Named(namedLogger),
		cfg:    cfg,
	}

	s.Handler(http.MethodGet, cfg.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	s.GET("/health", s.health)

	s.s = &http.Server{
		Addr:    fmt.Sprintf("%s:%v", cfg.Host, cfg.Port),
		Handler: s,
	}

	return s, nil
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"success":true}`))
}

// Start blocks until the server is stopped.
func (s *Server) Start() error {
	s.log.Info("starting metrics server", logging.String("address", s.s.Addr))
	if err := s.s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "metrics server failed")
	}
	return nil
}

func (s *Server) Stop() error {
	return s.s.Shutdown(context.Background())
}
