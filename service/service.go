package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	vhttp "code.vegaprotocol.io/rgbwallet/libs/http"
	"code.vegaprotocol.io/rgbwallet/logging"
	"code.vegaprotocol.io/rgbwallet/metrics"
	"code.vegaprotocol.io/rgbwallet/rgb"
	"code.vegaprotocol.io/rgbwallet/rgb/node"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	namedLogger = "service"

	TraceIDHeader  = "X-Trace-Id"
	unmatchedRoute = "unmatched"
)

// State is the lifecycle stage of a Service.
type State uint32

const (
	StateUnbound State = iota
	StateListening
	StateShuttingDown
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUnbound:
		return "unbound"
	case StateListening:
		return "listening"
	case StateShuttingDown:
		return "shutting-down"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

type traceIDKey struct{}

type Service struct {
	router  *mux.Router
	handler http.Handler

	cfg    Config
	log    *logging.Logger
	client rgb.Client
	rl     *vhttp.RateLimit

	mu       sync.Mutex
	s        *http.Server
	listener net.Listener
	state    atomic.Uint32
}

// NewService builds a service backed by the RGB node described by nodeCfg.
func NewService(log *logging.Logger, cfg Config, nodeCfg node.Config) (*Service, error) {
	client, err := node.New(log, nodeCfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialise the node client: %w", err)
	}
	return NewServiceWith(log, cfg, client)
}

func NewServiceWith(log *logging.Logger, cfg Config, client rgb.Client) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		router: mux.NewRouter(),
		cfg:    cfg,
		log:    log.Named(namedLogger),
		client: client,
	}

	if cfg.RateLimit.Enabled {
		rl, err := vhttp.NewRateLimit(cfg.RateLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to create RateLimit: %w", err)
		}
		s.rl = rl
	}

	s.router.NotFoundHandler = http.HandlerFunc(s.notFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.methodNotAllowed)

	r := s.router
	if cfg.PathPrefix != "" {
		r = s.router.PathPrefix(cfg.PathPrefix).Subrouter()
		r.NotFoundHandler = s.router.NotFoundHandler
		r.MethodNotAllowedHandler = s.router.MethodNotAllowedHandler
	}

	r.HandleFunc("/wallet/address", s.GetAddress).Methods(http.MethodGet)
	r.HandleFunc("/wallet/balance", s.GetBalance).Methods(http.MethodGet)
	r.HandleFunc("/wallet/unspents", s.ListUnspents).Methods(http.MethodGet)
	r.HandleFunc("/wallet/prepare-issuance", s.PrepareIssuance).Methods(http.MethodPost)
	r.HandleFunc("/wallet/send", s.SendBTC).Methods(http.MethodPost)

	// Static asset routes come first so they are never read as an asset ID.
	r.HandleFunc("/assets", s.ListAssets).Methods(http.MethodGet)
	r.HandleFunc("/assets/transfers", s.ListTransfers).Methods(http.MethodGet)
	r.HandleFunc("/assets/issue", s.IssueAsset).Methods(http.MethodPost)
	r.HandleFunc("/assets/invoice", s.Invoice).Methods(http.MethodPost)
	r.HandleFunc("/assets/refresh", s.Refresh).Methods(http.MethodPost)
	r.HandleFunc("/assets/{id}", s.GetAsset).Methods(http.MethodGet)
	r.HandleFunc("/assets/{id}/send", s.SendAssets).Methods(http.MethodPost)

	s.handler = s.traceMiddleware(
		s.metricsMiddleware(
			s.rateLimitMiddleware(
				vhttp.CORSHandler(cfg.CORS, s.router),
			),
		),
	)

	return s, nil
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Service) State() State {
	return State(s.state.Load())
}

// Addr returns the address the service is bound to, or nil before Listen.
func (s *Service) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Listen binds the listener. It is not retried on failure.
func (s *Service) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() != StateUnbound {
		return ErrAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return fmt.Errorf("%w on %s: %w", ErrListener, s.cfg.Address(), err)
	}

	s.listener = ln
	s.s = &http.Server{
		Handler: s,
	}
	s.state.Store(uint32(StateListening))

	s.log.Info("wallet http server listening", logging.String("address", ln.Addr().String()))
	return nil
}

// Serve blocks until the server is stopped. Stopping the server is not an
// error.
func (s *Service) Serve() error {
	s.mu.Lock()
	srv, ln := s.s, s.listener
	s.mu.Unlock()

	if srv == nil || ln == nil {
		return ErrNotListening
	}

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%w: %w", ErrServe, err)
	}
	return nil
}

func (s *Service) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Stop stops accepting connections and waits, without deadline, for the
// in-flight requests to complete.
func (s *Service) Stop() error {
	s.mu.Lock()
	srv, ln := s.s, s.listener
	s.mu.Unlock()

	if srv == nil {
		s.state.Store(uint32(StateStopped))
		return nil
	}

	s.state.Store(uint32(StateShuttingDown))
	s.log.Info("shutting down the wallet http server")
	err := srv.Shutdown(context.Background())

	// The server only owns the listener once Serve is called.
	if cerr := ln.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) && err == nil {
		err = fmt.Errorf("couldn't close the listener: %w", cerr)
	}
	s.state.Store(uint32(StateStopped))
	return err
}

func (s *Service) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := uuid.NewString()
		w.Header().Set(TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), traceIDKey{}, traceID)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// metricsMiddleware records the request and the time taken to service it
func (s *Service) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.APIRequestAndTime(s.routeTemplate(r), r.Method, rec.status, time.Since(start))
	})
}

func (s *Service) routeTemplate(r *http.Request) string {
	match := mux.RouteMatch{}
	if !s.router.Match(r, &match) || match.MatchErr != nil || match.Route == nil {
		return unmatchedRoute
	}
	tpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}

func (s *Service) rateLimitMiddleware(next http.Handler) http.Handler {
	if s.rl == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := vhttp.RemoteAddr(r)
		if !s.rl.Allow(ip) {
			s.requestLogger(r).Debug("request denied - rate limit", logging.String("ip", ip))
			writeEnvelope(w, http.StatusTooManyRequests, ErrTooManyRequests.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Service) notFound(w http.ResponseWriter, r *http.Request) {
	s.requestLogger(r).Debug("route not found", logging.String("path", r.URL.Path))
	writeEnvelope(w, http.StatusNotFound, ErrRouteNotFound.Error())
}

func (s *Service) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.requestLogger(r).Debug("method not allowed",
		logging.String("method", r.Method),
		logging.String("path", r.URL.Path),
	)
	writeEnvelope(w, http.StatusMethodNotAllowed, ErrMethodNotFound.Error())
}

func (s *Service) requestLogger(r *http.Request) *logging.Logger {
	traceID, ok := r.Context().Value(traceIDKey{}).(string)
	if !ok {
		return s.log
	}
	return s.log.With(logging.String("trace-id", traceID))
}

// backendContext detaches the backend call from the client connection, a
// request runs to completion even if the caller goes away.
func backendContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}
