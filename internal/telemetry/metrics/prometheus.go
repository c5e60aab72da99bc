package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func SetupPrometheus() *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	// Add Go module build info, runtime metrics and process collectors.
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return promRegistry
}

// Server exposes /metrics while the client runs. A nil *Server is valid and does nothing.
type Server struct {
	httpServer *http.Server
}

func NewRouter(reg *prometheus.Registry) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods("GET").Name("metrics")
	return r
}

// Serve starts the metrics server in the background. Empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) *Server {
	if addr == "" {
		log.Debugln("metrics server disabled")
		return nil
	}

	s := &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: NewRouter(reg),
		},
	}

	go func() {
		log.Debugf(" > metrics listening on: [%s]", addr)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("metrics server, listen and serve: %s", err)
		}
	}()

	return s
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
