// Package api expõe a análise de custos por HTTP: upload de CSV de billing,
// geração do relatório executivo em PDF, health check e métricas.
package api

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/kandco/kco-finops-go/internal/adapter/driven/storage"
	"github.com/kandco/kco-finops-go/internal/application/usecase"
	"github.com/kandco/kco-finops-go/internal/domain/repository"
)

// Authenticator valida uma requisição antes de ela chegar aos handlers de
// dados. A verificação de identidade fica fora deste serviço; um gateway ou
// proxy na frente injeta a credencial e fornece a implementação. Nil libera
// todas as requisições.
type Authenticator interface {
	Authenticate(r *http.Request) error
}

// Server é o servidor HTTP do dashboard.
type Server struct {
	logger logrus.FieldLogger
	rand   *rand.Rand

	analyzeUC  *usecase.AnalyzeUseCase
	exportRepo repository.ExportRepository
	store      *storage.UploadStore

	maxUploadBytes int64
	auth           Authenticator
}

// NewServer creates the API server. maxUploadMB bounds the multipart body;
// auth may be nil, in which case every request is allowed through.
func NewServer(
	logger logrus.FieldLogger,
	analyzeUC *usecase.AnalyzeUseCase,
	exportRepo repository.ExportRepository,
	store *storage.UploadStore,
	maxUploadMB int,
	auth Authenticator,
) *Server {
	if maxUploadMB <= 0 {
		maxUploadMB = 50
	}
	return &Server{
		logger:         logger.WithField("component", "api"),
		rand:           rand.New(rand.NewSource(time.Now().UnixNano())),
		analyzeUC:      analyzeUC,
		exportRepo:     exportRepo,
		store:          store,
		maxUploadBytes: int64(maxUploadMB) * 1024 * 1024,
		auth:           auth,
	}
}

type requestLogger struct {
	logrus.FieldLogger
}

func (l *requestLogger) Print(v ...interface{}) {
	l.FieldLogger.Info(v...)
}

// Router monta as rotas da API.
func (srv *Server) Router() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: &requestLogger{srv.logger}}))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", srv.healthzHandler)
	router.Method("GET", "/metrics", promhttp.Handler())

	router.Route("/api/data", func(r chi.Router) {
		r.Use(srv.authMiddleware)
		r.Post("/process-csv", srv.processCSVHandler)
		r.Post("/download-cloud-report", srv.downloadReportHandler)
	})

	return router
}

// ListenAndServe bloqueia servindo o router no endereço dado.
func (srv *Server) ListenAndServe(addr string) error {
	srv.logger.WithField("addr", addr).Info("starting HTTP server")
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
	}
	return httpServer.ListenAndServe()
}

func (srv *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.auth != nil {
			if err := srv.auth.Authenticate(r); err != nil {
				logger := newRequestLogger(srv.logger, r, srv.rand)
				writeErrorResponse(logger, w, r, http.StatusUnauthorized, "unauthorized: %v", err)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
