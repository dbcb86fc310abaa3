// Package api exposes the mining pipeline over HTTP.
//
// The server is a thin wrapper around [pipeline.Runner]: requests carry the
// transaction database inline, responses carry the mined pattern set plus a
// summary. All responses are JSON; errors use a structured envelope with a
// machine-readable code.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/tmaxen/fpgrow/pkg/buildinfo"
	"github.com/tmaxen/fpgrow/pkg/dataset"
	fperrors "github.com/tmaxen/fpgrow/pkg/errors"
	"github.com/tmaxen/fpgrow/pkg/fptree"
	"github.com/tmaxen/fpgrow/pkg/pipeline"
	"github.com/tmaxen/fpgrow/pkg/report"
)

// maxRequestBody bounds inline transaction payloads (16 MiB).
const maxRequestBody = 16 << 20

// Server handles HTTP requests for the mining API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// NewServer creates a server backed by the given runner.
// If logger is nil, the runner's logger is used.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	s := &Server{
		runner: runner,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/mine", s.handleMine)
	})
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("api server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// =============================================================================
// Handlers
// =============================================================================

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: buildinfo.Version,
	})
}

type mineRequest struct {
	Name         string     `json:"name,omitempty"`
	Transactions [][]string `json:"transactions"`
	MinSupport   int        `json:"min_support,omitempty"`
	MinRatio     float64    `json:"min_ratio,omitempty"`
}

type mineResponse struct {
	ID          string          `json:"id"`
	DatasetHash string          `json:"dataset_hash,omitempty"`
	MinSupport  int             `json:"min_support"`
	Patterns    fptree.Patterns `json:"patterns"`
	Summary     report.Summary  `json:"summary"`
	CacheHit    bool            `json:"cache_hit"`
}

func (s *Server) handleMine(w http.ResponseWriter, r *http.Request) {
	var req mineRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, fperrors.Wrap(fperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	if err := validateMineRequest(&req); err != nil {
		s.writeError(w, r, err)
		return
	}

	ds := &dataset.Dataset{
		Name:         req.Name,
		Transactions: req.Transactions,
	}
	if ds.Name == "" {
		ds.Name = "request"
	}

	opts := pipeline.Options{
		MinSupport: req.MinSupport,
		MinRatio:   req.MinRatio,
		Logger:     s.logger,
	}

	patterns, hit, err := s.runner.MineWithCacheInfo(r.Context(), ds, opts)
	if err != nil {
		s.writeError(w, r, fperrors.Wrap(fperrors.ErrCodeInternal, err, "mining failed"))
		return
	}

	minSupport := opts.EffectiveMinSupport(len(ds.Transactions))
	resp := mineResponse{
		ID:         uuid.NewString(),
		MinSupport: minSupport,
		Patterns:   patterns,
		Summary:    report.Build(ds.Name, ds.Transactions, minSupport, patterns),
		CacheHit:   hit,
	}
	writeJSON(w, http.StatusOK, resp)
}

func validateMineRequest(req *mineRequest) error {
	if len(req.Transactions) == 0 {
		return fperrors.New(fperrors.ErrCodeInvalidInput, "transactions are required")
	}
	if len(req.Transactions) > pipeline.MaxTransactions {
		return fperrors.New(fperrors.ErrCodeInvalidInput,
			"too many transactions: %d (max %d)", len(req.Transactions), pipeline.MaxTransactions)
	}
	if req.MinRatio != 0 {
		if err := fperrors.ValidateMinRatio(req.MinRatio); err != nil {
			return err
		}
	} else if req.MinSupport != 0 {
		if err := fperrors.ValidateMinSupport(req.MinSupport); err != nil {
			return err
		}
	}
	for _, txn := range req.Transactions {
		for _, item := range txn {
			if err := fperrors.ValidateItem(item); err != nil {
				return err
			}
		}
	}
	return nil
}

// =============================================================================
// Response Helpers
// =============================================================================

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := fperrors.GetCode(err)
	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err)
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: fperrors.UserMessage(err),
	}})
}

func statusForCode(code fperrors.Code) int {
	switch code {
	case fperrors.ErrCodeInvalidInput, fperrors.ErrCodeInvalidSupport,
		fperrors.ErrCodeInvalidDataset, fperrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case fperrors.ErrCodeNotFound, fperrors.ErrCodeDatasetNotFound:
		return http.StatusNotFound
	case fperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case fperrors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
