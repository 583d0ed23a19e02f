package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	batchapp "github.com/minhqn/price-intel/application/batch"
	historyapp "github.com/minhqn/price-intel/application/history"
	searchapp "github.com/minhqn/price-intel/application/search"
	"github.com/minhqn/price-intel/constant"
	"github.com/minhqn/price-intel/model"
	"github.com/minhqn/price-intel/utils/errors"
	"github.com/minhqn/price-intel/utils/exporter"
	validatorx "github.com/minhqn/price-intel/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	SearchApp  searchapp.SearchApp
	BatchApp   batchapp.BatchApp
	HistoryApp historyapp.HistoryApp
}

func NewTransport(SearchApp searchapp.SearchApp, BatchApp batchapp.BatchApp, HistoryApp historyapp.HistoryApp, internalKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		SearchApp:  SearchApp,
		BatchApp:   BatchApp,
		HistoryApp: HistoryApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/search", rh.Search).Methods(http.MethodPost)
	mux.HandleFunc("/export", rh.Export).Methods(http.MethodPost)
	mux.HandleFunc("/batch/{id}", rh.BatchStatus).Methods(http.MethodGet)
	mux.HandleFunc("/history/{query}", rh.History).Methods(http.MethodGet)

	// Internal routes (static service key)
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalKey))
	internal.HandleFunc("/batch", rh.StartBatch).Methods(http.MethodPost)

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())

	return mux
}

// Search handler
// @Summary Analyze market prices for a query
// @Description Scrapes the configured retailers, filters and groups the offers, and returns a price-sorted market analysis
// @Tags Search
// @Accept json
// @Produce json
// @Param request body model.SearchRequest true "Search Request"
// @Success 200 {object} model.MarketAnalysis
// @Failure 400 {object} errors.CustomError
// @Failure 502 {object} errors.CustomError
// @Router /search [post]
func (s *RestHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SearchApp.Analyze(ctx, req.Query, req.NumProducts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Export handler
// @Summary Analyze and download as spreadsheet
// @Description Runs the same pipeline as /search and streams the result as an .xlsx report
// @Tags Search
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body model.SearchRequest true "Search Request"
// @Success 200 {file} binary
// @Failure 400 {object} errors.CustomError
// @Router /export [post]
func (s *RestHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SearchApp.Analyze(ctx, req.Query, req.NumProducts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exporter.FileName(res.Query)+`"`)
	if err := exporter.Export(res, w); err != nil {
		// Headers are already out; nothing sensible left to send.
		return
	}
}

// StartBatch handler
// @Summary Start a batch analysis job
// @Description Queues a sequential analysis run over several queries; results are exported and tracked per job
// @Tags Batch
// @Accept json
// @Produce json
// @Param request body model.BatchRequest true "Batch Request"
// @Success 200 {object} model.BatchResponse
// @Failure 400 {object} errors.CustomError
// @Router /internal/v1/batch [post]
func (s *RestHandler) StartBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	jobID, err := s.BatchApp.StartJob(ctx, req.Queries)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.BatchResponse{JobID: jobID})
}

// BatchStatus handler
// @Summary Get batch job status
// @Tags Batch
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} model.BatchJob
// @Failure 404 {object} errors.CustomError
// @Router /batch/{id} [get]
func (s *RestHandler) BatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID := mux.Vars(r)["id"]
	job, err := s.BatchApp.GetJob(ctx, jobID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, job)
}

// History handler
// @Summary List persisted price observations for a query
// @Tags History
// @Produce json
// @Param query path string true "Search query"
// @Param limit query int false "Max entries"
// @Success 200 {object} model.PriceHistoryResponse
// @Router /history/{query} [get]
func (s *RestHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := mux.Vars(r)["query"]
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if s.HistoryApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.HistoryApp.ListByQuery(ctx, query, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

type responseEnvelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(responseEnvelope{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	ce, ok := err.(errors.CustomError)
	if !ok {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ce.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(responseEnvelope{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}
