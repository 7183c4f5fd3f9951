package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/kandco/kco-finops-go/internal/domain/entity"
	"github.com/kandco/kco-finops-go/internal/shared/types"
)

// processCSVResponse é o envelope que a UI consome: o resumo agregado mais a
// amostra de registros normalizados e o mapeamento de colunas detectado.
type processCSVResponse struct {
	Success       bool                      `json:"success"`
	Data          entity.AnalysisSummary    `json:"data"`
	RawRecords    []entity.NormalizedRecord `json:"rawRecords"`
	ColumnMapping entity.ColumnMapping      `json:"columnMapping"`
	TotalRows     int                       `json:"totalRows"`
	SampleSize    int                       `json:"sampleSize"`
}

func (srv *Server) healthzHandler(w http.ResponseWriter, r *http.Request) {
	writeResponseAsJSON(srv.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (srv *Server) processCSVHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLogger(srv.logger, r, srv.rand)
	r.Body = http.MaxBytesReader(w, r.Body, srv.maxUploadBytes)

	uploadsInFlight.Inc()
	defer uploadsInFlight.Dec()

	file, header, err := r.FormFile("file")
	if err != nil {
		csvUploadsTotal.WithLabelValues("rejected").Inc()
		writeErrorResponse(logger, w, r, http.StatusBadRequest, "%v", types.ErrNoFileUploaded)
		return
	}
	defer file.Close()
	logger = logger.WithField("filename", header.Filename)

	// Persiste o upload em disco antes de processar; uploads grandes não
	// devem segurar a conexão do cliente durante a agregação.
	path, err := srv.store.Save(file)
	if err != nil {
		csvUploadsTotal.WithLabelValues("error").Inc()
		logger.WithError(err).Error("failed to save uploaded file")
		writeErrorResponseWithDetails(logger, w, r, http.StatusInternalServerError, "Failed to save uploaded file", err)
		return
	}
	defer srv.store.Remove(path)

	start := time.Now()
	result, err := srv.analyzeUC.AnalyzeFile(r.Context(), "", path)
	if err != nil {
		if errors.Is(err, types.ErrEmptyInput) {
			csvUploadsTotal.WithLabelValues("empty").Inc()
			writeErrorResponse(logger, w, r, http.StatusUnprocessableEntity, "%v", types.ErrEmptyInput)
			return
		}
		csvUploadsTotal.WithLabelValues("error").Inc()
		logger.WithError(err).Error("failed to process CSV file")
		writeErrorResponseWithDetails(logger, w, r, http.StatusInternalServerError, "Failed to read CSV file", err)
		return
	}
	csvProcessingSeconds.Observe(time.Since(start).Seconds())

	csvUploadsTotal.WithLabelValues("success").Inc()
	rowsProcessedTotal.Add(float64(result.TotalRows))
	logger.WithFields(map[string]interface{}{
		"totalRows":  result.TotalRows,
		"sampleSize": result.SampleSize,
	}).Info("processed billing CSV")

	writeResponseAsJSON(logger, w, http.StatusOK, processCSVResponse{
		Success:       true,
		Data:          result.Summary,
		RawRecords:    result.Records,
		ColumnMapping: result.ColumnMapping,
		TotalRows:     result.TotalRows,
		SampleSize:    result.SampleSize,
	})
}

func (srv *Server) downloadReportHandler(w http.ResponseWriter, r *http.Request) {
	logger := newRequestLogger(srv.logger, r, srv.rand)

	var req entity.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(logger, w, r, http.StatusBadRequest, "couldn't decode report request body: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="Cloud_Cost_Optimization_Report.pdf"`)

	if err := srv.exportRepo.WriteReportPDF(w, &req); err != nil {
		// Headers já foram enviados; só resta registrar a falha.
		logger.WithError(err).Error("failed to render executive report PDF")
		return
	}
	reportDownloadsTotal.Inc()
	logger.Info("executive report generated")
}
