package repository

import (
	"io"

	"github.com/kandco/kco-finops-go/internal/domain/entity"
)

type ExportRepository interface {
	// ExportToCSV grava a amostra de registros normalizados como CSV limpo.
	ExportToCSV(result *entity.AnalysisResult, filename string, outputDir string) (string, error)
	// ExportToJSON grava o resultado completo da análise como JSON.
	ExportToJSON(result *entity.AnalysisResult, filename string, outputDir string) (string, error)

	// Executive report
	WriteReportPDF(w io.Writer, req *entity.ReportRequest) error
	ExportReportToPDF(req *entity.ReportRequest, filename string, outputDir string) (string, error)
}
