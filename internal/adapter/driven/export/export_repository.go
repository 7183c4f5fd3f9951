package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/kandco/kco-finops-go/internal/domain/entity"
	"github.com/kandco/kco-finops-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Funções de Exportação da Análise ---

// ExportToCSV grava a amostra de registros normalizados como um CSV limpo,
// com os mesmos campos canônicos que a UI consome.
func (r *ExportRepositoryImpl) ExportToCSV(result *entity.AnalysisResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Cost", "Service", "Region", "Date",
		"ResourceName", "ResourceId", "CommitmentDiscountStatus", "Tags",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, rec := range result.Records {
		record := []string{
			fmt.Sprintf("%.6f", rec.Cost),
			rec.Service,
			rec.Region,
			rec.Date,
			rec.ResourceName,
			rec.ResourceID,
			rec.DiscountStatus,
			rec.Tags,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o resultado completo (resumo, amostra e mapeamento de
// colunas) como JSON identado.
func (r *ExportRepositoryImpl) ExportToJSON(result *entity.AnalysisResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Relatório Executivo ---

// WriteReportPDF renderiza o relatório executivo direto no writer, para que o
// handler HTTP possa servir o PDF como download sem tocar o disco.
func (r *ExportRepositoryImpl) WriteReportPDF(w io.Writer, req *entity.ReportRequest) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(strings.Join(lines, "\n")), "", "L", false)
		pdf.Ln(8)
	}

	rankedCosts := func(list []entity.NamedCost) []string {
		lines := make([]string, 0, len(list))
		for i, item := range list {
			lines = append(lines, fmt.Sprintf("%d. %s: $%.2f", i+1, item.Name, item.Cost))
		}
		return lines
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
	pdf.CellFormat(0, 10, tr("KandCo"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(0, 12, tr("FinOps Executive Report"), "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(10)

	drawSection("Billing Overview", []string{
		fmt.Sprintf("Billing Period: %s", req.Period),
		fmt.Sprintf("Total Cloud Spend: $%.2f USD", req.TotalSpend),
		"",
		"This report provides a summarized view of cloud spend, regional distribution, service-level costs, and optimization insights.",
	})

	serviceLines := rankedCosts(req.TopServices)
	if len(serviceLines) > 0 {
		serviceLines = append(serviceLines, "",
			fmt.Sprintf("The top service contributes approximately %.1f%% of the total cloud spend.", req.TopServicePercent))
	}
	drawSection("Top Cost-Contributing Services", serviceLines)

	drawSection("Regional Spend Distribution", rankedCosts(req.TopRegions))

	opt := req.OptimizationData
	drawSection("Cost Optimization Insights", []string{
		fmt.Sprintf("Total Potential Savings: $%.2f", opt.TotalPotentialSavings),
		fmt.Sprintf("High-Confidence Savings: %.0f%%", opt.HighConfidencePercent),
		fmt.Sprintf("Savings Under Review: %.0f%%", opt.UnderReviewPercent),
		"",
		"Identified Opportunities:",
		fmt.Sprintf("- Idle Resources: %d", opt.IdleResources),
		fmt.Sprintf("- Right-Sizing Candidates: %d", opt.RightSizing),
		fmt.Sprintf("- Commitment Opportunities: %d", opt.Commitments),
	})

	drawSection("Governance & Cost Allocation", []string{
		fmt.Sprintf("Tagged Spend Coverage: %.1f%% of total spend", req.TaggedPercent),
		fmt.Sprintf("Production Environment Spend: %.1f%% of total spend", req.ProdPercent),
	})

	drawSection("Key Takeaways", []string{
		"- Cloud spending is well distributed across services.",
		"- Clear optimization opportunities with measurable savings.",
		"- Improved tagging will enhance cost visibility.",
		"- Cost concentration should be continuously monitored.",
	})

	drawSection("More Insights Coming Soon", []string{
		"- Forecasted monthly spend trends",
		"- Budget vs actual variance analysis",
		"- Automated anomaly detection",
		"- Service efficiency scoring",
		"- Intelligent optimization recommendations",
	})

	// Rodapé
	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, tr("Confidential - Generated for internal analysis only"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("KCO FinOps | %s", time.Now().Format("2006-01-02"))), "", 0, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("error writing PDF report: %w", err)
	}
	return nil
}

// ExportReportToPDF grava o relatório executivo em disco, para o modo CLI.
func (r *ExportRepositoryImpl) ExportReportToPDF(req *entity.ReportRequest, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating PDF file: %w", err)
	}
	defer file.Close()

	if err := r.WriteReportPDF(file, req); err != nil {
		return "", err
	}
	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
