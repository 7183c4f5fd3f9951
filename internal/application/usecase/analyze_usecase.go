package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kandco/kco-finops-go/internal/domain/entity"
	"github.com/kandco/kco-finops-go/internal/domain/repository"
	"github.com/kandco/kco-finops-go/internal/ingest"
	"github.com/kandco/kco-finops-go/internal/shared/types"
)

// AnalyzeUseCase orquestra a análise de custos: lê um export de billing
// (arquivo local, objeto S3 ou Cost Explorer ao vivo), agrega e devolve o
// resultado pronto para a UI, o console ou os exportadores.
type AnalyzeUseCase struct {
	awsRepo    repository.AWSRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	logger     logrus.FieldLogger
}

// NewAnalyzeUseCase creates a new analyze use case.
func NewAnalyzeUseCase(
	awsRepo repository.AWSRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	logger logrus.FieldLogger,
) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		awsRepo:    awsRepo,
		exportRepo: exportRepo,
		console:    console,
		logger:     logger,
	}
}

// AnalyzeStream processa um CSV de billing vindo de qualquer reader.
func (uc *AnalyzeUseCase) AnalyzeStream(ctx context.Context, r io.Reader) (*entity.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ingest.Process(r, uc.logger)
}

// AnalyzeFile abre a origem (caminho local ou URI s3://bucket/key) e processa.
func (uc *AnalyzeUseCase) AnalyzeFile(ctx context.Context, profile, source string) (*entity.AnalysisResult, error) {
	var reader io.ReadCloser
	var err error

	if strings.HasPrefix(source, "s3://") {
		reader, err = uc.awsRepo.OpenObject(ctx, profile, source)
		if err != nil {
			return nil, fmt.Errorf("opening billing export %s: %w", source, err)
		}
	} else {
		reader, err = os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("opening billing export %s: %w", source, err)
		}
	}
	defer reader.Close()

	return uc.AnalyzeStream(ctx, reader)
}

// AnalyzeLive busca os custos diários no Cost Explorer e passa os registros
// pelo mesmo agregador usado para uploads de CSV.
func (uc *AnalyzeUseCase) AnalyzeLive(ctx context.Context, profile string, days int) (*entity.AnalysisResult, error) {
	if accountID, err := uc.awsRepo.GetAccountID(ctx, profile); err == nil {
		uc.console.LogInfo("AWS Account: %s (profile: %s)", accountID, profile)
	} else {
		uc.logger.WithError(err).Warn("could not resolve AWS account ID")
	}

	records, err := uc.awsRepo.FetchDailyRecords(ctx, profile, days)
	if err != nil {
		return nil, err
	}

	agg := ingest.NewAggregator()
	for _, rec := range records {
		agg.Add(rec)
	}

	summary, err := agg.Finalize()
	if err != nil {
		return nil, err
	}

	sample := agg.Sample()
	return &entity.AnalysisResult{
		Summary:       *summary,
		Records:       sample,
		ColumnMapping: entity.ColumnMapping{},
		TotalRows:     agg.Rows(),
		SampleSize:    len(sample),
	}, nil
}

// DisplaySummary imprime o resumo da análise no console.
func (uc *AnalyzeUseCase) DisplaySummary(result *entity.AnalysisResult) {
	summary := result.Summary

	uc.console.Println()
	uc.console.LogInfo("Rows analyzed: %d (sample kept: %d)", result.TotalRows, result.SampleSize)
	uc.console.LogInfo("Total spend: $%.2f", summary.TotalSpend)
	uc.console.LogInfo("Potential leakage: $%.2f", summary.LeakageCost)

	if summary.EfficiencyScore >= 90 {
		uc.console.LogSuccess("Efficiency score: %d%%", summary.EfficiencyScore)
	} else {
		uc.console.LogWarning("Efficiency score: %d%%", summary.EfficiencyScore)
	}

	if len(summary.ProductEarnings) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Service")
		table.AddColumn("Spend")
		for _, svc := range summary.ProductEarnings {
			table.AddRow(svc.Name, fmt.Sprintf("$%.2f", svc.Value))
		}
		uc.console.Println(table.Render())
	}

	if len(summary.TimelineGraph) > 0 {
		dailyCosts := make([]types.DailyCost, 0, len(summary.TimelineGraph))
		for _, point := range summary.TimelineGraph {
			dailyCosts = append(dailyCosts, types.DailyCost{Date: point.Date, Cost: point.Cost})
		}
		uc.console.DisplayTimelineBars(dailyCosts)
	}

	if len(summary.LeakageItems) > 0 {
		uc.console.LogWarning("Uncovered spend items: %d", len(summary.LeakageItems))
	}
}

// ExportResults grava o resultado nos formatos pedidos e loga os caminhos.
func (uc *AnalyzeUseCase) ExportResults(result *entity.AnalysisResult, args *types.CLIArgs) {
	if len(args.ReportType) == 0 {
		return
	}

	reportName := args.ReportName
	if reportName == "" {
		reportName = "finops_analysis"
	}

	for _, reportType := range args.ReportType {
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			path, err := uc.exportRepo.ExportToCSV(result, reportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export CSV: %v", err)
				continue
			}
			uc.console.LogSuccess("Analysis exported to CSV: %s", path)
		case "json":
			path, err := uc.exportRepo.ExportToJSON(result, reportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export JSON: %v", err)
				continue
			}
			uc.console.LogSuccess("Analysis exported to JSON: %s", path)
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
		}
	}
}
